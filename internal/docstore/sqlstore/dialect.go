package sqlstore

// Dialect holds the SQL text that differs between database engines.
type Dialect struct {
	Name string

	createTable string
	insert      string
	list        string
	update      string
	delete      string
}

// Postgres stores fields as JSONB and merges updates with the || operator.
var Postgres = Dialect{
	Name: "postgres",
	createTable: `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT   NOT NULL,
			id         TEXT   NOT NULL,
			fields     JSONB  NOT NULL DEFAULT '{}'::jsonb,
			created_at BIGINT NOT NULL,
			PRIMARY KEY (collection, id)
		)`,
	insert: `
		INSERT INTO documents (collection, id, fields, created_at)
		VALUES ($1, $2, $3::jsonb, $4)`,
	list: `
		SELECT id, fields, created_at
		FROM documents
		WHERE collection = $1
		ORDER BY created_at DESC, id DESC`,
	update: `
		UPDATE documents
		SET fields = fields || $1::jsonb
		WHERE collection = $2 AND id = $3`,
	delete: `DELETE FROM documents WHERE collection = $1 AND id = $2`,
}

// SQLite stores fields as JSON text and merges updates with json_patch.
var SQLite = Dialect{
	Name: "sqlite",
	createTable: `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT    NOT NULL,
			id         TEXT    NOT NULL,
			fields     TEXT    NOT NULL DEFAULT '{}',
			created_at INTEGER NOT NULL,
			PRIMARY KEY (collection, id)
		)`,
	insert: `
		INSERT INTO documents (collection, id, fields, created_at)
		VALUES (?, ?, ?, ?)`,
	list: `
		SELECT id, fields, created_at
		FROM documents
		WHERE collection = ?
		ORDER BY created_at DESC, id DESC`,
	update: `
		UPDATE documents
		SET fields = json_patch(fields, ?)
		WHERE collection = ? AND id = ?`,
	delete: `DELETE FROM documents WHERE collection = ? AND id = ?`,
}
