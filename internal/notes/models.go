package notes

import (
	"time"

	"example.com/notes-app/internal/docstore"
	"example.com/notes-app/internal/stringsx"
)

const previewRunes = 50

// Note is a user-authored text record. ID and CreatedAt come from the store.
// FileName, FileURL and StoragePath belong to a removed upload feature and
// are always empty.
type Note struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Body        string    `json:"note"`
	CreatedAt   time.Time `json:"createdAt"`
	FileName    string    `json:"fileName"`
	FileURL     string    `json:"fileURL"`
	StoragePath string    `json:"storagePath"`
}

// Preview is the body clipped for list rendering.
func (n Note) Preview() string {
	return stringsx.Preview(n.Body, previewRunes)
}

// document field names
const (
	fieldTitle       = "title"
	fieldBody        = "note"
	fieldFileName    = "fileName"
	fieldFileURL     = "fileURL"
	fieldStoragePath = "storagePath"
)

func newNoteFields(title, body string) docstore.Fields {
	return docstore.Fields{
		fieldTitle:       title,
		fieldBody:        body,
		fieldFileName:    "",
		fieldFileURL:     "",
		fieldStoragePath: "",
	}
}

func editFields(title, body string) docstore.Fields {
	return docstore.Fields{
		fieldTitle: title,
		fieldBody:  body,
	}
}

func fromDocument(d docstore.Document) Note {
	return Note{
		ID:          d.ID,
		Title:       d.Fields.String(fieldTitle),
		Body:        d.Fields.String(fieldBody),
		CreatedAt:   d.CreatedAt,
		FileName:    d.Fields.String(fieldFileName),
		FileURL:     d.Fields.String(fieldFileURL),
		StoragePath: d.Fields.String(fieldStoragePath),
	}
}

// View is a copy of the controller state for a presentation layer.
type View struct {
	Notes      []Note `json:"notes"`
	Selected   *Note  `json:"selected,omitempty"`
	EditMode   bool   `json:"editMode"`
	DraftTitle string `json:"draftTitle"`
	DraftBody  string `json:"draftBody"`
	Saving     bool   `json:"saving"`
	Updating   bool   `json:"updating"`
}

type CreateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"note"`
}

type UpdateNoteRequest struct {
	Title string `json:"title"`
	Body  string `json:"note"`
}

type DraftRequest struct {
	Title string `json:"title"`
	Body  string `json:"note"`
}

// noteResponse adds the list preview to a note.
type noteResponse struct {
	Note
	Preview string `json:"preview"`
}

type viewResponse struct {
	Notes      []noteResponse `json:"notes"`
	Selected   *Note          `json:"selected,omitempty"`
	EditMode   bool           `json:"editMode"`
	DraftTitle string         `json:"draftTitle"`
	DraftBody  string         `json:"draftBody"`
	Saving     bool           `json:"saving"`
	Updating   bool           `json:"updating"`
}

func newViewResponse(v View) viewResponse {
	items := make([]noteResponse, 0, len(v.Notes))
	for _, n := range v.Notes {
		items = append(items, noteResponse{Note: n, Preview: n.Preview()})
	}
	return viewResponse{
		Notes:      items,
		Selected:   v.Selected,
		EditMode:   v.EditMode,
		DraftTitle: v.DraftTitle,
		DraftBody:  v.DraftBody,
		Saving:     v.Saving,
		Updating:   v.Updating,
	}
}
