package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemory_InsertAssignsIDAndTime(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := NewMemory().WithClock(func() time.Time { return fixed })

	in := Fields{"note": "Buy milk"}
	doc, err := m.Insert(context.Background(), "notes", in)
	require.NoError(t, err)
	require.NotEmpty(t, doc.ID)
	require.Equal(t, fixed, doc.CreatedAt)
	require.Equal(t, "Buy milk", doc.Fields.String("note"))

	// caller's map is not aliased
	in["note"] = "changed"
	docs, err := m.ListAll(context.Background(), "notes")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, "Buy milk", docs[0].Fields.String("note"))
}

func TestMemory_ListNewestFirst(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, err := m.Insert(ctx, "notes", Fields{"note": "a"})
	require.NoError(t, err)
	b, err := m.Insert(ctx, "notes", Fields{"note": "b"})
	require.NoError(t, err)
	_, err = m.Insert(ctx, "other", Fields{"note": "c"})
	require.NoError(t, err)

	docs, err := m.ListAll(ctx, "notes")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, b.ID, docs[0].ID)
	require.Equal(t, a.ID, docs[1].ID)

	empty, err := m.ListAll(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestMemory_UpdateMergesFields(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	doc, err := m.Insert(ctx, "notes", Fields{"title": "A", "note": "B", "fileName": ""})
	require.NoError(t, err)

	require.NoError(t, m.UpdateFields(ctx, "notes", doc.ID, Fields{"title": "A2", "note": "B2"}))

	docs, err := m.ListAll(ctx, "notes")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, doc.ID, docs[0].ID)
	require.Equal(t, doc.CreatedAt, docs[0].CreatedAt)
	require.Equal(t, "A2", docs[0].Fields.String("title"))
	require.Equal(t, "B2", docs[0].Fields.String("note"))
	require.Contains(t, docs[0].Fields, "fileName")

	err = m.UpdateFields(ctx, "notes", "nope", Fields{"title": "x"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemory_Delete(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	a, _ := m.Insert(ctx, "notes", Fields{"note": "a"})
	b, _ := m.Insert(ctx, "notes", Fields{"note": "b"})

	require.NoError(t, m.DeleteByID(ctx, "notes", a.ID))
	require.ErrorIs(t, m.DeleteByID(ctx, "notes", a.ID), ErrNotFound)

	docs, err := m.ListAll(ctx, "notes")
	require.NoError(t, err)
	require.Len(t, docs, 1)
	require.Equal(t, b.ID, docs[0].ID)
}

func TestMemory_RequiresCollectionName(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.Insert(ctx, "", Fields{})
	require.ErrorIs(t, err, ErrNoCollection)
	_, err = m.ListAll(ctx, "")
	require.ErrorIs(t, err, ErrNoCollection)
	require.ErrorIs(t, m.UpdateFields(ctx, "", "x", nil), ErrNoCollection)
	require.ErrorIs(t, m.DeleteByID(ctx, "", "x"), ErrNoCollection)
}

func TestMemory_CanceledContext(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Insert(ctx, "notes", Fields{"note": "x"})
	require.ErrorIs(t, err, context.Canceled)
}
