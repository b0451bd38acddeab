package notes

import (
	"context"
	"log/slog"
	"sync"

	"example.com/notes-app/internal/docstore"
	"example.com/notes-app/internal/stringsx"
)

const (
	DefaultCollection = "notes"

	deletePrompt   = "Are you sure you want to delete this note?"
	deletedMessage = "Note deleted successfully!"
)

// Confirmer asks the user to approve a destructive action.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(ctx context.Context, msg string)
}

type ConfirmFunc func(ctx context.Context, prompt string) bool

func (f ConfirmFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

type NotifyFunc func(ctx context.Context, msg string)

func (f NotifyFunc) Notify(ctx context.Context, msg string) { f(ctx, msg) }

type Options struct {
	// Collection is the document collection holding notes.
	// Defaults to DefaultCollection.
	Collection string

	// RequireTitle makes Create reject a blank title as well as a blank body.
	RequireTitle bool

	Logger *slog.Logger
}

// Controller owns the client-side list of notes and the view state around
// it. Create inserts optimistically at the head of the list; Update and
// Remove resynchronise with a full Refresh.
//
// State is guarded by a mutex that is released while the document store is
// being called, so a slow store call never blocks readers of View.
type Controller struct {
	store      docstore.Collection
	collection string
	confirm    Confirmer
	notify     Notifier
	log        *slog.Logger

	requireTitle bool

	mu         sync.Mutex
	notes      []Note
	selected   *Note
	editMode   bool
	draftTitle string
	draftBody  string
	saving     int
	updating   int
}

// New returns a controller with an empty list. Call Refresh to load notes.
// A nil confirmer declines every delete; a nil notifier drops messages.
func New(store docstore.Collection, confirm Confirmer, notify Notifier, opts Options) *Controller {
	if opts.Collection == "" {
		opts.Collection = DefaultCollection
	}
	if confirm == nil {
		confirm = ConfirmFunc(func(context.Context, string) bool { return false })
	}
	if notify == nil {
		notify = NotifyFunc(func(context.Context, string) {})
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Controller{
		store:        store,
		collection:   opts.Collection,
		confirm:      confirm,
		notify:       notify,
		log:          opts.Logger.With("collection", opts.Collection),
		requireTitle: opts.RequireTitle,
	}
}

// View returns a copy of the current state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Notes:      append([]Note(nil), c.notes...),
		EditMode:   c.editMode,
		DraftTitle: c.draftTitle,
		DraftBody:  c.draftBody,
		Saving:     c.saving > 0,
		Updating:   c.updating > 0,
	}
	if v.Notes == nil {
		v.Notes = []Note{}
	}
	if c.selected != nil {
		sel := *c.selected
		v.Selected = &sel
	}
	return v
}

// Note returns the cached note with the given id.
func (c *Controller) Note(id string) (Note, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, n := range c.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

func (c *Controller) SetDraft(title, body string) {
	c.mu.Lock()
	c.draftTitle, c.draftBody = title, body
	c.mu.Unlock()
}

// Create validates and inserts a note, then puts it at the head of the list
// without refetching.
func (c *Controller) Create(ctx context.Context, title, body string) (Note, error) {
	if err := c.validateCreate(title, body); err != nil {
		c.notify.Notify(ctx, err.Error())
		return Note{}, err
	}

	c.mu.Lock()
	c.saving++
	c.mu.Unlock()

	doc, err := c.store.Insert(ctx, c.collection, newNoteFields(title, body))

	c.mu.Lock()
	c.saving--
	if err != nil {
		c.mu.Unlock()
		return Note{}, c.remoteFailure(ctx, "save note", err)
	}
	n := fromDocument(doc)
	c.notes = append([]Note{n}, c.notes...)
	c.draftTitle, c.draftBody = "", ""
	c.mu.Unlock()

	c.log.Debug("note created", "id", n.ID)
	return n, nil
}

// Refresh replaces the list with a fresh read of the whole collection.
// The selection follows the fresh copy of the selected note and is cleared
// if that note is gone.
func (c *Controller) Refresh(ctx context.Context) error {
	docs, err := c.store.ListAll(ctx, c.collection)
	if err != nil {
		return c.remoteFailure(ctx, "load notes", err)
	}

	fresh := make([]Note, 0, len(docs))
	for _, d := range docs {
		fresh = append(fresh, fromDocument(d))
	}

	c.mu.Lock()
	c.notes = fresh
	if c.selected != nil {
		c.reselectLocked(c.selected.ID)
	}
	c.mu.Unlock()

	c.log.Debug("notes refreshed", "count", len(fresh))
	return nil
}

func (c *Controller) Select(n Note, editMode bool) {
	c.mu.Lock()
	c.selected = &n
	c.editMode = editMode
	c.mu.Unlock()
}

func (c *Controller) Deselect() {
	c.mu.Lock()
	c.selected = nil
	c.editMode = false
	c.mu.Unlock()
}

// Update writes the title and body of an existing note, refreshes the list
// and closes the selection.
func (c *Controller) Update(ctx context.Context, id, title, body string) error {
	if err := validateUpdate(title, body); err != nil {
		c.notify.Notify(ctx, err.Error())
		return err
	}

	c.mu.Lock()
	c.updating++
	c.mu.Unlock()

	err := c.store.UpdateFields(ctx, c.collection, id, editFields(title, body))
	if err == nil {
		c.log.Debug("note updated", "id", id)
		err = c.Refresh(ctx)
	} else {
		err = c.remoteFailure(ctx, "update note", err)
	}

	c.mu.Lock()
	c.updating--
	c.mu.Unlock()

	if err != nil {
		return err
	}
	c.Deselect()
	return nil
}

// Remove deletes a note after the user confirms, then refreshes the list.
func (c *Controller) Remove(ctx context.Context, id string) error {
	if !c.confirm.Confirm(ctx, deletePrompt) {
		return ErrNotConfirmed
	}

	if err := c.store.DeleteByID(ctx, c.collection, id); err != nil {
		return c.remoteFailure(ctx, "delete note", err)
	}
	c.log.Debug("note deleted", "id", id)

	if err := c.Refresh(ctx); err != nil {
		return err
	}
	c.notify.Notify(ctx, deletedMessage)
	return nil
}

func (c *Controller) validateCreate(title, body string) error {
	if stringsx.IsEmpty(body) {
		return &ValidationError{Field: fieldBody, Msg: "Please write a note!"}
	}
	if c.requireTitle && stringsx.IsEmpty(title) {
		return &ValidationError{Field: fieldTitle, Msg: "Please add a title!"}
	}
	return nil
}

func validateUpdate(title, body string) error {
	if stringsx.IsEmpty(title) {
		return &ValidationError{Field: fieldTitle, Msg: "Please add a title!"}
	}
	if stringsx.IsEmpty(body) {
		return &ValidationError{Field: fieldBody, Msg: "Please write a note!"}
	}
	return nil
}

func (c *Controller) remoteFailure(ctx context.Context, op string, err error) error {
	c.log.Error(op+" failed", "err", err)
	c.notify.Notify(ctx, "Failed to "+op+": "+err.Error())
	return &RemoteOperationError{Op: op, Err: err}
}

func (c *Controller) reselectLocked(id string) {
	for _, n := range c.notes {
		if n.ID == id {
			sel := n
			c.selected = &sel
			return
		}
	}
	c.selected = nil
	c.editMode = false
}
