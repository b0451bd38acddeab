package notes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"example.com/notes-app/internal/docstore"
)

type Handlers struct {
	ctrl *Controller
}

// NewHandlers exposes ctrl over HTTP. The controller should be built with a
// ContextConfirmer so the confirm query parameter reaches Remove.
func NewHandlers(ctrl *Controller) *Handlers {
	return &Handlers{ctrl: ctrl}
}

func (h *Handlers) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/notes", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/", h.create)
		r.Post("/refresh", h.refresh)
		r.Put("/draft", h.draft)
		r.Delete("/selection", h.deselect)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", h.get)
			r.Post("/select", h.selectNote)
			r.Put("/", h.update)
			r.Delete("/", h.delete)
		})
	})

	return r
}

func (h *Handlers) view(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newViewResponse(h.ctrl.View()))
}

func (h *Handlers) create(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	n, err := h.ctrl.Create(r.Context(), req.Title, req.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

func (h *Handlers) refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.ctrl.Refresh(r.Context()); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newViewResponse(h.ctrl.View()))
}

func (h *Handlers) draft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	h.ctrl.SetDraft(req.Title, req.Body)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) deselect(w http.ResponseWriter, r *http.Request) {
	h.ctrl.Deselect()
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) get(w http.ResponseWriter, r *http.Request) {
	n, ok := h.ctrl.Note(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *Handlers) selectNote(w http.ResponseWriter, r *http.Request) {
	var edit bool
	switch r.URL.Query().Get("mode") {
	case "", "view":
	case "edit":
		edit = true
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "mode must be view or edit"})
		return
	}

	n, ok := h.ctrl.Note(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	h.ctrl.Select(n, edit)
	writeJSON(w, http.StatusOK, newViewResponse(h.ctrl.View()))
}

func (h *Handlers) update(w http.ResponseWriter, r *http.Request) {
	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.ctrl.Update(r.Context(), id, req.Title, req.Body); err != nil {
		writeError(w, err)
		return
	}

	n, ok := h.ctrl.Note(id)
	if !ok {
		// updated but gone from the fresh list
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	writeJSON(w, http.StatusOK, n)
}

func (h *Handlers) delete(w http.ResponseWriter, r *http.Request) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	ctx := WithConfirmation(r.Context(), confirmed)

	if err := h.ctrl.Remove(ctx, chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	var rerr *RemoteOperationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Msg, "field": verr.Field})
	case errors.Is(err, ErrNotConfirmed):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "confirmation required"})
	case errors.Is(err, docstore.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.As(err, &rerr):
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
