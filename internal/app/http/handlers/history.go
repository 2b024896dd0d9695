package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"century-cleaning/go_backend/internal/infra/history"
)

// ListHistory returns the session's recent quotations, newest first.
func (h *Handlers) ListHistory(w http.ResponseWriter, r *http.Request) {
	sess := session(r.Header.Get("X-Session-ID"))
	entries, err := h.History.Load(r.Context(), sess)
	if err != nil {
		h.Logger.Error("history load", zap.Error(err), zap.String("session", sess))
		h.respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	h.respondJSON(w, http.StatusOK, map[string]any{"quotations": entries})
}

// DeleteHistoryEntry removes exactly one entry by id.
func (h *Handlers) DeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid history id")
		return
	}

	sess := session(r.Header.Get("X-Session-ID"))
	entries, err := h.History.Load(r.Context(), sess)
	if err != nil {
		h.Logger.Error("history load", zap.Error(err), zap.String("session", sess))
		h.respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	remaining := history.Remove(entries, id)
	if len(remaining) == len(entries) {
		h.respondError(w, http.StatusNotFound, "history entry not found")
		return
	}
	if err := h.History.Save(r.Context(), sess, remaining); err != nil {
		h.Logger.Error("history save", zap.Error(err), zap.String("session", sess))
		h.respondError(w, http.StatusInternalServerError, "failed to delete history entry")
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
