package http

import (
	"encoding/json"
	"net/http"

	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/service"
	"github.com/bookshelf-app/bookshelf/internal/utils"
	"github.com/bookshelf-app/bookshelf/models"
	"github.com/go-chi/chi/v5"
)

// saveBook is the legacy REST variant of the saveBook mutation.
func (h *Handler) saveBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.IdentityFromContext(ctx)
	if !ok {
		http.Error(w, service.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	var book models.SavedBook
	if err := json.NewDecoder(r.Body).Decode(&book); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.ShelfService.SaveBook(ctx, identity, book)
	if err != nil {
		log.Err(err).Str("book_id", book.BookID).Msg("saving book failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// removeBook is the legacy REST variant of the removeBook mutation. The
// book id travels in the URL path.
func (h *Handler) removeBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.IdentityFromContext(ctx)
	if !ok {
		http.Error(w, service.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	bookID := chi.URLParam(r, "bookID")

	user, err := h.services.ShelfService.RemoveBook(ctx, identity, bookID)
	if err != nil {
		log.Err(err).Str("book_id", bookID).Msg("removing book failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
