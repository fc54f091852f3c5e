package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bookshelf-app/bookshelf/internal/logger"
	"github.com/bookshelf-app/bookshelf/internal/service"
	"github.com/bookshelf-app/bookshelf/internal/utils"
	"github.com/bookshelf-app/bookshelf/models"
)

// Legacy REST handlers. These predate the GraphQL endpoint and stay wired
// for existing callers; they reuse the same services and map sentinel
// errors to HTTP statuses via statusFromError.

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		log.Err(err).Msg("user registration failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthPayload{Token: token.SignedString, User: registeredUser}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Msg("user login failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	log.Debug().Int64("id", foundUser.UserID).Str("email", foundUser.Email).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.AuthPayload{Token: token.SignedString, User: foundUser}, http.StatusOK)
}

// me returns the authenticated user's record including all saved books.
// The auth middleware guarantees an identity is present.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.IdentityFromContext(ctx)
	if !ok {
		http.Error(w, service.ErrNotAuthenticated.Error(), http.StatusUnauthorized)
		return
	}

	user, err := h.services.ShelfService.Me(ctx, identity)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("me lookup failed")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
