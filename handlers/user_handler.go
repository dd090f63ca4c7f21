package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/MarcSastreViB/chatrooms/models"
	"github.com/MarcSastreViB/chatrooms/pkg/router"
	"github.com/MarcSastreViB/chatrooms/store"
	"github.com/samber/lo"
)

type UserHandler struct {
	store store.UserStore
}

func NewUserHandler(store store.UserStore) *UserHandler {
	return &UserHandler{store: store}
}

// RegisterUserHandler registers a user, replacing any existing user with the
// same username.
func (h *UserHandler) RegisterUserHandler(w http.ResponseWriter, r *http.Request) error {
	var payload RegisterUserPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return router.NewJsonError(http.StatusBadRequest, "invalid request body")
	}
	defer r.Body.Close()

	user := models.User{
		Username: payload.Username,
		Photo:    payload.Photo,
	}

	if err := h.store.Register(r.Context(), user); err != nil {
		return err
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(NewUserView(user))
	return nil
}

func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) error {
	user, err := h.store.Get(r.Context(), r.PathValue("username"))
	if err != nil {
		return err
	}
	if user == nil {
		return router.NewJsonError(http.StatusNotFound, "user not found")
	}

	json.NewEncoder(w).Encode(NewUserView(*user))
	return nil
}

func (h *UserHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) error {
	users := slices.Collect(h.store.Users(r.Context()))
	views := lo.Map(users, func(u models.User, _ int) UserView {
		return NewUserView(u)
	})
	if views == nil {
		views = []UserView{}
	}

	json.NewEncoder(w).Encode(views)
	return nil
}

func (h *UserHandler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) error {
	removed, err := h.store.Delete(r.Context(), r.PathValue("username"))
	if err != nil {
		return err
	}
	if !removed {
		return router.NewJsonError(http.StatusNotFound, "user not found")
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

// ExistsUserHandler answers HEAD presence checks with a bare status code.
func (h *UserHandler) ExistsUserHandler(w http.ResponseWriter, r *http.Request) error {
	exists, err := h.store.Exists(r.Context(), r.PathValue("username"))
	if err != nil {
		return fmt.Errorf("exists %q: %w", r.PathValue("username"), err)
	}
	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return nil
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
