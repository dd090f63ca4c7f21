package store

import (
	"context"
	"errors"
	"iter"

	"github.com/MarcSastreViB/chatrooms/models"
)

// ErrBlankUsername is returned when an operation is given an empty or
// whitespace-only username.
var ErrBlankUsername = errors.New("username is blank")

// UserStore is the global, authoritative registry of users. Usernames are
// matched case-insensitively in every operation.
type UserStore interface {
	// Register creates the user, replacing any existing entry with the same
	// canonical username key.
	Register(ctx context.Context, user models.User) error

	// Get returns the user, or nil when no user with that username exists.
	Get(ctx context.Context, username string) (*models.User, error)

	// Exists reports whether a user with that username is registered.
	Exists(ctx context.Context, username string) (bool, error)

	// Users returns a lazy, restartable sequence over a snapshot of all
	// users taken at the time of the call.
	Users(ctx context.Context) iter.Seq[models.User]

	// Delete removes the user and reports whether an entry was removed.
	// Deleting a user does not remove them from rooms they already joined,
	// nor invalidate messages they sent.
	Delete(ctx context.Context, username string) (bool, error)
}
