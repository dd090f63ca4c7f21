package store

import (
	"context"
	"errors"

	"github.com/MarcSastreViB/chatrooms/models"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrUserNotFound is returned when a referenced user is not globally
	// registered.
	ErrUserNotFound = errors.New("user not found")
	// ErrAlreadyMember is returned when adding a user that is already a
	// member of the room.
	ErrAlreadyMember = errors.New("user is already a room member")
	// ErrNotMember is returned when a message's sender is not a member of
	// the room it is posted to.
	ErrNotMember = errors.New("sender is not a room member")
)

var validate = validator.New()

// ChatStore orchestrates operations that span the user registry and the room
// store: it resolves identity globally before mutating a room, and re-checks
// room invariants inside the room's exclusive lock.
type ChatStore interface {
	// CreateRoom creates a new empty room and returns its id.
	CreateRoom(ctx context.Context) (string, error)

	// RoomIDs returns the ids of all rooms.
	RoomIDs(ctx context.Context) ([]string, error)

	// GetRoom returns a point-in-time snapshot of the room, or
	// ErrRoomNotFound.
	GetRoom(ctx context.Context, roomID string) (*models.Room, error)

	// AddUser adds a globally registered user to the room.
	// It returns ErrBlankUsername when the username is blank,
	// ErrUserNotFound when the user is not registered, ErrRoomNotFound when
	// the room does not exist, and ErrAlreadyMember when the user is
	// already a member.
	AddUser(ctx context.Context, roomID, username string) error

	// SendMessage posts a message to the room on behalf of input.Sender and
	// returns the accepted message.
	// It returns ErrBlankUsername or models.ErrBlankContent when the input
	// is blank, ErrRoomNotFound or ErrUserNotFound when the room or sender
	// does not exist, and ErrNotMember when the sender is not a member of
	// the room.
	SendMessage(ctx context.Context, roomID string, input MessageCreateInput) (*models.Message, error)
}

// MessageCreateInput represents the input for posting a message.
// ID is optional; a fresh id is assigned when it is empty.
type MessageCreateInput struct {
	ID      string `json:"id,omitempty"`
	Sender  string `json:"sender" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// Validate validates the message input.
func (m *MessageCreateInput) Validate() error {
	return validate.Struct(m)
}
