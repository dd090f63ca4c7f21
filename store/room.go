package store

import (
	"context"
	"errors"
	"iter"

	"github.com/MarcSastreViB/chatrooms/models"
)

// ErrRoomNotFound is returned when a referenced room does not exist.
var ErrRoomNotFound = errors.New("room not found")

// RoomStore is a concurrent keyed collection of room aggregates. It owns the
// serialization of mutations: each room has its own exclusive lock, so
// mutating one room never blocks operations on other rooms or the insertion
// of new rooms. Rooms are never deleted.
type RoomStore interface {
	// Create allocates a new empty room with a fresh unique id and returns
	// the id.
	Create(ctx context.Context) (string, error)

	// Get returns a point-in-time snapshot of the room, or ErrRoomNotFound.
	Get(ctx context.Context, id string) (*models.Room, error)

	// IDs returns a lazy, restartable sequence over a snapshot of all room
	// ids taken at the time of the call.
	IDs(ctx context.Context) iter.Seq[string]

	// Update runs fn against the room under its exclusive lock: no other
	// mutation or snapshot read of the same room interleaves with fn. The
	// error returned by fn is returned as is; ErrRoomNotFound is returned
	// when the id is absent and fn is never called.
	//
	// fn must not block on external work; the lock is held for its whole
	// duration.
	Update(ctx context.Context, id string, fn func(*models.Room) error) error
}
