package store

import (
	"context"
	"slices"
	"strings"

	"github.com/MarcSastreViB/chatrooms/models"
	"github.com/google/uuid"
)

// MemoryChatStore is a ChatStore over the in-memory user registry and room
// store. There is no cross-store transaction: correctness relies on the
// authoritative membership checks running inside the room's exclusive lock,
// which is never held across a user registry lookup.
type MemoryChatStore struct {
	rooms RoomStore
	users UserStore
}

func NewMemoryChatStore(rooms RoomStore, users UserStore) *MemoryChatStore {
	return &MemoryChatStore{
		rooms: rooms,
		users: users,
	}
}

func (s *MemoryChatStore) CreateRoom(ctx context.Context) (string, error) {
	return s.rooms.Create(ctx)
}

func (s *MemoryChatStore) RoomIDs(ctx context.Context) ([]string, error) {
	return slices.Collect(s.rooms.IDs(ctx)), nil
}

func (s *MemoryChatStore) GetRoom(ctx context.Context, roomID string) (*models.Room, error) {
	return s.rooms.Get(ctx, roomID)
}

func (s *MemoryChatStore) AddUser(ctx context.Context, roomID, username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrBlankUsername
	}

	user, err := s.users.Get(ctx, username)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	return s.rooms.Update(ctx, roomID, func(room *models.Room) error {
		if !room.AddMember(*user) {
			return ErrAlreadyMember
		}
		return nil
	})
}

func (s *MemoryChatStore) SendMessage(ctx context.Context, roomID string, input MessageCreateInput) (*models.Message, error) {
	if strings.TrimSpace(input.Sender) == "" {
		return nil, ErrBlankUsername
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, models.ErrBlankContent
	}

	room, err := s.rooms.Get(ctx, roomID)
	if err != nil {
		return nil, err
	}

	sender, err := s.users.Get(ctx, input.Sender)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrUserNotFound
	}

	// Pre-check on a snapshot; the authoritative check runs inside the
	// room's lock below.
	if !room.IsMember(sender.Username) {
		return nil, ErrNotMember
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}
	msg, err := models.NewMessage(id, *sender, input.Content)
	if err != nil {
		return nil, err
	}

	err = s.rooms.Update(ctx, roomID, func(room *models.Room) error {
		if !room.AddMessage(msg) {
			return ErrNotMember
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return msg, nil
}
