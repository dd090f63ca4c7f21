package store

import (
	"context"
	"iter"
	"sync"

	"github.com/MarcSastreViB/chatrooms/models"
	"github.com/google/uuid"
)

// roomEntry pairs a room aggregate with its own lock. Mutations take the
// write lock; snapshot reads take the read lock just long enough to copy.
type roomEntry struct {
	mu   sync.RWMutex
	room *models.Room
}

// MemoryRoomStore is an in-memory RoomStore. The top-level index supports
// concurrent insert and lookup; each room is guarded by a per-room lock so
// contention on one room leaves the rest of the store untouched.
type MemoryRoomStore struct {
	rooms *SyncMap[string, *roomEntry]
}

func NewMemoryRoomStore() *MemoryRoomStore {
	return &MemoryRoomStore{
		rooms: NewSyncMap[string, *roomEntry](),
	}
}

func (s *MemoryRoomStore) Create(ctx context.Context) (string, error) {
	id := uuid.New().String()
	s.rooms.Store(id, &roomEntry{room: models.NewRoom(id)})
	return id, nil
}

func (s *MemoryRoomStore) Get(ctx context.Context, id string) (*models.Room, error) {
	entry, ok := s.rooms.Load(id)
	if !ok {
		return nil, ErrRoomNotFound
	}
	entry.mu.RLock()
	defer entry.mu.RUnlock()
	return entry.room.Snapshot(), nil
}

func (s *MemoryRoomStore) IDs(ctx context.Context) iter.Seq[string] {
	ids := s.rooms.Keys()
	return func(yield func(string) bool) {
		for _, id := range ids {
			if !yield(id) {
				return
			}
		}
	}
}

func (s *MemoryRoomStore) Update(ctx context.Context, id string, fn func(*models.Room) error) error {
	entry, ok := s.rooms.Load(id)
	if !ok {
		return ErrRoomNotFound
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	return fn(entry.room)
}
