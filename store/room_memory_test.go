package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/MarcSastreViB/chatrooms/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoomStore_Create(t *testing.T) {
	ctx := context.Background()
	rooms := NewMemoryRoomStore()

	id, err := rooms.Create(ctx)
	require.Nil(t, err)
	require.NotEmpty(t, id)

	room, err := rooms.Get(ctx, id)
	require.Nil(t, err)
	assert.Equal(t, id, room.ID())
	assert.Empty(t, room.Members())
	assert.Empty(t, room.Messages())

	other, err := rooms.Create(ctx)
	require.Nil(t, err)
	assert.NotEqual(t, id, other)
}

func TestMemoryRoomStore_Get(t *testing.T) {
	ctx := context.Background()
	rooms := NewMemoryRoomStore()

	t.Run("unknown room", func(t *testing.T) {
		_, err := rooms.Get(ctx, "missing")
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("returns a point-in-time snapshot", func(t *testing.T) {
		id, err := rooms.Create(ctx)
		require.Nil(t, err)

		snapshot, err := rooms.Get(ctx, id)
		require.Nil(t, err)

		err = rooms.Update(ctx, id, func(room *models.Room) error {
			room.AddMember(models.User{Username: "alice"})
			return nil
		})
		require.Nil(t, err)

		assert.Empty(t, snapshot.Members())

		current, err := rooms.Get(ctx, id)
		require.Nil(t, err)
		assert.Len(t, current.Members(), 1)
	})
}

func TestMemoryRoomStore_IDs(t *testing.T) {
	ctx := context.Background()
	rooms := NewMemoryRoomStore()

	assert.Empty(t, slices.Collect(rooms.IDs(ctx)))

	id1, err := rooms.Create(ctx)
	require.Nil(t, err)
	id2, err := rooms.Create(ctx)
	require.Nil(t, err)

	ids := slices.Collect(rooms.IDs(ctx))
	assert.ElementsMatch(t, []string{id1, id2}, ids)
}

func TestMemoryRoomStore_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown room", func(t *testing.T) {
		rooms := NewMemoryRoomStore()
		err := rooms.Update(ctx, "missing", func(room *models.Room) error {
			t.Fatal("fn must not be called for a missing room")
			return nil
		})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("fn error is returned as is", func(t *testing.T) {
		rooms := NewMemoryRoomStore()
		id, err := rooms.Create(ctx)
		require.Nil(t, err)

		sentinel := fmt.Errorf("boom")
		err = rooms.Update(ctx, id, func(room *models.Room) error {
			return sentinel
		})
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("concurrent updates of one room serialize", func(t *testing.T) {
		rooms := NewMemoryRoomStore()
		id, err := rooms.Create(ctx)
		require.Nil(t, err)

		const n = 32
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				rooms.Update(ctx, id, func(room *models.Room) error {
					room.AddMember(models.User{Username: fmt.Sprintf("user-%d", i)})
					return nil
				})
			}(i)
		}
		wg.Wait()

		room, err := rooms.Get(ctx, id)
		require.Nil(t, err)
		assert.Len(t, room.Members(), n)
	})
}
