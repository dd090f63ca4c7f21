package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMessage(t *testing.T) {

	t.Run("first content assignment moves the message to sent", func(t *testing.T) {
		before := time.Now().UTC()
		msg, err := NewMessage("1", User{Username: "alice"}, "hello")
		after := time.Now().UTC()

		require.Nil(t, err)
		assert.Equal(t, "1", msg.ID())
		assert.Equal(t, "alice", msg.Sender().Username)
		assert.Equal(t, "hello", msg.Content())
		assert.WithinRange(t, msg.SentAt(), before, after)
		assert.False(t, msg.Edited())
		_, ok := msg.EditedAt()
		assert.False(t, ok)
	})

	t.Run("blank content is rejected", func(t *testing.T) {
		for _, content := range []string{"", "   ", "\t\n"} {
			msg, err := NewMessage("1", User{Username: "alice"}, content)
			assert.ErrorIs(t, err, ErrBlankContent)
			assert.Nil(t, msg)
		}
	})
}

func TestMessage_SetContent(t *testing.T) {

	t.Run("equal content is a no-op", func(t *testing.T) {
		msg, err := NewMessage("1", User{Username: "alice"}, "hello")
		require.Nil(t, err)
		sentAt := msg.SentAt()

		require.Nil(t, msg.SetContent("hello"))

		assert.Equal(t, "hello", msg.Content())
		assert.Equal(t, sentAt, msg.SentAt())
		assert.False(t, msg.Edited())
		_, ok := msg.EditedAt()
		assert.False(t, ok)
	})

	t.Run("different content marks the message edited", func(t *testing.T) {
		msg, err := NewMessage("1", User{Username: "alice"}, "hello")
		require.Nil(t, err)
		sentAt := msg.SentAt()

		before := time.Now().UTC()
		require.Nil(t, msg.SetContent("hello world"))
		after := time.Now().UTC()

		assert.Equal(t, "hello world", msg.Content())
		assert.Equal(t, sentAt, msg.SentAt())
		assert.True(t, msg.Edited())
		editedAt, ok := msg.EditedAt()
		require.True(t, ok)
		assert.WithinRange(t, editedAt, before, after)
	})

	t.Run("blank content is rejected without mutating", func(t *testing.T) {
		msg, err := NewMessage("1", User{Username: "alice"}, "hello")
		require.Nil(t, err)

		assert.ErrorIs(t, msg.SetContent("   "), ErrBlankContent)

		assert.Equal(t, "hello", msg.Content())
		assert.False(t, msg.Edited())
	})
}
