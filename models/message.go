package models

import (
	"errors"
	"strings"
	"time"
)

// ErrBlankContent is returned when a message is created or edited with
// empty or whitespace-only content.
var ErrBlankContent = errors.New("message content is blank")

// Message is a chat message sent by a room member.
//
// Content moves through an explicit state machine: it is set exactly once at
// creation (recording the sent time), and later re-assignments with different
// content mark the message edited and record the edit time. Re-assigning the
// current content is a no-op. Identity and sender never change.
type Message struct {
	id       string
	sender   User
	content  string
	sentAt   time.Time
	edited   bool
	editedAt time.Time
}

// NewMessage creates a message in the sent state. It fails with
// ErrBlankContent when content is empty or whitespace-only.
func NewMessage(id string, sender User, content string) (*Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrBlankContent
	}
	return &Message{
		id:      id,
		sender:  sender,
		content: content,
		sentAt:  time.Now().UTC(),
	}, nil
}

// SetContent replaces the message content. Setting content equal to the
// current content leaves the message untouched; different content marks the
// message edited and records the edit time, preserving the sent time. Blank
// content is rejected without mutating the message.
func (m *Message) SetContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrBlankContent
	}
	if content == m.content {
		return nil
	}
	m.content = content
	m.edited = true
	m.editedAt = time.Now().UTC()
	return nil
}

func (m *Message) ID() string {
	return m.id
}

func (m *Message) Sender() User {
	return m.sender
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) SentAt() time.Time {
	return m.sentAt
}

func (m *Message) Edited() bool {
	return m.edited
}

// EditedAt returns the time of the last edit. The second return value is
// false when the message has never been edited.
func (m *Message) EditedAt() (time.Time, bool) {
	return m.editedAt, m.edited
}
