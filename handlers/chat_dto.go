package handlers

import (
	"time"

	"github.com/MarcSastreViB/chatrooms/models"
	"github.com/samber/lo"
)

type CreateRoomResponse struct {
	ID string `json:"id"`
}

type AddMemberPayload struct {
	Username string `json:"username"`
}

// RoomView is the transport projection of a room: its members in insertion
// order and its messages in append order.
type RoomView struct {
	ID       string        `json:"id"`
	Members  []UserView    `json:"members"`
	Messages []MessageView `json:"messages"`
}

type MessageView struct {
	ID       string     `json:"id"`
	RoomID   string     `json:"room_id"`
	Sender   string     `json:"sender"`
	Content  string     `json:"content"`
	SentAt   time.Time  `json:"sent_at"`
	Edited   bool       `json:"edited"`
	EditedAt *time.Time `json:"edited_at,omitempty"`
}

func NewRoomView(room *models.Room) RoomView {
	return RoomView{
		ID: room.ID(),
		Members: lo.Map(room.Members(), func(u models.User, _ int) UserView {
			return NewUserView(u)
		}),
		Messages: lo.Map(room.Messages(), func(m models.Message, _ int) MessageView {
			return NewMessageView(room.ID(), &m)
		}),
	}
}

func NewMessageView(roomID string, msg *models.Message) MessageView {
	view := MessageView{
		ID:      msg.ID(),
		RoomID:  roomID,
		Sender:  msg.Sender().Username,
		Content: msg.Content(),
		SentAt:  msg.SentAt(),
		Edited:  msg.Edited(),
	}
	if editedAt, ok := msg.EditedAt(); ok {
		view.EditedAt = &editedAt
	}
	return view
}
