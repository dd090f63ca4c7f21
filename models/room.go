package models

import "slices"

// Room is a chat room aggregate: a duplicate-free, insertion-ordered member
// list and an append-only message sequence. Every message in the room was
// sent by a user who was a member at the moment the message was accepted.
//
// Room methods do no locking of their own. Mutations and snapshot reads must
// be serialized by the owner of the aggregate (see store.RoomStore), so that
// two collections spanning one invariant are never observed half-mutated.
type Room struct {
	id       string
	members  []User
	messages []Message
}

// NewRoom creates an empty room with the given id.
func NewRoom(id string) *Room {
	return &Room{id: id}
}

func (r *Room) ID() string {
	return r.id
}

// AddMember appends user to the member list. It returns false without
// mutating the room when a current member shares the user's canonical key.
func (r *Room) AddMember(user User) bool {
	if r.IsMember(user.Username) {
		return false
	}
	r.members = append(r.members, user)
	return true
}

// AddMessage appends msg to the message sequence. It returns false without
// mutating the room when the message has no sender or the sender is not a
// current member.
func (r *Room) AddMessage(msg *Message) bool {
	if msg == nil || msg.sender.Username == "" {
		return false
	}
	if !r.IsMember(msg.sender.Username) {
		return false
	}
	r.messages = append(r.messages, *msg)
	return true
}

// IsMember reports whether a member with the same canonical username key is
// currently in the room.
func (r *Room) IsMember(username string) bool {
	key := UserKey(username)
	for _, m := range r.members {
		if m.Key() == key {
			return true
		}
	}
	return false
}

// Members returns the member list in insertion order.
func (r *Room) Members() []User {
	return slices.Clone(r.members)
}

// Messages returns the message sequence in append order.
func (r *Room) Messages() []Message {
	return slices.Clone(r.messages)
}

// Snapshot returns a point-in-time copy of the room. Mutating the copy or
// the original afterwards does not affect the other.
func (r *Room) Snapshot() *Room {
	return &Room{
		id:       r.id,
		members:  slices.Clone(r.members),
		messages: slices.Clone(r.messages),
	}
}
