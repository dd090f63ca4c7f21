package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MarcSastreViB/chatrooms/pkg/router"
	"github.com/MarcSastreViB/chatrooms/store"
)

type ChatHandler struct {
	chatStore store.ChatStore
}

func NewChatHandler(chatStore store.ChatStore) *ChatHandler {
	return &ChatHandler{chatStore: chatStore}
}

func (h *ChatHandler) CreateRoomHandler(w http.ResponseWriter, r *http.Request) error {
	id, err := h.chatStore.CreateRoom(r.Context())
	if err != nil {
		return err
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateRoomResponse{ID: id})
	return nil
}

func (h *ChatHandler) ListRoomsHandler(w http.ResponseWriter, r *http.Request) error {
	ids, err := h.chatStore.RoomIDs(r.Context())
	if err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}

	json.NewEncoder(w).Encode(ids)
	return nil
}

func (h *ChatHandler) GetRoomHandler(w http.ResponseWriter, r *http.Request) error {
	room, err := h.chatStore.GetRoom(r.Context(), r.PathValue("roomID"))
	if err != nil {
		return err
	}

	json.NewEncoder(w).Encode(NewRoomView(room))
	return nil
}

// AddRoomMemberHandler adds a registered user to the room and responds with
// the updated room projection.
func (h *ChatHandler) AddRoomMemberHandler(w http.ResponseWriter, r *http.Request) error {
	var payload AddMemberPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		return router.NewJsonError(http.StatusBadRequest, "invalid request body")
	}
	defer r.Body.Close()

	roomID := r.PathValue("roomID")
	if err := h.chatStore.AddUser(r.Context(), roomID, payload.Username); err != nil {
		return err
	}

	room, err := h.chatStore.GetRoom(r.Context(), roomID)
	if err != nil {
		return err
	}

	json.NewEncoder(w).Encode(NewRoomView(room))
	return nil
}

// SendMessageHandler posts a message to the room and responds with the
// updated room projection.
func (h *ChatHandler) SendMessageHandler(w http.ResponseWriter, r *http.Request) error {
	var input store.MessageCreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		return router.NewJsonError(http.StatusBadRequest, "invalid request body")
	}
	defer r.Body.Close()

	if err := input.Validate(); err != nil {
		return router.NewJsonError(http.StatusBadRequest, err.Error())
	}

	roomID := r.PathValue("roomID")
	if _, err := h.chatStore.SendMessage(r.Context(), roomID, input); err != nil {
		return err
	}

	room, err := h.chatStore.GetRoom(r.Context(), roomID)
	if err != nil {
		return err
	}

	json.NewEncoder(w).Encode(NewRoomView(room))
	return nil
}
