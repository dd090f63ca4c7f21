package handlers

import "github.com/MarcSastreViB/chatrooms/models"

// RegisterUserPayload is the user registration request body. Photo is an
// optional base64-encoded profile photo.
type RegisterUserPayload struct {
	Username string             `json:"username"`
	Photo    models.Base64Bytes `json:"photo,omitempty"`
}

type UserView struct {
	Username string             `json:"username"`
	Photo    models.Base64Bytes `json:"photo,omitempty"`
}

func NewUserView(user models.User) UserView {
	return UserView{
		Username: user.Username,
		Photo:    user.Photo,
	}
}
