package models

import "strings"

// User is a globally registered identity. Two usernames that differ only in
// letter case refer to the same user; every membership and directory lookup
// compares users by their canonical key.
type User struct {
	Username string      `json:"username"`
	Photo    Base64Bytes `json:"photo,omitempty"`
}

// UserKey returns the canonical identity key for a username.
func UserKey(username string) string {
	return strings.ToLower(username)
}

// Key returns the canonical identity key of the user.
func (u User) Key() string {
	return UserKey(u.Username)
}

// HasPhoto reports whether the user has a profile photo set.
func (u User) HasPhoto() bool {
	return len(u.Photo) > 0
}
