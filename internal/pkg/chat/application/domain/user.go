package chat

import (
	"errors"
	"strings"
)

// DefaultAbout is the placeholder bio assigned when a user registers without one.
const DefaultAbout = "Hey there! I am using Chat App"

// Domain-level errors for chat behaviors
var (
	ErrUserNotFound  = errors.New("chat: user not found")
	ErrEmptyMobile   = errors.New("chat: mobile is required")
	ErrEmptyContent  = errors.New("chat: message content is required")
	ErrEmptyFileName = errors.New("chat: file name is required")
)

// User is identified by a unique mobile-number string key. Registration is an
// upsert: re-registering the same mobile updates the record in place.
type User struct {
	Mobile   string `db:"mobile"`
	Username string `db:"username"`
	About    string `db:"about"`
}

// NewUser validates the mobile key and applies registration defaults: the
// username falls back to the mobile itself and the bio to DefaultAbout.
func NewUser(mobile, username, about string) (*User, error) {
	mobile = strings.TrimSpace(mobile)
	if mobile == "" {
		return nil, ErrEmptyMobile
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = mobile
	}
	about = strings.TrimSpace(about)
	if about == "" {
		about = DefaultAbout
	}
	return &User{Mobile: mobile, Username: username, About: about}, nil
}

// PlaceholderUser is the synthesized profile returned for an unknown mobile on
// profile lookups: username mirrors the mobile and the bio stays empty.
func PlaceholderUser(mobile string) User {
	return User{Mobile: mobile, Username: mobile, About: ""}
}
