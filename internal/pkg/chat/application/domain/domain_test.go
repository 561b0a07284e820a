package chat_test

import (
	"errors"
	"strings"
	"testing"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
)

func TestNewUserAppliesDefaults(t *testing.T) {
	u, err := chat.NewUser("111", "", "")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.Username != "111" {
		t.Errorf("Username = %q, want the mobile key as default", u.Username)
	}
	if u.About != chat.DefaultAbout {
		t.Errorf("About = %q, want the placeholder bio", u.About)
	}
}

func TestNewUserKeepsExplicitFields(t *testing.T) {
	u, err := chat.NewUser("111", "alice", "hello")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	if u.Username != "alice" || u.About != "hello" {
		t.Errorf("got %+v, explicit fields must be kept verbatim", u)
	}
}

func TestNewUserRejectsEmptyMobile(t *testing.T) {
	if _, err := chat.NewUser("  ", "alice", ""); !errors.Is(err, chat.ErrEmptyMobile) {
		t.Errorf("err = %v, want ErrEmptyMobile", err)
	}
}

func TestPlaceholderUserHasEmptyAbout(t *testing.T) {
	u := chat.PlaceholderUser("999")
	if u.Mobile != "999" || u.Username != "999" || u.About != "" {
		t.Errorf("PlaceholderUser = %+v, want username mirroring mobile and empty about", u)
	}
}

func TestNewTextMessageValidation(t *testing.T) {
	if _, err := chat.NewTextMessage("", "222", "hi"); !errors.Is(err, chat.ErrEmptyMobile) {
		t.Errorf("missing sender: err = %v, want ErrEmptyMobile", err)
	}
	if _, err := chat.NewTextMessage("111", "222", "   "); !errors.Is(err, chat.ErrEmptyContent) {
		t.Errorf("blank content: err = %v, want ErrEmptyContent", err)
	}

	m, err := chat.NewTextMessage("111", "222", "hi")
	if err != nil {
		t.Fatalf("NewTextMessage: %v", err)
	}
	if m.IsFile {
		t.Error("text message marked as file")
	}
	if m.FileName != nil || m.FileData != nil {
		t.Error("text message carries file fields")
	}
}

func TestNewFileMessageSynthesizesLabel(t *testing.T) {
	m, err := chat.NewFileMessage("111", "222", "photo.png", "aGVsbG8=")
	if err != nil {
		t.Fatalf("NewFileMessage: %v", err)
	}
	if !m.IsFile {
		t.Error("file message not marked as file")
	}
	if !strings.HasSuffix(m.Content, "photo.png") {
		t.Errorf("Content = %q, want it to end with the file name", m.Content)
	}
	if m.Content == "photo.png" {
		t.Error("Content missing the attachment prefix")
	}
	if m.FileName == nil || *m.FileName != "photo.png" {
		t.Errorf("FileName not stored verbatim: %v", m.FileName)
	}
	if m.FileData == nil || *m.FileData != "aGVsbG8=" {
		t.Errorf("FileData not stored verbatim: %v", m.FileData)
	}
}

func TestNewFileMessageRequiresName(t *testing.T) {
	if _, err := chat.NewFileMessage("111", "222", " ", "data"); !errors.Is(err, chat.ErrEmptyFileName) {
		t.Errorf("err = %v, want ErrEmptyFileName", err)
	}
}
