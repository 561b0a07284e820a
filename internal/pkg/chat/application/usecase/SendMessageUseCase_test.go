package usecase_test

import (
	"context"
	"errors"
	"testing"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/usecase"
)

func seedUsers(t *testing.T, repo *memUserRepo, mobiles ...string) {
	t.Helper()
	for _, m := range mobiles {
		u, err := chat.NewUser(m, "", "")
		if err != nil {
			t.Fatalf("seed user %s: %v", m, err)
		}
		if err := repo.Upsert(context.Background(), *u); err != nil {
			t.Fatalf("seed user %s: %v", m, err)
		}
	}
}

func TestSendTextFailsWhenSenderMissing(t *testing.T) {
	users := newMemUserRepo()
	msgs := newMemMessageRepo()
	seedUsers(t, users, "222")

	uc := usecase.NewSendTextMessageUseCase(users, msgs)
	_, err := uc.Execute(context.Background(), usecase.SendTextMessageInput{
		SenderMobile: "111", ReceiverMobile: "222", Content: "hi",
	})
	if !errors.Is(err, chat.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if len(msgs.msgs) != 0 {
		t.Error("message was persisted despite failed validation")
	}
}

func TestSendTextFailsWhenReceiverMissing(t *testing.T) {
	users := newMemUserRepo()
	msgs := newMemMessageRepo()
	seedUsers(t, users, "111")

	uc := usecase.NewSendTextMessageUseCase(users, msgs)
	_, err := uc.Execute(context.Background(), usecase.SendTextMessageInput{
		SenderMobile: "111", ReceiverMobile: "222", Content: "hi",
	})
	if !errors.Is(err, chat.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}

func TestSendTextAssignsIdentityAndTimestamp(t *testing.T) {
	users := newMemUserRepo()
	msgs := newMemMessageRepo()
	seedUsers(t, users, "111", "222")

	uc := usecase.NewSendTextMessageUseCase(users, msgs)
	msg, err := uc.Execute(context.Background(), usecase.SendTextMessageInput{
		SenderMobile: "111", ReceiverMobile: "222", Content: "hi",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if msg.ID == "" {
		t.Error("store-assigned ID is empty")
	}
	if msg.CreatedAt.IsZero() {
		t.Error("store-assigned timestamp is zero")
	}
	if msg.IsFile {
		t.Error("text message marked as file")
	}
}

func TestSendTextWrapsRepositoryFailure(t *testing.T) {
	users := newMemUserRepo()
	users.err = errors.New("connection refused")
	msgs := newMemMessageRepo()

	uc := usecase.NewSendTextMessageUseCase(users, msgs)
	_, err := uc.Execute(context.Background(), usecase.SendTextMessageInput{
		SenderMobile: "111", ReceiverMobile: "222", Content: "hi",
	})
	if !errors.Is(err, usecase.ErrPersistence) {
		t.Errorf("err = %v, want ErrPersistence", err)
	}
}

func TestSendFileStoresPayloadVerbatim(t *testing.T) {
	users := newMemUserRepo()
	msgs := newMemMessageRepo()
	seedUsers(t, users, "111", "222")

	uc := usecase.NewSendFileMessageUseCase(users, msgs)
	msg, err := uc.Execute(context.Background(), usecase.SendFileMessageInput{
		SenderMobile: "111", ReceiverMobile: "222",
		FileName: "notes.txt", FileData: "aGVsbG8gd29ybGQ=",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !msg.IsFile {
		t.Error("file message not flagged")
	}
	if msg.Content != chat.FileContentLabel("notes.txt") {
		t.Errorf("Content = %q, want the attachment label", msg.Content)
	}
	if msg.FileData == nil || *msg.FileData != "aGVsbG8gd29ybGQ=" {
		t.Error("base64 payload not stored verbatim")
	}
}

func TestSendFileValidatesBothUsers(t *testing.T) {
	users := newMemUserRepo()
	msgs := newMemMessageRepo()
	seedUsers(t, users, "111")

	uc := usecase.NewSendFileMessageUseCase(users, msgs)
	_, err := uc.Execute(context.Background(), usecase.SendFileMessageInput{
		SenderMobile: "111", ReceiverMobile: "404",
		FileName: "notes.txt", FileData: "aGVsbG8=",
	})
	if !errors.Is(err, chat.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
