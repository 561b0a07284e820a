package usecase_test

import (
	"context"
	"errors"
	"testing"

	chat "github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/domain"
	"github.com/duvarakeshss/mini-chat/internal/pkg/chat/application/usecase"
)

func TestRegisterIsAnUpsert(t *testing.T) {
	users := newMemUserRepo()
	uc := usecase.NewRegisterUserUseCase(users)
	ctx := context.Background()

	first, err := uc.Execute(ctx, usecase.RegisterUserInput{Mobile: "111"})
	if err != nil {
		t.Fatalf("first register: %v", err)
	}
	if first.Username != "111" || first.About != chat.DefaultAbout {
		t.Errorf("defaults not applied: %+v", first)
	}

	second, err := uc.Execute(ctx, usecase.RegisterUserInput{Mobile: "111", Username: "alice", About: "new bio"})
	if err != nil {
		t.Fatalf("re-register: %v", err)
	}
	if second.Username != "alice" || second.About != "new bio" {
		t.Errorf("re-registration did not update fields: %+v", second)
	}

	stored, err := users.Get(ctx, "111")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Username != "alice" {
		t.Errorf("stored username = %q, want the updated value", stored.Username)
	}
}

// TestLoginAndProfileAsymmetry pins the intentional difference between the two
// lookups: login fails for unknown users, profile lookup synthesizes defaults.
func TestLoginAndProfileAsymmetry(t *testing.T) {
	users := newMemUserRepo()
	ctx := context.Background()

	login := usecase.NewLoginUseCase(users)
	if _, err := login.Execute(ctx, usecase.LoginInput{Mobile: "999"}); !errors.Is(err, chat.ErrUserNotFound) {
		t.Errorf("login unknown: err = %v, want ErrUserNotFound", err)
	}

	profile := usecase.NewGetUserUseCase(users, nil)
	u, err := profile.Execute(ctx, usecase.GetUserInput{Mobile: "999"})
	if err != nil {
		t.Fatalf("profile unknown: %v", err)
	}
	if u.Username != "999" || u.About != "" {
		t.Errorf("placeholder = %+v, want username=mobile and empty about", u)
	}
}

func TestLoginReturnsStoredUser(t *testing.T) {
	users := newMemUserRepo()
	seedUsers(t, users, "111")

	login := usecase.NewLoginUseCase(users)
	u, err := login.Execute(context.Background(), usecase.LoginInput{Mobile: "111"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if u.Mobile != "111" {
		t.Errorf("Mobile = %q, want 111", u.Mobile)
	}
}

func TestGetUserReadsThroughCache(t *testing.T) {
	users := newMemUserRepo()
	cache := newMemCache()
	seedUsers(t, users, "111")
	ctx := context.Background()

	uc := usecase.NewGetUserUseCase(users, cache)
	if _, err := uc.Execute(ctx, usecase.GetUserInput{Mobile: "111"}); err != nil {
		t.Fatalf("first lookup: %v", err)
	}

	// Break the repository; a cached profile must still be served.
	users.err = errors.New("db down")
	u, err := uc.Execute(ctx, usecase.GetUserInput{Mobile: "111"})
	if err != nil {
		t.Fatalf("cached lookup: %v", err)
	}
	if u.Mobile != "111" {
		t.Errorf("cached profile = %+v", u)
	}
}

func TestGetUserMissDoesNotCachePlaceholder(t *testing.T) {
	users := newMemUserRepo()
	cache := newMemCache()
	ctx := context.Background()

	uc := usecase.NewGetUserUseCase(users, cache)
	if _, err := uc.Execute(ctx, usecase.GetUserInput{Mobile: "999"}); err != nil {
		t.Fatalf("lookup: %v", err)
	}

	// Register the user afterwards; the next lookup must see the real record,
	// not a cached placeholder.
	seedUsers(t, users, "999")
	u, err := uc.Execute(ctx, usecase.GetUserInput{Mobile: "999"})
	if err != nil {
		t.Fatalf("second lookup: %v", err)
	}
	if u.About != chat.DefaultAbout {
		t.Errorf("About = %q, placeholder was cached over the real record", u.About)
	}
}
