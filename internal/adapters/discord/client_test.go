package discord

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"discord-archive/internal/domain"
)

func TestDeleteMessageRequestShape(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	status, err := client.DeleteMessage(context.Background(), "секретный-токен", "5", "42")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if status != http.StatusNoContent {
		t.Fatalf("ожидали 204, получили %d", status)
	}
	if gotMethod != http.MethodDelete {
		t.Fatalf("ожидали DELETE, получили %s", gotMethod)
	}
	if gotPath != "/channels/5/messages/42" {
		t.Fatalf("неверный путь: %s", gotPath)
	}
	if gotAuth != "секретный-токен" {
		t.Fatalf("токен должен передаваться без изменений, получили %q", gotAuth)
	}
}

// Код отказа не превращается в ошибку — вызывающий решает сам.
func TestDeleteMessageStatusPassthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	status, err := client.DeleteMessage(context.Background(), "tok", "5", "42")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if status != http.StatusForbidden {
		t.Fatalf("ожидали 403, получили %d", status)
	}
}

func TestDeleteMessageTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	if _, err := client.DeleteMessage(context.Background(), "tok", "5", "42"); !errors.Is(err, domain.ErrRemoteUnavailable) {
		t.Fatalf("ожидали ErrRemoteUnavailable, получили %v", err)
	}
}

func TestCurrentUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/@me" {
			t.Errorf("неверный путь: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"123456789012345678","username":"alice","avatar":"abcdef"}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	user, status, err := client.CurrentUser(context.Background(), "tok")
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d", status)
	}
	if user.Username != "alice" {
		t.Fatalf("ожидали alice, получили %q", user.Username)
	}
	want := "https://cdn.discordapp.com/avatars/123456789012345678/abcdef.png"
	if user.AvatarURL != want {
		t.Fatalf("неверный аватар: %q", user.AvatarURL)
	}
}

func TestCurrentUserUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	user, status, err := client.CurrentUser(context.Background(), "плохой")
	if err != nil {
		t.Fatalf("код отказа не ошибка: %v", err)
	}
	if status != http.StatusUnauthorized || user.Username != "" {
		t.Fatalf("ожидали пустого пользователя и 401, получили %+v и %d", user, status)
	}
}
