package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"Teller/internal/cli/auth"
)

// Отказ refresh: учётные данные очищаются, обработчик завершения сессии
// получает путь исходного запроса и признак expired, ошибка несёт
// ErrSessionExpired.
func TestClient_RefreshFailureEndsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"refresh token revoked"}`))
	})
	mux.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	store := newStore("tok", "ref-dead")
	var gotPath string
	var gotExpired bool
	c := New(ts.URL, store, WithSessionEndedHandler(func(returnPath string, expired bool) {
		gotPath = returnPath
		gotExpired = expired
	}))

	err := c.GetJSON(context.Background(), "/accounts", nil)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if gotPath != "/accounts" || !gotExpired {
		t.Fatalf("session-ended handler got (%q, %v)", gotPath, gotExpired)
	}
	creds, _ := store.Load()
	if !creds.Empty() {
		t.Fatalf("credentials must be cleared on session end: %+v", creds)
	}
}

// Отсутствие refresh-токена — немедленное завершение сессии без обращения
// к серверу refresh.
func TestClient_MissingRefreshTokenEndsSession(t *testing.T) {
	refreshCalled := false
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalled = true
	})
	mux.HandleFunc("/clients", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	store := &auth.MemStore{}
	_ = store.Save(auth.Credentials{AccessToken: "tok-only"})
	c := New(ts.URL, store)

	err := c.GetJSON(context.Background(), "/clients", nil)
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if refreshCalled {
		t.Fatalf("refresh endpoint must not be called without a stored refresh token")
	}
}

// Ответ refresh без access-токена трактуется как отказ.
func TestClient_EmptyRefreshResponseEndsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})
	mux.HandleFunc("/clients", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	store := newStore("tok", "ref")
	c := New(ts.URL, store)
	if err := c.GetJSON(context.Background(), "/clients", nil); !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	creds, _ := store.Load()
	if !creds.Empty() {
		t.Fatalf("credentials must be cleared: %+v", creds)
	}
}

// Ожидающие запросы при отказе refresh получают ErrSessionExpired, а не
// зависают.
func TestClient_WaitersReleasedOnRefreshFailure(t *testing.T) {
	gate := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		<-gate
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c := New(ts.URL, newStore("tok", "ref"))

	const n = 4
	go func() {
		for {
			c.mu.Lock()
			parked := len(c.waiters)
			c.mu.Unlock()
			if parked == n-1 {
				close(gate)
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.GetJSON(context.Background(), "/accounts", nil)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if !errors.Is(err, ErrSessionExpired) {
			t.Fatalf("request %d: expected ErrSessionExpired, got %v", i, err)
		}
	}
}

// Отмена контекста во время ожидания refresh снимает запрос с очереди чисто:
// broadcast в буферизованный канал не блокируется и не паникует.
func TestClient_ContextCancelWhileWaiting(t *testing.T) {
	gate := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		<-gate
		_, _ = w.Write([]byte(`{"accessToken":"tok-new"}`))
	})
	mux.HandleFunc("/accounts", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "Bearer tok-new" {
			_, _ = w.Write([]byte(`{}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	c := New(ts.URL, newStore("tok", "ref"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.GetJSON(context.Background(), "/accounts", nil) }()

	// дождаться, пока первый запрос захватит флаг refreshing
	for {
		c.mu.Lock()
		refreshing := c.refreshing
		c.mu.Unlock()
		if refreshing {
			break
		}
		time.Sleep(time.Millisecond)
	}

	waiter := make(chan error, 1)
	go func() { waiter <- c.GetJSON(ctx, "/accounts", nil) }()

	// дождаться, пока второй запрос встанет в очередь
	for {
		c.mu.Lock()
		parked := len(c.waiters)
		c.mu.Unlock()
		if parked == 1 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	cancel()
	if err := <-waiter; !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled waiter: expected context.Canceled, got %v", err)
	}

	close(gate)
	if err := <-done; err != nil {
		t.Fatalf("refresher request must still succeed: %v", err)
	}
}

func TestClient_GetBlob(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write(pdf)
	}))
	defer ts.Close()

	c := New(ts.URL, newStore("tok", "ref"))
	got, err := c.GetBlob(context.Background(), "/statements/TG12EGA0000112345678901?debut=2026-01-01&fin=2026-02-01")
	if err != nil {
		t.Fatalf("GetBlob: %v", err)
	}
	if string(got) != string(pdf) {
		t.Fatalf("blob mismatch: %q", got)
	}
}
