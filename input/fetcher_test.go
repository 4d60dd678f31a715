package input

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dhamidi/advent2020/config"
)

func newTestFetcher(t *testing.T, url string) *Fetcher {
	t.Helper()
	cfg := config.Default()
	cfg.BaseURL = url
	cfg.InputDir = filepath.Join(t.TempDir(), "inputs")
	cfg.TokenFile = ""
	cfg.Session = "secret"
	cfg.RequestDelay = 0
	return NewFetcher(cfg)
}

func TestFetcherDownloadsAndCaches(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		if r.URL.Path != "/2020/day/3/input" {
			t.Errorf("path = %q", r.URL.Path)
		}
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "secret" {
			t.Errorf("session cookie = %v, %v", cookie, err)
		}
		w.Write([]byte("..#\n#..\n"))
	}))
	defer server.Close()

	f := newTestFetcher(t, server.URL)
	for i := 0; i < 2; i++ {
		got, err := f.Input(context.Background(), 3)
		if err != nil {
			t.Fatalf("Input: %v", err)
		}
		if got != "..#\n#..\n" {
			t.Errorf("Input = %q", got)
		}
	}
	if n := requests.Load(); n != 1 {
		t.Errorf("server saw %d requests, want 1", n)
	}

	cached, err := os.ReadFile(f.Path(3))
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	if string(cached) != "..#\n#..\n" {
		t.Errorf("cache = %q", cached)
	}
	if filepath.Base(f.Path(3)) != "day03.txt" {
		t.Errorf("Path = %q", f.Path(3))
	}
}

func TestFetcherReplacesInvalidCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("42\n"))
	}))
	defer server.Close()

	f := newTestFetcher(t, server.URL)
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(f.Path(1), []byte("<html>\x00"), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := f.Input(context.Background(), 1)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != "42\n" {
		t.Errorf("Input = %q, want fresh download", got)
	}
}

func TestFetcherErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/2020/day/1/input":
			http.Error(w, "Please log in", http.StatusBadRequest)
		default:
			w.Write([]byte("caf\xc3\xa9\n"))
		}
	}))
	defer server.Close()

	f := newTestFetcher(t, server.URL)
	if _, err := f.Input(context.Background(), 1); err == nil {
		t.Error("HTTP 400 did not fail")
	}
	if _, err := f.Input(context.Background(), 2); !errors.Is(err, ErrInvalidCharacters) {
		t.Errorf("err = %v, want ErrInvalidCharacters", err)
	}
	if _, err := os.Stat(f.Path(2)); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("invalid input was cached")
	}
}

func TestFetcherSessionFromTokenFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, _ := r.Cookie("session")
		if cookie == nil || cookie.Value != "from-file" {
			http.Error(w, "bad session", http.StatusUnauthorized)
			return
		}
		w.Write([]byte("ok\n"))
	}))
	defer server.Close()

	f := newTestFetcher(t, server.URL)
	f.Session = ""
	f.TokenFile = filepath.Join(t.TempDir(), "token.txt")

	if _, err := f.Fetch(context.Background(), 1); !errors.Is(err, ErrMissingSession) {
		t.Errorf("err = %v, want ErrMissingSession", err)
	}

	if err := os.WriteFile(f.TokenFile, []byte("  from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Fetch(context.Background(), 1); err != nil {
		t.Errorf("Fetch: %v", err)
	}
}

func TestFetcherThrottle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("1\n"))
	}))
	defer server.Close()

	f := newTestFetcher(t, server.URL)
	f.RequestDelay = 50 * time.Millisecond

	start := time.Now()
	for day := 1; day <= 2; day++ {
		if _, err := f.Fetch(context.Background(), day); err != nil {
			t.Fatalf("Fetch: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < f.RequestDelay {
		t.Errorf("two requests took %s, want at least %s", elapsed, f.RequestDelay)
	}

	f.RequestDelay = time.Hour
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := f.Fetch(ctx, 3); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"abc 123\n#.#\n", true},
		{"tab\there", false},
		{"crlf\r\n", false},
		{"caf\xc3\xa9", false},
		{"~", true},
		{"\x7f", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Valid(tt.input); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFetcherStore(t *testing.T) {
	f := newTestFetcher(t, "http://unused.invalid")

	if err := f.Store(5, "FBFBBFFRLR\n"); err != nil {
		t.Fatalf("Store: %v", err)
	}
	got, err := f.Input(context.Background(), 5)
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != "FBFBBFFRLR\n" {
		t.Errorf("Input = %q", got)
	}

	if err := f.Store(6, "a\x00b"); !errors.Is(err, ErrInvalidCharacters) {
		t.Errorf("err = %v, want ErrInvalidCharacters", err)
	}
}
