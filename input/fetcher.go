// Package input downloads puzzle inputs and caches them on disk.
package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/advent2020/config"
)

var (
	ErrInvalidCharacters = errors.New("input contains invalid characters")
	ErrMissingSession    = errors.New("no session token configured")
)

var log = commonlog.GetLogger("advent.input")

type Fetcher struct {
	BaseURL      string
	Year         int
	Dir          string
	TokenFile    string
	Session      string
	RequestDelay time.Duration

	httpClient *http.Client

	mu          sync.Mutex
	lastRequest time.Time
}

func NewFetcher(cfg config.Config) *Fetcher {
	return &Fetcher{
		BaseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		Year:         cfg.Year,
		Dir:          cfg.InputDir,
		TokenFile:    cfg.TokenFile,
		Session:      cfg.Session,
		RequestDelay: cfg.RequestDelay,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}
}

// Path returns the cache file for day.
func (f *Fetcher) Path(day int) string {
	return filepath.Join(f.Dir, fmt.Sprintf("day%02d.txt", day))
}

func (f *Fetcher) inputURL(day int) string {
	return fmt.Sprintf("%s/%d/day/%d/input", f.BaseURL, f.Year, day)
}

// Input returns the cached input for day, downloading it first if the cache
// is missing or invalid.
func (f *Fetcher) Input(ctx context.Context, day int) (string, error) {
	path := f.Path(day)
	if data, err := os.ReadFile(path); err == nil {
		if Valid(string(data)) {
			log.Debugf("cache hit: %s", path)
			return string(data), nil
		}
		log.Warningf("ignoring invalid cache file: %s", path)
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("read cache: %w", err)
	}

	log.Debugf("cache miss: %s", path)
	data, err := f.Fetch(ctx, day)
	if err != nil {
		return "", err
	}

	if err := f.Store(day, data); err != nil {
		return "", err
	}
	return data, nil
}

// Store writes data to the cache file for day.
func (f *Fetcher) Store(day int, data string) error {
	if !Valid(data) {
		return fmt.Errorf("day %d: %w", day, ErrInvalidCharacters)
	}
	if err := os.MkdirAll(f.Dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := os.WriteFile(f.Path(day), []byte(data), 0644); err != nil {
		return fmt.Errorf("write cache: %w", err)
	}
	return nil
}

// Fetch downloads the input for day without touching the cache.
func (f *Fetcher) Fetch(ctx context.Context, day int) (string, error) {
	session, err := f.session()
	if err != nil {
		return "", err
	}
	if err := f.throttle(ctx); err != nil {
		return "", err
	}

	url := f.inputURL(day)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("fetch input: %w", err)
	}
	req.Header.Set("Cookie", "session="+session)

	log.Infof("GET %s", url)
	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch input: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch input: HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	data := string(body)
	if !Valid(data) {
		return "", fmt.Errorf("day %d: %w", day, ErrInvalidCharacters)
	}
	return data, nil
}

func (f *Fetcher) session() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.Session != "" {
		return f.Session, nil
	}
	if f.TokenFile == "" {
		return "", ErrMissingSession
	}
	data, err := os.ReadFile(f.TokenFile)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s not found", ErrMissingSession, f.TokenFile)
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrMissingSession, f.TokenFile)
	}
	f.Session = token
	return token, nil
}

// throttle waits until RequestDelay has passed since the previous request.
func (f *Fetcher) throttle(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.lastRequest.IsZero() {
		if wait := f.RequestDelay - time.Since(f.lastRequest); wait > 0 {
			log.Infof("waiting %s before next request", wait.Round(time.Millisecond))
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	f.lastRequest = time.Now()
	return nil
}

// Valid reports whether s consists only of printable ASCII and newlines.
func Valid(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\n' && (c < 0x20 || c > 0x7e) {
			return false
		}
	}
	return true
}
