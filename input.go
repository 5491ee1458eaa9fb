package aoc

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// InputSource supplies the raw puzzle input for a day.
type InputSource interface {
	Input(day int) ([]byte, error)
}

// ErrOffline is returned by FileOrFetch when an input is not cached and
// fetching is disabled.
var ErrOffline = errors.New("aoc: input not cached and fetching is disabled")

// FileOrFetch reads <Dir>/<day>.input, and if it doesn't exist downloads
// it from the puzzle site with the session cookie and caches it there.
type FileOrFetch struct {
	Dir     string
	Year    int
	BaseURL string
	Offline bool

	// Session returns the session cookie value. It is only called when
	// an input has to be fetched.
	Session func() (string, error)

	Client *http.Client
	Logger *zap.Logger
}

func (f *FileOrFetch) logger() *zap.Logger {
	if f.Logger == nil {
		return zap.NewNop()
	}
	return f.Logger
}

// Input implements InputSource.
func (f *FileOrFetch) Input(day int) ([]byte, error) {
	filename := filepath.Join(f.Dir, fmt.Sprintf("%d.input", day))
	b, err := os.ReadFile(filename)
	if err == nil {
		f.logger().Debug("input cached", zap.String("file", filename))
		return b, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if f.Offline {
		return nil, fmt.Errorf("%w: %s", ErrOffline, filename)
	}

	url := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimRight(f.BaseURL, "/"), f.Year, day)
	f.logger().Info("fetching input", zap.String("url", url))
	b, err = f.fetch(url)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, b, 0644); err != nil {
		return nil, err
	}
	return b, nil
}

func (f *FileOrFetch) fetch(url string) ([]byte, error) {
	if f.Session == nil {
		return nil, errors.New("aoc: no session configured")
	}
	session, err := f.Session()
	if err != nil {
		return nil, fmt.Errorf("reading session: %w", err)
	}
	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: strings.TrimSpace(session)})
	res, err := Or(f.Client, http.DefaultClient).Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status fetching %s: %v", url, res.Status)
	}
	return io.ReadAll(res.Body)
}

// StaticInputs serves inputs from memory, keyed by day.
type StaticInputs map[int]string

// Input implements InputSource.
func (s StaticInputs) Input(day int) ([]byte, error) {
	in, ok := s[day]
	if !ok {
		return nil, fmt.Errorf("no input for day %d", day)
	}
	return []byte(in), nil
}
