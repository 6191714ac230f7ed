package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Upload is one incoming media file.
type Upload struct {
	Filename string
	Content  io.Reader
}

// Store writes property media to a local content directory. Files are named
// <kind>_<username>_<timestamp>_<n>.<ext> so a row's media can be traced back
// to the user and upload batch.
type Store struct {
	dir string
	now func() time.Time
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Store{dir: dir, now: time.Now}, nil
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".webm": true,
}

// Save persists the uploads and returns their stored filenames.
func (s *Store) Save(username string, uploads []Upload) ([]string, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	stamp := s.now().UTC().Format("20060102150405")
	refs := make([]string, 0, len(uploads))
	for i, up := range uploads {
		ext := strings.ToLower(filepath.Ext(up.Filename))
		if ext == "" {
			ext = ".bin"
		}
		kind := "photo"
		if videoExts[ext] {
			kind = "video"
		}

		name := fmt.Sprintf("%s_%s_%s_%d%s", kind, username, stamp, i, ext)
		if err := s.write(name, up.Content); err != nil {
			return nil, err
		}
		refs = append(refs, name)
	}
	return refs, nil
}

func (s *Store) write(name string, content io.Reader) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return fmt.Errorf("write media file: %w", err)
	}
	return nil
}
