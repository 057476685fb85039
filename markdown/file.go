package markdown

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/banterhq/banter"
)

// WriteFile exports the session to path, creating parent directories as
// needed. A ".md" extension is appended when path has none.
func WriteFile(path string, s banter.Session) (string, error) {
	if !strings.EqualFold(filepath.Ext(path), ".md") {
		path += ".md"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("create directories: %w", err)
	}
	if err := os.WriteFile(path, []byte(Export(s)), 0o600); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}
	return path, nil
}

// ReadFile imports the transcript at path.
func ReadFile(path string) (banter.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return banter.Session{}, fmt.Errorf("read transcript: %w", err)
	}
	s, err := Import(string(data))
	if err != nil {
		return banter.Session{}, fmt.Errorf("import %s: %w", path, err)
	}
	return s, nil
}

// ImportGlob imports every transcript matching pattern (doublestar syntax,
// ** matches recursively). Files that fail to parse are skipped; the result
// holds the sessions that imported cleanly, in match order.
func ImportGlob(pattern string) ([]banter.Session, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %q: %w", pattern, err)
	}
	var sessions []banter.Session
	for _, path := range matches {
		s, err := ReadFile(path)
		if err != nil {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
