package bubbletea

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/banterhq/banter"
)

const imageCommand = "/image"

// maxImageSize caps attachments at 4 MiB, within provider inline limits.
const maxImageSize = 4 << 20

var mimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// parseImageCommand recognizes "/image <path> [caption]" input lines. It
// returns the attachment path, the caption (possibly empty), and whether
// the line was an image command at all.
func parseImageCommand(text string) (path, caption string, ok bool) {
	if !strings.HasPrefix(text, imageCommand+" ") {
		return "", "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(text, imageCommand+" "))
	if rest == "" {
		return "", "", false
	}
	path, caption, _ = strings.Cut(rest, " ")
	return path, strings.TrimSpace(caption), true
}

// loadImage reads the file at path as an inline attachment.
func loadImage(path string) (*banter.Image, error) {
	mimeType, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("unsupported image type %q", filepath.Ext(path))
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("attach image: %w", err)
	}
	if info.Size() > maxImageSize {
		return nil, fmt.Errorf("image %s exceeds %d MiB", path, maxImageSize>>20)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("attach image: %w", err)
	}
	return &banter.Image{Data: data, MimeType: mimeType}, nil
}

// exportPath builds a unique-per-session transcript filename under dir.
func exportPath(dir, sessionID string) string {
	short := sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	name := fmt.Sprintf("chat-%s-%s.md", time.Now().Format("2006-01-02"), short)
	return filepath.Join(dir, name)
}
