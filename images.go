package folio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	jpegQuality        = 80
	thumbnailCacheSize = 64
	maxSourceSize      = 10 << 20 // 10MB
)

// Thumbnail widths the /img/:width/* route accepts.
var thumbnailWidths = map[int]bool{320: true, 640: true, 960: true, 1280: true}

var errNotImage = errors.New("not a decodable image")

// resizeImage decodes src, shrinks it to width if wider, and encodes JPEG.
func resizeImage(src io.Reader, width int) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNotImage, err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// thumbnailCache keeps the most recent resized images in memory, evicting
// the oldest entry once max is reached.
type thumbnailCache struct {
	root fs.FS
	max  int

	mu      sync.Mutex
	entries map[string][]byte
	order   []string
}

func newThumbnailCache(staticDir string, max int) *thumbnailCache {
	return &thumbnailCache{
		root:    os.DirFS(staticDir),
		max:     max,
		entries: make(map[string][]byte),
	}
}

func (t *thumbnailCache) get(width int, name string) ([]byte, error) {
	key := strconv.Itoa(width) + "/" + name

	t.mu.Lock()
	if b, ok := t.entries[key]; ok {
		t.mu.Unlock()
		return b, nil
	}
	t.mu.Unlock()

	f, err := t.root.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := resizeImage(io.LimitReader(f, maxSourceSize), width)
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[key]; !ok {
		if len(t.order) >= t.max {
			delete(t.entries, t.order[0])
			t.order = t.order[1:]
		}
		t.order = append(t.order, key)
	}
	t.entries[key] = b
	return b, nil
}

func (a *App) handleThumbnail(c echo.Context) error {
	width, err := strconv.Atoi(c.Param("width"))
	if err != nil || !thumbnailWidths[width] {
		return echo.ErrNotFound
	}
	name := strings.TrimPrefix(path.Clean("/"+c.Param("*")), "/")
	if !fs.ValidPath(name) || name == "." {
		return echo.ErrNotFound
	}

	b, err := a.thumbs.get(width, name)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return echo.ErrNotFound
	case errors.Is(err, errNotImage):
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, "unsupported image")
	case err != nil:
		return err
	}
	return c.Blob(http.StatusOK, "image/jpeg", b)
}

// imageMIME guesses a MIME type from the file extension.
func imageMIME(p string) string {
	switch strings.ToLower(path.Ext(p)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	}
	return "image/jpeg"
}
