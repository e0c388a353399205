// Package imagecache loads and keeps decoded images for image shapes.
//
// Keys are the image keys stored on shapes. Raw bytes are registered with
// Add (or loaded from an fs.FS with Load) and decoded lazily on first use.
// Decoded images are kept in a bounded LRU. PNG, JPEG, GIF, BMP, TIFF and
// WebP are recognized.
package imagecache

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"log/slog"
	"sync"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/ggedit"
	"github.com/gogpu/ggedit/cache"
)

// ErrNotFound is returned for keys that were never added.
var ErrNotFound = errors.New("imagecache: image not found")

// Cache maps image keys to decoded images. It is safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	raw     map[string][]byte
	decoded *cache.Cache[string, image.Image]
}

// New returns an empty cache keeping at most capacity decoded images.
func New(capacity int) *Cache {
	return &Cache{
		raw:     make(map[string][]byte),
		decoded: cache.New[string, image.Image](capacity),
	}
}

// Add registers encoded image data under key, replacing any previous
// data and dropping its decoded form.
func (c *Cache) Add(key string, data []byte) {
	c.mu.Lock()
	c.raw[key] = data
	c.mu.Unlock()
	c.decoded.Delete(key)
}

// Load reads name from fsys and registers it under key.
func (c *Cache) Load(fsys fs.FS, key, name string) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("imagecache: load %q: %w", name, err)
	}
	c.Add(key, data)
	return nil
}

// Remove forgets key.
func (c *Cache) Remove(key string) {
	c.mu.Lock()
	delete(c.raw, key)
	c.mu.Unlock()
	c.decoded.Delete(key)
}

// Len returns the number of registered keys.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.raw)
}

// Decode returns the decoded image for key.
func (c *Cache) Decode(key string) (image.Image, error) {
	if img, ok := c.decoded.Get(key); ok {
		return img, nil
	}
	c.mu.RLock()
	data, ok := c.raw[key]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imagecache: decode %q: %w", key, err)
	}
	ggedit.Logger().Debug("imagecache: decoded",
		slog.String("key", key),
		slog.String("format", format),
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()))
	c.decoded.Set(key, img)
	return img, nil
}

// Image returns the decoded image for key. Failures are logged and
// reported as a miss.
func (c *Cache) Image(key string) (image.Image, bool) {
	img, err := c.Decode(key)
	if err != nil {
		ggedit.Logger().Warn("imagecache: image unavailable",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, false
	}
	return img, true
}

// Stats returns the decoded-image cache counters.
func (c *Cache) Stats() cache.Stats { return c.decoded.Stats() }
