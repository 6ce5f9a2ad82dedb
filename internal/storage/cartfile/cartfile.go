// Package cartfile persists the cart mapping to a single local file,
// the storefront's only durable slot. Saves are write-through and
// atomic; loads never fail the caller, degrading malformed or missing
// state to an empty cart.
package cartfile

import (
	"context"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/cart"
)

// Store reads and writes the cart slot at a fixed path.
type Store struct {
	path string
}

// NewStore returns a Store backed by the file at path. The file does
// not need to exist yet.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the cart slot.
func (s *Store) Path() string {
	return s.path
}

// Load reads the persisted cart mapping. A missing file, unreadable
// data, or a malformed payload all yield an empty cart; parse
// failures are logged and recovered, never surfaced. Entries with a
// non-positive quantity are dropped on load to restore the cart
// invariant.
func (s *Store) Load(ctx context.Context) cart.Cart {
	lg := zctx.From(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			lg.Warn("Cart slot unreadable, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return cart.New()
	}

	c, err := decode(data)
	if err != nil {
		lg.Warn("Cart slot corrupt, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return cart.New()
	}
	return c
}

// Save persists the full mapping, replacing prior state. The write is
// atomic: data goes to a temp file in the same directory which is
// then renamed over the slot.
func (s *Store) Save(ctx context.Context, c cart.Cart) error {
	data := encode(c)

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create cart slot directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temp cart slot")
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return errors.Wrap(err, "write cart slot")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "close cart slot")
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return errors.Wrap(err, "replace cart slot")
	}

	zctx.From(ctx).Debug("Cart saved",
		zap.String("path", s.path), zap.Int("entries", len(c)))
	return nil
}

// encode renders the cart as a JSON object with product IDs as keys
// and quantities as values, keys sorted for stable output.
func encode(c cart.Cart) []byte {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		for _, id := range ids {
			e.Field(id, func(e *jx.Encoder) {
				e.Int(c[id])
			})
		}
	})
	return e.Bytes()
}

func decode(data []byte) (cart.Cart, error) {
	c := cart.New()
	d := jx.DecodeBytes(data)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		qty, err := d.Int()
		if err != nil {
			return errors.Wrapf(err, "quantity for %q", key)
		}
		if qty > 0 {
			c[key] = qty
		}
		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "decode cart object")
	}
	return c, nil
}
