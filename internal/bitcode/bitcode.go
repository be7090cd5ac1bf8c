// Package bitcode fixes the loading contract for serialized Prism modules.
// Decoding a concrete image format is the caller's business; this package
// only defines the decoder interface and the eager and lazy entry points the
// pipeline tools go through.
package bitcode

import (
	"errors"
	"fmt"

	"github.com/prism-lang/prism/internal/ir"
)

// Decoder turns a serialized module image into an IR module.
type Decoder interface {
	Decode(data []byte, ctx *ir.Context) (*ir.Module, error)
}

// LazyDecoder is implemented by decoders that can defer materializing
// function bodies until first access.
type LazyDecoder interface {
	Decoder
	DecodeLazy(data []byte, ctx *ir.Context) (*ir.Module, error)
}

// ErrNoDecoder is returned when no decoder was supplied.
var ErrNoDecoder = errors.New("bitcode: no decoder")

// Load eagerly materializes a module from data. A failed load carries no
// diagnostic text beyond the decoder's error; a known limitation.
func Load(dec Decoder, data []byte, ctx *ir.Context) (*ir.Module, error) {
	if dec == nil {
		return nil, ErrNoDecoder
	}
	m, err := dec.Decode(data, ctx)
	if err != nil {
		return nil, fmt.Errorf("bitcode: load: %w", err)
	}
	return m, nil
}

// LoadLazy materializes a module lazily when the decoder supports it, taking
// ownership of data. Decoders without a lazy mode fall back to eager loading.
func LoadLazy(dec Decoder, data []byte, ctx *ir.Context) (*ir.Module, error) {
	if dec == nil {
		return nil, ErrNoDecoder
	}
	if ld, ok := dec.(LazyDecoder); ok {
		m, err := ld.DecodeLazy(data, ctx)
		if err != nil {
			return nil, fmt.Errorf("bitcode: lazy load: %w", err)
		}
		return m, nil
	}
	return Load(dec, data, ctx)
}
