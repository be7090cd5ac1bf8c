package bitcode

import (
	"errors"
	"testing"

	"github.com/prism-lang/prism/internal/ir"
)

type stubDecoder struct {
	err  error
	lazy *bool
}

func (d stubDecoder) Decode(data []byte, ctx *ir.Context) (*ir.Module, error) {
	if d.err != nil {
		return nil, d.err
	}
	return ir.NewModule(ctx, "stub"), nil
}

type stubLazyDecoder struct {
	stubDecoder
}

func (d stubLazyDecoder) DecodeLazy(data []byte, ctx *ir.Context) (*ir.Module, error) {
	*d.lazy = true
	return d.Decode(data, ctx)
}

func TestLoad(t *testing.T) {
	ctx := ir.NewContext()
	m, err := Load(stubDecoder{}, nil, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil || m.Name != "stub" {
		t.Errorf("module = %v", m)
	}
}

func TestLoadNoDecoder(t *testing.T) {
	if _, err := Load(nil, nil, ir.NewContext()); !errors.Is(err, ErrNoDecoder) {
		t.Fatalf("error = %v, want ErrNoDecoder", err)
	}
	if _, err := LoadLazy(nil, nil, ir.NewContext()); !errors.Is(err, ErrNoDecoder) {
		t.Fatalf("lazy error = %v, want ErrNoDecoder", err)
	}
}

func TestLoadWrapsDecodeError(t *testing.T) {
	boom := errors.New("truncated image")
	_, err := Load(stubDecoder{err: boom}, nil, ir.NewContext())
	if !errors.Is(err, boom) {
		t.Fatalf("error = %v, want wrapped decode error", err)
	}
}

func TestLoadLazyPrefersLazyMode(t *testing.T) {
	lazy := false
	dec := stubLazyDecoder{stubDecoder{lazy: &lazy}}
	if _, err := LoadLazy(dec, nil, ir.NewContext()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !lazy {
		t.Errorf("lazy decoder not used")
	}
}

func TestLoadLazyFallsBackToEager(t *testing.T) {
	m, err := LoadLazy(stubDecoder{}, nil, ir.NewContext())
	if err != nil || m == nil {
		t.Fatalf("fallback load = (%v, %v)", m, err)
	}
}
