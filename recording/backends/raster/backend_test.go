package raster

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/gogpu/outlined"
	"github.com/gogpu/outlined/recording"
)

func square(x, y, size float64) *outlined.Path {
	p := outlined.NewPath()
	p.MoveTo(x, y)
	p.LineTo(x+size, y)
	p.LineTo(x+size, y+size)
	p.LineTo(x, y+size)
	p.Close()
	return p
}

func TestBackendRegistration(t *testing.T) {
	b, err := recording.NewBackend("png")
	if err != nil {
		t.Fatalf("NewBackend(png) error = %v", err)
	}
	if _, ok := b.(*Backend); !ok {
		t.Fatalf("NewBackend(png) = %T, want *raster.Backend", b)
	}
}

func TestBackendBeginValidatesSize(t *testing.T) {
	if err := NewBackend().Begin(0, 10); err == nil {
		t.Error("Begin(0, 10) error = nil, want error")
	}
	b := NewBackend()
	if err := b.DrawGeometry(nil, outlined.Pen{}, square(0, 0, 1)); err == nil {
		t.Error("DrawGeometry() before Begin error = nil, want error")
	}
}

func TestBackendPlayback(t *testing.T) {
	rec := recording.NewRecorder(40, 40)
	rec.Translate(10, 10)
	_ = rec.DrawGeometry(outlined.Solid(outlined.RGB(1, 0, 0)), outlined.Pen{}, square(0, 0, 20))

	b := NewBackend()
	b.SetBackground(outlined.White)
	if err := rec.FinishRecording().Playback(b); err != nil {
		t.Fatalf("Playback() error = %v", err)
	}

	img := b.Image()
	if got := img.RGBAAt(20, 20); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("pixel inside square = %v, want red", got)
	}
	if got := img.RGBAAt(5, 5); got != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("pixel outside square = %v, want white background", got)
	}
}

func TestBackendWriteTo(t *testing.T) {
	b := NewBackend()
	if _, err := b.WriteTo(&bytes.Buffer{}); err == nil {
		t.Error("WriteTo() before Begin error = nil, want error")
	}
	if err := b.Begin(8, 8); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	if err := b.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}

	var buf bytes.Buffer
	n, err := b.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo() = %d bytes, buffer has %d", n, buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}
