package decoder

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"
)

func TestDecodeConvertsToRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 80}); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	// jpeg.Decode yields YCbCr for baseline JPEGs, so this exercises the
	// conversion path.
	got, err := NewJPEGDecoder().Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	if len(got.Pix) != 8*6*4 {
		t.Fatalf("pixel buffer length = %d", len(got.Pix))
	}
}

func TestDecodeRejectsEmptyAndGarbage(t *testing.T) {
	d := NewJPEGDecoder()
	if _, err := d.Decode(nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
	if _, err := d.Decode([]byte("not a jpeg")); err == nil {
		t.Fatal("expected error for garbage payload")
	}
}
