package coords

import "testing"

func TestUnsignedEdges(t *testing.T) {
	q := NewQuantizer(801, 601)

	x, y := q.Unsigned(0, 0)
	if x != 0 || y != 0 {
		t.Fatalf("origin must map to (0,0), got (%d,%d)", x, y)
	}
	x, y = q.Unsigned(800, 600)
	if x != Scale || y != Scale {
		t.Fatalf("far edge must map to (%d,%d), got (%d,%d)", Scale, Scale, x, y)
	}
	x, y = q.Unsigned(400, 300)
	if x <= 0 || x >= Scale || y <= 0 || y >= Scale {
		t.Fatalf("midpoint out of range: (%d,%d)", x, y)
	}
}

func TestUnsignedClampsOutside(t *testing.T) {
	q := NewQuantizer(801, 601)

	x, y := q.Unsigned(-50, -50)
	if x != 0 || y != 0 {
		t.Fatalf("negative input must clamp to 0, got (%d,%d)", x, y)
	}
	x, y = q.Unsigned(10000, 10000)
	if x != Scale || y != Scale {
		t.Fatalf("oversized input must clamp to %d, got (%d,%d)", Scale, x, y)
	}
}

func TestSignedDelta(t *testing.T) {
	q := NewQuantizer(801, 601)

	dx, dy := q.Signed(80, -60)
	if dx <= 0 || dy >= 0 {
		t.Fatalf("signed delta signs wrong: (%d,%d)", dx, dy)
	}
	zx, zy := q.Signed(0, 0)
	if zx != 0 || zy != 0 {
		t.Fatalf("zero delta must stay zero, got (%d,%d)", zx, zy)
	}
}

func TestZeroSizeQuantizer(t *testing.T) {
	q := NewQuantizer(0, 0)
	x, y := q.Unsigned(100, 100)
	if x != 0 || y != 0 {
		t.Fatalf("unsized quantizer must emit 0, got (%d,%d)", x, y)
	}

	q.SetSize(801, 601)
	x, _ = q.Unsigned(800, 0)
	if x != Scale {
		t.Fatalf("after SetSize far edge must map to %d, got %d", Scale, x)
	}
}

func TestDenormalizeInvertsEdges(t *testing.T) {
	x, y := Denormalize(0, 0, 1920, 1080)
	if x != 0 || y != 0 {
		t.Fatalf("normalized origin must land at (0,0), got (%v,%v)", x, y)
	}
	x, y = Denormalize(Scale, Scale, 1920, 1080)
	if x != 1919 || y != 1079 {
		t.Fatalf("normalized max must land at (1919,1079), got (%v,%v)", x, y)
	}
}

func TestDenormalizeRoundTrip(t *testing.T) {
	q := NewQuantizer(1920, 1080)
	nx, ny := q.Unsigned(960, 540)
	x, y := Denormalize(nx, ny, 1920, 1080)
	if x < 959 || x > 961 || y < 539 || y > 541 {
		t.Fatalf("round trip drifted: (%v,%v)", x, y)
	}
}
