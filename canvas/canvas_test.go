package canvas

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

func TestImageAtSetBounds(t *testing.T) {
	im := New(4, 3)
	im.Set(1, 2, 10, 20, 30)
	r, g, b := im.At(1, 2)
	if r != 10 || g != 20 || b != 30 {
		t.Errorf("expected (10,20,30), got (%d,%d,%d)", r, g, b)
	}

	// Out-of-bounds is a no-op read/write, not a panic
	im.Set(-1, 0, 1, 1, 1)
	im.Set(4, 0, 1, 1, 1)
	if r, g, b := im.At(-1, 5); r != 0 || g != 0 || b != 0 {
		t.Errorf("expected black for out-of-bounds, got (%d,%d,%d)", r, g, b)
	}
}

func TestCloneIndependence(t *testing.T) {
	im := New(2, 2)
	im.Set(0, 0, 5, 5, 5)
	cl := im.Clone()
	cl.Set(0, 0, 9, 9, 9)
	if r, _, _ := im.At(0, 0); r != 5 {
		t.Errorf("expected original untouched (5), got %d", r)
	}
}

func TestScaleToFitDimensions(t *testing.T) {
	tests := []struct {
		srcW, srcH, maxW, maxH int
		wantW, wantH           int
	}{
		{100, 50, 40, 40, 40, 20},
		{50, 100, 40, 40, 20, 40},
		{100, 100, 30, 20, 20, 20},
		{10, 10, 10, 10, 10, 10},
	}
	for _, tt := range tests {
		out := ScaleToFit(New(tt.srcW, tt.srcH), tt.maxW, tt.maxH)
		if out.W != tt.wantW || out.H != tt.wantH {
			t.Errorf("scale %dx%d into %dx%d: expected %dx%d, got %dx%d",
				tt.srcW, tt.srcH, tt.maxW, tt.maxH, tt.wantW, tt.wantH, out.W, out.H)
		}
	}
}

func TestScaleToFitPreservesFlatColor(t *testing.T) {
	src := New(64, 64)
	src.Fill(120, 60, 200)
	out := ScaleToFit(src, 16, 16)
	for y := 0; y < out.H; y++ {
		for x := 0; x < out.W; x++ {
			r, g, b := out.At(x, y)
			if r != 120 || g != 60 || b != 200 {
				t.Fatalf("expected flat color at (%d,%d), got (%d,%d,%d)", x, y, r, g, b)
			}
		}
	}
}

func TestBoxBlurFlatIsIdentity(t *testing.T) {
	src := New(10, 10)
	src.Fill(80, 90, 100)
	out := BoxBlur(src, 2)
	if out.W != 10 || out.H != 10 {
		t.Fatalf("expected 10x10, got %dx%d", out.W, out.H)
	}
	r, g, b := out.At(5, 5)
	if r != 80 || g != 90 || b != 100 {
		t.Errorf("expected flat color preserved, got (%d,%d,%d)", r, g, b)
	}
}

func TestBoxBlurSmooths(t *testing.T) {
	src := New(11, 11)
	src.Set(5, 5, 255, 255, 255)
	out := BoxBlur(src, 2)
	r, _, _ := out.At(5, 5)
	if r == 0 || r == 255 {
		t.Errorf("expected spike spread into neighborhood, got center %d", r)
	}
	nr, _, _ := out.At(4, 5)
	if nr == 0 {
		t.Errorf("expected neighbor to pick up energy, got 0")
	}
}

func TestGradientSampleInBounds(t *testing.T) {
	im := New(8, 6)
	for x := 0; x < 8; x++ {
		im.Set(x, 3, 255, 255, 255)
	}
	g := NewGradient(im)
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		x, y := g.Sample(rng)
		if x < 0 || x >= 8 || y < 0 || y >= 6 {
			t.Fatalf("sample out of bounds: (%d,%d)", x, y)
		}
	}
}

func TestGradientBiasTowardEdges(t *testing.T) {
	im := New(16, 16)
	for y := 0; y < 16; y++ {
		for x := 8; x < 16; x++ {
			im.Set(x, y, 255, 255, 255)
		}
	}
	g := NewGradient(im)
	rng := rand.New(rand.NewPCG(7, 7))
	nearEdge := 0
	const samples = 2000
	for i := 0; i < samples; i++ {
		x, _ := g.Sample(rng)
		if x >= 6 && x <= 9 {
			nearEdge++
		}
	}
	// Edge band is 4/16 of the area but carries nearly all magnitude
	if nearEdge < samples/2 {
		t.Errorf("expected most samples near the vertical edge, got %d/%d", nearEdge, samples)
	}
}

func TestDecodeFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bogus.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(path); err == nil {
		t.Errorf("expected decode error for corrupt file")
	}
	if _, err := Decode(filepath.Join(dir, "missing.png")); err == nil {
		t.Errorf("expected decode error for missing file")
	}
}
