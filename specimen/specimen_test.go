package specimen

import (
	"testing"

	"github.com/lixenwraith/easel/canvas"
)

func TestPlaceholderSentinel(t *testing.T) {
	p := NewPlaceholder()
	if !p.Placeholder {
		t.Errorf("expected placeholder flag set")
	}
	if len(p.Strokes) != 0 || p.W != 0 || p.H != 0 {
		t.Errorf("expected empty zero-size placeholder")
	}
}

func TestInitialFromTarget(t *testing.T) {
	target := canvas.New(32, 20)
	s := Initial(target)
	if s.Placeholder {
		t.Errorf("expected real specimen, got placeholder")
	}
	if s.W != 32 || s.H != 20 {
		t.Errorf("expected 32x20, got %dx%d", s.W, s.H)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := Initial(canvas.New(10, 10))
	s.Strokes = append(s.Strokes, Stroke{X: 5, Y: 5, Radius: 2, Elong: 1, Opacity: 1, R: 255})
	cl := s.Clone()
	cl.Strokes[0].R = 0
	if s.Strokes[0].R != 255 {
		t.Errorf("expected clone not to alias stroke storage")
	}
}

func TestRenderBackground(t *testing.T) {
	s := Initial(canvas.New(8, 8))
	im := s.Render()
	r, g, b := im.At(3, 3)
	if r != BackgroundR || g != BackgroundG || b != BackgroundB {
		t.Errorf("expected background color, got (%d,%d,%d)", r, g, b)
	}
}

func TestStrokeDrawCoversCenter(t *testing.T) {
	im := canvas.New(16, 16)
	st := Stroke{X: 8, Y: 8, Radius: 4, Elong: 1, Opacity: 1, R: 200, G: 10, B: 10, Brush: BrushRound}
	st.Draw(im)
	r, _, _ := im.At(8, 8)
	if r != 200 {
		t.Errorf("expected full-opacity center hit, got %d", r)
	}
	// Far corner untouched
	if r, _, _ := im.At(0, 0); r != 0 {
		t.Errorf("expected corner untouched, got %d", r)
	}
}

func TestStrokeDrawClipsAtEdges(t *testing.T) {
	im := canvas.New(8, 8)
	st := Stroke{X: 0, Y: 0, Radius: 20, Elong: 1, Opacity: 1, R: 9, G: 9, B: 9, Brush: BrushRound}
	// Must not panic while painting mostly out of bounds
	st.Draw(im)
	if r, _, _ := im.At(0, 0); r != 9 {
		t.Errorf("expected corner painted, got %d", r)
	}
}

func TestSoftBrushFadesTowardRim(t *testing.T) {
	im := canvas.New(32, 32)
	st := Stroke{X: 16, Y: 16, Radius: 10, Elong: 1, Opacity: 1, R: 255, G: 255, B: 255, Brush: BrushCanvas}
	st.Draw(im)
	center, _, _ := im.At(16, 16)
	rim, _, _ := im.At(16+8, 16)
	if center <= rim {
		t.Errorf("expected center brighter than rim, got center=%d rim=%d", center, rim)
	}
}

func TestBrushSetStrings(t *testing.T) {
	tests := []struct {
		b    BrushSet
		want string
	}{
		{BrushCanvas, "canvas"},
		{BrushRound, "round"},
		{BrushStreak, "streak"},
		{BrushSet(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
