package display

import (
	"testing"

	"github.com/lixenwraith/easel/canvas"
)

func TestRenderCellsUniformBlockIsFull(t *testing.T) {
	im := canvas.New(2, 2)
	im.Fill(200, 100, 50)
	cells := RenderCells(im, 1, 1)
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(cells))
	}
	// A uniform block needs no split; pattern 0 (all background) wins the
	// tie and renders as a space over the block color
	if cells[0].Rune != ' ' {
		t.Errorf("expected space for uniform block, got %q", cells[0].Rune)
	}
}

func TestRenderCellsHalfBlock(t *testing.T) {
	// Top row white, bottom row black: the upper-half char splits with
	// zero error
	im := canvas.New(2, 2)
	im.Set(0, 0, 255, 255, 255)
	im.Set(1, 0, 255, 255, 255)
	cells := RenderCells(im, 1, 1)
	r := cells[0].Rune
	if r != '▀' && r != '▄' {
		t.Errorf("expected a half-block split, got %q", r)
	}
}

func TestRenderCellsCentersSmallImage(t *testing.T) {
	im := canvas.New(2, 2)
	im.Fill(255, 0, 0)
	cells := RenderCells(im, 5, 5)
	if len(cells) != 25 {
		t.Fatalf("expected 25 cells, got %d", len(cells))
	}
	// Image occupies exactly one cell in the middle; corners stay default
	center := cells[2*5+2]
	corner := cells[0]
	if center.Style == corner.Style {
		t.Errorf("expected center cell styled differently from the default corner")
	}
}

func TestRenderCellsEmptyImage(t *testing.T) {
	cells := RenderCells(canvas.New(0, 0), 4, 3)
	if len(cells) != 12 {
		t.Fatalf("expected 12 cells, got %d", len(cells))
	}
	for i, c := range cells {
		if c.Rune != ' ' {
			t.Errorf("cell %d: expected blank, got %q", i, c.Rune)
		}
	}
}

func TestRenderCellsOddDimensions(t *testing.T) {
	// 3x3 image maps to 2x2 cells; the edge row/column is reused. Must
	// not panic or read out of bounds.
	im := canvas.New(3, 3)
	im.Fill(10, 20, 30)
	cells := RenderCells(im, 2, 2)
	if len(cells) != 4 {
		t.Fatalf("expected 4 cells, got %d", len(cells))
	}
}

func TestPatternColorsExactSplit(t *testing.T) {
	block := [4]rgb{
		{255, 255, 255}, {255, 255, 255},
		{0, 0, 0}, {0, 0, 0},
	}
	// Pattern 0b0011 puts the top row in the foreground
	fg, bg, err := patternColors(block, 0b0011)
	if err != 0 {
		t.Errorf("expected zero error for exact split, got %d", err)
	}
	if fg != (rgb{255, 255, 255}) || bg != (rgb{0, 0, 0}) {
		t.Errorf("expected white fg / black bg, got %v / %v", fg, bg)
	}
}
