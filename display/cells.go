package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/easel/canvas"
)

// quadrantChars maps 4-bit pixel patterns to Unicode quadrant characters.
// Bit order: 0=UL, 1=UR, 2=LL, 3=LR (1 = foreground).
var quadrantChars = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

// Cell is one terminal cell of a converted image
type Cell struct {
	Rune  rune
	Style tcell.Style
}

type rgb struct {
	r, g, b int
}

// RenderCells converts a pixel buffer to a cols x rows cell grid, packing
// a 2x2 pixel block into each cell via the quadrant character whose
// two-color split minimizes squared error. The image is centered; cells
// outside it stay dark.
func RenderCells(im *canvas.Image, cols, rows int) []Cell {
	cells := make([]Cell, cols*rows)
	for i := range cells {
		cells[i] = Cell{Rune: ' ', Style: tcell.StyleDefault}
	}
	if im.Empty() {
		return cells
	}

	imCols := (im.W + 1) / 2
	imRows := (im.H + 1) / 2
	offX := (cols - imCols) / 2
	offY := (rows - imRows) / 2

	for cy := 0; cy < imRows; cy++ {
		ty := cy + offY
		if ty < 0 || ty >= rows {
			continue
		}
		for cx := 0; cx < imCols; cx++ {
			tx := cx + offX
			if tx < 0 || tx >= cols {
				continue
			}
			var block [4]rgb
			px := cx * 2
			py := cy * 2
			block[0] = at(im, px, py)
			block[1] = at(im, px+1, py)
			block[2] = at(im, px, py+1)
			block[3] = at(im, px+1, py+1)

			ch, fg, bg := bestQuadrant(block)
			cells[ty*cols+tx] = Cell{
				Rune: ch,
				Style: tcell.StyleDefault.
					Foreground(tcell.NewRGBColor(int32(fg.r), int32(fg.g), int32(fg.b))).
					Background(tcell.NewRGBColor(int32(bg.r), int32(bg.g), int32(bg.b))),
			}
		}
	}
	return cells
}

// at clamps sampling to the image edge so odd dimensions reuse the last
// row/column
func at(im *canvas.Image, x, y int) rgb {
	if x >= im.W {
		x = im.W - 1
	}
	if y >= im.H {
		y = im.H - 1
	}
	r, g, b := im.At(x, y)
	return rgb{int(r), int(g), int(b)}
}

// bestQuadrant searches all 16 fg/bg splits of a 2x2 block for the one
// with minimal squared color error
func bestQuadrant(block [4]rgb) (rune, rgb, rgb) {
	bestErr := int(^uint(0) >> 1)
	bestPattern := 0
	var bestFg, bestBg rgb

	for pattern := 0; pattern < 16; pattern++ {
		fg, bg, err := patternColors(block, pattern)
		if err < bestErr {
			bestErr = err
			bestPattern = pattern
			bestFg = fg
			bestBg = bg
		}
	}
	return quadrantChars[bestPattern], bestFg, bestBg
}

// patternColors averages each group of the split and returns the total
// squared error of representing the block with those two colors
func patternColors(block [4]rgb, pattern int) (fg, bg rgb, totalErr int) {
	var fgSum, bgSum rgb
	var fgN, bgN int

	for i := 0; i < 4; i++ {
		if pattern&(1<<i) != 0 {
			fgSum.r += block[i].r
			fgSum.g += block[i].g
			fgSum.b += block[i].b
			fgN++
		} else {
			bgSum.r += block[i].r
			bgSum.g += block[i].g
			bgSum.b += block[i].b
			bgN++
		}
	}
	if fgN > 0 {
		fg = rgb{fgSum.r / fgN, fgSum.g / fgN, fgSum.b / fgN}
	}
	if bgN > 0 {
		bg = rgb{bgSum.r / bgN, bgSum.g / bgN, bgSum.b / bgN}
	}

	for i := 0; i < 4; i++ {
		target := bg
		if pattern&(1<<i) != 0 {
			target = fg
		}
		dr := block[i].r - target.r
		dg := block[i].g - target.g
		db := block[i].b - target.b
		totalErr += dr*dr + dg*dg + db*db
	}
	return fg, bg, totalErr
}
