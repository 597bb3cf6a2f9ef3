package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Blit copies a width x height rectangle of src starting at (srcX, srcY)
// onto dst at (dstX, dstY). Cells falling outside either surface are skipped.
//
// fgAlpha and bgAlpha control opacity: 1 replaces the destination,
// 0 leaves it untouched, anything between blends the two colors.
func Blit(src Surface, srcX, srcY, width, height int, dst Surface, dstX, dstY int, fgAlpha, bgAlpha float64) {
	fgAlpha = clamp01(fgAlpha)
	bgAlpha = clamp01(bgAlpha)

	srcW, srcH := src.Size()
	dstW, dstH := dst.Size()

	for j := 0; j < height; j++ {
		sy, dy := srcY+j, dstY+j
		if sy < 0 || sy >= srcH || dy < 0 || dy >= dstH {
			continue
		}
		for i := 0; i < width; i++ {
			sx, dx := srcX+i, dstX+i
			if sx < 0 || sx >= srcW || dx < 0 || dx >= dstW {
				continue
			}

			from := src.Cell(sx, sy)
			if fgAlpha == 1 && bgAlpha == 1 {
				dst.SetCell(dx, dy, from)
				continue
			}

			to := dst.Cell(dx, dy)
			if fgAlpha > 0 {
				to.Rune = from.Rune
				to.Fg = blendColor(to.Fg, from.Fg, fgAlpha)
			}
			to.Bg = blendColor(to.Bg, from.Bg, bgAlpha)
			dst.SetCell(dx, dy, to)
		}
	}
}

// blendColor mixes dst toward src by t in RGB space.
// Colors without an RGB value (e.g. tcell.ColorDefault) snap at t=0.5.
func blendColor(dst, src tcell.Color, t float64) tcell.Color {
	switch t {
	case 0:
		return dst
	case 1:
		return src
	}

	dr, dg, db := dst.RGB()
	sr, sg, sb := src.RGB()
	if dr < 0 || sr < 0 {
		if t < 0.5 {
			return dst
		}
		return src
	}

	from := colorful.Color{R: float64(dr) / 255, G: float64(dg) / 255, B: float64(db) / 255}
	to := colorful.Color{R: float64(sr) / 255, G: float64(sg) / 255, B: float64(sb) / 255}
	r, g, b := from.BlendRgb(to, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
