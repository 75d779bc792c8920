package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"memmatch/internal/game"
)

// faceCache renders each card face once per card size into a render
// texture. Faces are deterministic, so the cache only invalidates on
// resize.
type faceCache struct {
	font     rl.Font
	colors   themeColors
	size     int
	textures map[game.Symbol]rl.RenderTexture2D
}

func newFaceCache(font rl.Font, colors themeColors) *faceCache {
	return &faceCache{
		font:     font,
		colors:   colors,
		textures: make(map[game.Symbol]rl.RenderTexture2D),
	}
}

// rebuild regenerates the faces for the first n deck symbols at the
// given card size, dropping any previous generation.
func (fc *faceCache) rebuild(pairs, size int) {
	fc.unload()
	fc.size = size
	for _, sym := range game.Pairs(pairs) {
		fc.textures[sym] = fc.render(sym, size)
	}
}

func (fc *faceCache) unload() {
	for sym, rt := range fc.textures {
		rl.UnloadRenderTexture(rt)
		delete(fc.textures, sym)
	}
}

// texture returns the cached face for a symbol. Symbols outside the
// current board are rendered on demand.
func (fc *faceCache) texture(sym game.Symbol) rl.Texture2D {
	rt, ok := fc.textures[sym]
	if !ok {
		rt = fc.render(sym, fc.size)
		fc.textures[sym] = rt
	}
	return rt.Texture
}

func (fc *faceCache) render(sym game.Symbol, size int) rl.RenderTexture2D {
	rt := rl.LoadRenderTexture(int32(size), int32(size))
	s := float32(size)

	rl.BeginTextureMode(rt)
	rl.ClearBackground(suitTint(sym.Suit))

	// Rank in opposite corners, suit pip in the center.
	rankSize := s * 0.28
	if rankSize < 12 {
		rankSize = 12
	}
	rank := string(sym.Rank)
	measured := rl.MeasureTextEx(fc.font, rank, rankSize, 1)
	pad := s * 0.06
	rl.DrawTextEx(fc.font, rank, rl.NewVector2(pad, pad), rankSize, 1, glyphColor)
	rl.DrawTextEx(fc.font, rank,
		rl.NewVector2(s-measured.X-pad, s-measured.Y-pad), rankSize, 1, glyphColor)

	drawSuit(s/2, s/2, s*0.4, sym.Suit)

	if sym.Rank == "K" || sym.Rank == "Q" {
		drawCrown(s/2, s*0.22, s*0.3, fc.colors.accent)
	}

	rl.EndTextureMode()
	return rt
}

// drawSuit draws a pip of roughly the given span centered on (cx,cy)
// using primitives, so no glyph coverage is required from the font.
func drawSuit(cx, cy, span float32, suit game.Suit) {
	col := glyphColor
	switch suit {
	case game.Hearts:
		r := span * 0.28
		rl.DrawCircleV(rl.NewVector2(cx-r*0.95, cy-r*0.9), r, col)
		rl.DrawCircleV(rl.NewVector2(cx+r*0.95, cy-r*0.9), r, col)
		rl.DrawTriangle(
			rl.NewVector2(cx-span*0.5, cy-r*0.4),
			rl.NewVector2(cx, cy+span*0.55),
			rl.NewVector2(cx+span*0.5, cy-r*0.4),
			col,
		)
	case game.Diamonds:
		rl.DrawPoly(rl.NewVector2(cx, cy), 4, span*0.55, 0, col)
	case game.Spades:
		rl.DrawTriangle(
			rl.NewVector2(cx, cy-span*0.55),
			rl.NewVector2(cx-span*0.45, cy+span*0.15),
			rl.NewVector2(cx+span*0.45, cy+span*0.15),
			col,
		)
		r := span * 0.22
		rl.DrawCircleV(rl.NewVector2(cx-r*0.9, cy+span*0.08), r, col)
		rl.DrawCircleV(rl.NewVector2(cx+r*0.9, cy+span*0.08), r, col)
		rl.DrawRectangleV(
			rl.NewVector2(cx-span*0.06, cy+span*0.1),
			rl.NewVector2(span*0.12, span*0.42),
			col,
		)
	case game.Clubs:
		r := span * 0.24
		rl.DrawCircleV(rl.NewVector2(cx, cy-r*1.1), r, col)
		rl.DrawCircleV(rl.NewVector2(cx-r*1.05, cy+r*0.4), r, col)
		rl.DrawCircleV(rl.NewVector2(cx+r*1.05, cy+r*0.4), r, col)
		rl.DrawRectangleV(
			rl.NewVector2(cx-span*0.06, cy),
			rl.NewVector2(span*0.12, span*0.5),
			col,
		)
	}
}

// drawCrown marks the royal ranks: a base bar with three points.
func drawCrown(cx, cy, width float32, col rl.Color) {
	h := width * 0.45
	base := h * 0.35
	rl.DrawRectangleV(
		rl.NewVector2(cx-width/2, cy+h/2-base),
		rl.NewVector2(width, base),
		col,
	)
	for i := 0; i < 3; i++ {
		px := cx - width/2 + width*float32(i)/2
		rl.DrawTriangle(
			rl.NewVector2(px, cy-h/2),
			rl.NewVector2(px-width*0.12, cy+h/2-base),
			rl.NewVector2(px+width*0.12, cy+h/2-base),
			col,
		)
	}
}
