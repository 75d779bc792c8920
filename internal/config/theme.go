package config

import "fmt"

// RGBA is a frontend-neutral color so the game packages stay free of
// raylib types.
type RGBA struct {
	R, G, B, A uint8
}

// ThemeColors is the parsed form of ThemeConfig.
type ThemeColors struct {
	Background RGBA
	Accent     RGBA
	CardFront  RGBA
	CardBack   RGBA
	Text       RGBA
}

// ParseHex parses #RGB or #RRGGBB into an opaque color.
func ParseHex(s string) (RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return RGBA{}, fmt.Errorf("color %q: want #RRGGBB", s)
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		r, okR := nibble(hex[0])
		g, okG := nibble(hex[1])
		b, okB := nibble(hex[2])
		if !okR || !okG || !okB {
			return RGBA{}, fmt.Errorf("color %q: bad hex digit", s)
		}
		return RGBA{r*16 + r, g*16 + g, b*16 + b, 255}, nil
	case 6:
		var c [3]uint8
		for i := 0; i < 3; i++ {
			hi, okH := nibble(hex[i*2])
			lo, okL := nibble(hex[i*2+1])
			if !okH || !okL {
				return RGBA{}, fmt.Errorf("color %q: bad hex digit", s)
			}
			c[i] = hi*16 + lo
		}
		return RGBA{c[0], c[1], c[2], 255}, nil
	}
	return RGBA{}, fmt.Errorf("color %q: want #RGB or #RRGGBB", s)
}

func nibble(b byte) (uint8, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// Colors parses every theme entry. Validation has already checked the
// hex format, so errors here mean the config was never validated.
func (t ThemeConfig) Colors() (ThemeColors, error) {
	var (
		out ThemeColors
		err error
	)
	if out.Background, err = ParseHex(t.Background); err != nil {
		return out, err
	}
	if out.Accent, err = ParseHex(t.Accent); err != nil {
		return out, err
	}
	if out.CardFront, err = ParseHex(t.CardFront); err != nil {
		return out, err
	}
	if out.CardBack, err = ParseHex(t.CardBack); err != nil {
		return out, err
	}
	if out.Text, err = ParseHex(t.Text); err != nil {
		return out, err
	}
	return out, nil
}
