package colorspace

import (
	"fmt"
	"strconv"
	"strings"
)

// RGB is a color with 8-bit channels in [0, 255].
type RGB struct {
	R, G, B uint8
}

// Hex returns the canonical lowercase "#rrggbb" form.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// namedColors covers the CSS basic keywords plus the aliases that show up in
// real stylesheets. Anything outside this table must be written as hex or
// rgb()/rgba().
var namedColors = map[string]RGB{
	"black":   {0x00, 0x00, 0x00},
	"silver":  {0xc0, 0xc0, 0xc0},
	"gray":    {0x80, 0x80, 0x80},
	"grey":    {0x80, 0x80, 0x80},
	"white":   {0xff, 0xff, 0xff},
	"maroon":  {0x80, 0x00, 0x00},
	"red":     {0xff, 0x00, 0x00},
	"purple":  {0x80, 0x00, 0x80},
	"fuchsia": {0xff, 0x00, 0xff},
	"magenta": {0xff, 0x00, 0xff},
	"green":   {0x00, 0x80, 0x00},
	"lime":    {0x00, 0xff, 0x00},
	"olive":   {0x80, 0x80, 0x00},
	"yellow":  {0xff, 0xff, 0x00},
	"navy":    {0x00, 0x00, 0x80},
	"blue":    {0x00, 0x00, 0xff},
	"teal":    {0x00, 0x80, 0x80},
	"aqua":    {0x00, 0xff, 0xff},
	"cyan":    {0x00, 0xff, 0xff},
	"orange":  {0xff, 0xa5, 0x00},
}

// Parse reads a color in any supported surface syntax: 3/4/6/8-digit hex,
// rgb()/rgba() with integer channels, or a named keyword. Alpha channels are
// discarded. The second return is false when the input is not a color.
func Parse(raw string) (RGB, bool) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return RGB{}, false
	}
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if strings.HasPrefix(s, "rgb(") || strings.HasPrefix(s, "rgba(") {
		return parseRGBFunc(s)
	}
	return RGB{}, false
}

// Normalize maps any supported color syntax onto its canonical lowercase
// "#rrggbb" form so two surface spellings of the same color compare equal.
func Normalize(raw string) (string, bool) {
	c, ok := Parse(raw)
	if !ok {
		return "", false
	}
	return c.Hex(), true
}

func parseHex(hex string) (RGB, bool) {
	switch len(hex) {
	case 3, 4:
		// Shorthand: expand each digit, drop the alpha digit if present.
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(string([]byte{hex[i], hex[i]}), 16, 8)
			if err != nil {
				return RGB{}, false
			}
			ch[i] = uint8(v)
		}
		if len(hex) == 4 {
			if !isHexDigit(hex[3]) {
				return RGB{}, false
			}
		}
		return RGB{ch[0], ch[1], ch[2]}, true
	case 6, 8:
		var ch [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return RGB{}, false
			}
			ch[i] = uint8(v)
		}
		if len(hex) == 8 {
			if !isHexDigit(hex[6]) || !isHexDigit(hex[7]) {
				return RGB{}, false
			}
		}
		return RGB{ch[0], ch[1], ch[2]}, true
	}
	return RGB{}, false
}

func parseRGBFunc(s string) (RGB, bool) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return RGB{}, false
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGB{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(strings.TrimSpace(parts[i]), 10, 8)
		if err != nil {
			return RGB{}, false
		}
		ch[i] = uint8(v)
	}
	// Alpha may be an int or a float; it only has to be numeric because it is
	// dropped from the canonical form.
	if len(parts) == 4 {
		if _, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64); err != nil {
			return RGB{}, false
		}
	}
	return RGB{ch[0], ch[1], ch[2]}, true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f')
}
