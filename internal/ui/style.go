package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule is one selector and its raw property values.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Stylesheet is a list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Offset is a left/top position: pixels, or a percentage of the free space
// (screen or parent size minus the node's own size).
type Offset struct {
	N   int32
	Pct bool
}

// Resolve returns the offset in pixels given the free space along its axis.
func (o Offset) Resolve(free int32) int32 {
	if o.Pct {
		return free * o.N / 100
	}
	return o.N
}

// ComputedStyle is what Draw needs for one node. A zero-alpha Background or
// Border is not drawn.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	Width      int32
	Height     int32
	Left       Offset
	Top        Offset
	FontSize   int32
	Spacing    float32
}

// DefaultComputedStyle is white text on nothing.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Color:    rl.White,
		FontSize: defaultFontSize,
		Spacing:  1,
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA.
func ParseHexColor(s string) (rl.Color, bool) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return rl.Color{}, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return rl.Color{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Color{}, false
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// parsePx parses "N" or "Npx".
func parsePx(s string) (int32, bool) {
	n, err := strconv.Atoi(strings.TrimSuffix(s, "px"))
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// parseOffset parses "N", "Npx" or "N%" (0..100).
func parseOffset(s string) (Offset, bool) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		n, err := strconv.Atoi(pct)
		if err != nil || n < 0 || n > 100 {
			return Offset{}, false
		}
		return Offset{N: int32(n), Pct: true}, true
	}
	n, ok := parsePx(s)
	return Offset{N: n}, ok
}

// properties maps each supported property to its setter. Setters report
// whether the value parsed; invalid values leave the default in place.
var properties = map[string]func(*ComputedStyle, string) bool{
	"background": colorProp(func(st *ComputedStyle) *rl.Color { return &st.Background }),
	"color":      colorProp(func(st *ComputedStyle) *rl.Color { return &st.Color }),
	"border":     colorProp(func(st *ComputedStyle) *rl.Color { return &st.Border }),
	"width":      sizeProp(func(st *ComputedStyle) *int32 { return &st.Width }),
	"height":     sizeProp(func(st *ComputedStyle) *int32 { return &st.Height }),
	"font-size":  sizeProp(func(st *ComputedStyle) *int32 { return &st.FontSize }),
	"left":       offsetProp(func(st *ComputedStyle) *Offset { return &st.Left }),
	"top":        offsetProp(func(st *ComputedStyle) *Offset { return &st.Top }),
	"letter-spacing": func(st *ComputedStyle, v string) bool {
		n, ok := parsePx(v)
		if ok && n >= 0 {
			st.Spacing = float32(n)
			return true
		}
		return false
	},
}

func colorProp(field func(*ComputedStyle) *rl.Color) func(*ComputedStyle, string) bool {
	return func(st *ComputedStyle, v string) bool {
		c, ok := ParseHexColor(v)
		if ok {
			*field(st) = c
		}
		return ok
	}
}

func sizeProp(field func(*ComputedStyle) *int32) func(*ComputedStyle, string) bool {
	return func(st *ComputedStyle, v string) bool {
		n, ok := parsePx(v)
		if ok && n > 0 {
			*field(st) = n
			return true
		}
		return false
	}
}

func offsetProp(field func(*ComputedStyle) *Offset) func(*ComputedStyle, string) bool {
	return func(st *ComputedStyle, v string) bool {
		o, ok := parseOffset(v)
		if ok {
			*field(st) = o
		}
		return ok
	}
}

// ResolveProps builds a ComputedStyle from merged rule properties. Unknown
// properties and unparsable values are ignored.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		if set, ok := properties[k]; ok {
			set(&out, strings.TrimSpace(v))
		}
	}
	return out
}
