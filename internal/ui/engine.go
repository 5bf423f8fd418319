package ui

import (
	_ "embed"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// textPad is the gap in pixels between a node's bounds and its text.
const textPad = 4

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order (first node drawn first, then on top the next).
// Resolved styles are cached and only recomputed when sheet or nodes change.
// If font is loaded (LoadFont), text is drawn with that font; otherwise raylib's default font is used.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font
}

//go:embed runway.css
var runwayCSS string

// New creates a UI engine styled with the built-in runway stylesheet and no nodes.
func New() *Engine {
	sheet, _ := ParseCSS(runwayCSS)
	return &Engine{sheet: sheet}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load stylesheet: %w", err)
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return fmt.Errorf("parse stylesheet %s: %w", path, err)
	}
	e.sheet = sheet
	e.cacheValid = false
	return nil
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window/OpenGL context exists (e.g. after first frame or in draw).
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
	}
	e.font = f
	return nil
}

// Font returns the loaded font; its texture ID is 0 when none was loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

// SetNodes replaces all nodes. The slice is copied, so callers may reuse it;
// passing the same nodes again keeps the style cache.
func (e *Engine) SetNodes(nodes []*Node) {
	if !sameNodes(e.nodes, nodes) {
		e.cacheValid = false
	}
	e.nodes = append(e.nodes[:0], nodes...)
}

func sameNodes(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		matches := false
		if len(sel) > 0 && sel[0] == '.' {
			class := sel[1:]
			if n.Class == class {
				matches = true
			}
		} else if len(sel) > 0 && sel[0] == '#' {
			id := sel[1:]
			if n.ID == id {
				matches = true
			}
		}
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

// resolveBounds sizes n from style width and height. Unset sizes leave Bounds unchanged.
func resolveBounds(n *Node, style ComputedStyle) {
	if style.Width > 0 {
		n.Bounds.Width = float32(style.Width)
	}
	if style.Height > 0 {
		n.Bounds.Height = float32(style.Height)
	}
}

// Draw draws all nodes: for each node, resolve style (cached), update bounds from style, then draw background, border, and text.
// Labels without a width are sized to their text. The drawn rectangle is written back to Bounds for hit tests.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	if !e.cacheValid {
		e.cachedStyles = make([]ComputedStyle, len(e.nodes))
		for i, n := range e.nodes {
			props := e.resolveProps(n)
			e.cachedStyles[i] = ResolveProps(props)
		}
		e.cacheValid = true
	}
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		resolveBounds(n, style)
		if n.Text != "" && style.Width == 0 {
			size := e.measure(n.Text, style)
			n.Bounds.Width = size.X + 2*textPad
			n.Bounds.Height = size.Y + 2*textPad
		}
		w := int32(n.Bounds.Width)
		h := int32(n.Bounds.Height)
		var x, y int32
		if p := n.Parent; p != nil {
			x = int32(p.Bounds.X) + style.Left.Resolve(int32(p.Bounds.Width)-w)
			y = int32(p.Bounds.Y) + style.Top.Resolve(int32(p.Bounds.Height)-h)
		} else {
			x = style.Left.Resolve(screenW - w)
			y = style.Top.Resolve(screenH - h)
		}
		n.Bounds.X, n.Bounds.Y = float32(x), float32(y)

		// Background
		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		// Border (1px)
		if style.Border.A > 0 && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			pos := rl.NewVector2(float32(x)+textPad, float32(y)+textPad)
			rl.DrawTextEx(e.textFont(), n.Text, pos, float32(style.FontSize), style.Spacing, style.Color)
		}
	}
}

// textFont is the loaded font, or raylib's default.
func (e *Engine) textFont() rl.Font {
	if e.font.Texture.ID != 0 {
		return e.font
	}
	return rl.GetFontDefault()
}

func (e *Engine) measure(text string, style ComputedStyle) rl.Vector2 {
	return rl.MeasureTextEx(e.textFont(), text, float32(style.FontSize), style.Spacing)
}

// Contains reports whether pt lies inside n as last drawn.
func Contains(n *Node, pt rl.Vector2) bool {
	return n != nil && n.Bounds.Width > 0 && n.Bounds.Height > 0 && rl.CheckCollisionPointRec(pt, n.Bounds)
}

// HasStylesheet reports whether any style rules are set.
func (e *Engine) HasStylesheet() bool {
	return e.sheet != nil && len(e.sheet.Rules) > 0
}
