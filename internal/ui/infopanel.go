package ui

import (
	"strings"

	"runway/internal/showcase"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// descriptionWidth is the wrap width of the info card description, in characters.
const descriptionWidth = 34

// InfoPanel is the card raised when the model is clicked: "<name>: <outfit>",
// the description and a close marker. It owns its nodes and updates their
// text in AppendNodes.
type InfoPanel struct {
	panel *Node
	title *Node
	desc  *Node
	close *Node
	shown showcase.ModelInfo
}

// NewInfoPanel creates the card styled by .info, .info-title, .info-description and .info-close.
func NewInfoPanel() *InfoPanel {
	panel := NewNode("panel", "info", "", "")
	p := &InfoPanel{
		panel: panel,
		title: NewNode("label", "info-title", "", ""),
		desc:  NewNode("label", "info-description", "", ""),
		close: NewNode("label", "info-close", "", "x"),
	}
	p.title.Parent = panel
	p.desc.Parent = panel
	p.close.Parent = panel
	return p
}

// AppendNodes appends the card to dst when sel has something shown. When
// nothing is selected, dst is returned unchanged. Call every frame.
func (p *InfoPanel) AppendNodes(dst []*Node, sel *showcase.Selection) []*Node {
	info, ok := sel.Current()
	if !ok {
		return dst
	}
	if info != p.shown {
		p.shown = info
		p.title.Text = info.Title()
		p.desc.Text = Wrap(info.Description, descriptionWidth)
	}
	return append(dst, p.panel, p.title, p.desc, p.close)
}

// HandleClick dismisses sel when pt is on the close marker and reports
// whether the click was consumed by the card.
func (p *InfoPanel) HandleClick(pt rl.Vector2, sel *showcase.Selection) bool {
	if _, ok := sel.Current(); !ok {
		return false
	}
	if Contains(p.close, pt) {
		sel.Dismiss()
		return true
	}
	return Contains(p.panel, pt)
}

// Wrap breaks text into lines of at most width characters on word
// boundaries. Words longer than width get a line of their own.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return strings.Join(words, " ")
	}
	var b strings.Builder
	line := 0
	for _, w := range words {
		switch {
		case line == 0:
		case line+1+len(w) > width:
			b.WriteByte('\n')
			line = 0
		default:
			b.WriteByte(' ')
			line++
		}
		b.WriteString(w)
		line += len(w)
	}
	return b.String()
}

// Titles are the fixed overlay labels: logo, collection title, subtitle and
// the control hint.
type Titles struct {
	nodes []*Node
}

// NewTitles creates the overlay labels styled by #logo, #title, #subtitle and #hint.
func NewTitles() *Titles {
	return &Titles{nodes: []*Node{
		NewNode("label", "heading", "logo", "AEAEA"),
		NewNode("label", "heading", "title", "PARAMETRIC"),
		NewNode("label", "heading", "subtitle", "ANGULAR COLLECTION"),
		NewNode("label", "hint", "hint", "DRAG TO ROTATE | SCROLL TO ZOOM | CLICK MODELS FOR INFO"),
	}}
}

// AppendNodes appends the title labels to dst.
func (t *Titles) AppendNodes(dst []*Node) []*Node {
	return append(dst, t.nodes...)
}
