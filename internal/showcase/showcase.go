// Package showcase holds the model shown on the runway and the info overlay
// selection state.
package showcase

// ModelInfo is the info card raised when the humanoid is clicked.
type ModelInfo struct {
	Name        string
	Outfit      string
	Description string
}

// Title is the card heading, "<name>: <outfit>".
func (m ModelInfo) Title() string {
	return m.Name + ": " + m.Outfit
}

// Model is the single model walking the runway.
var Model = ModelInfo{
	Name:        "Model 1",
	Outfit:      "Parametric Design 2024",
	Description: "Angular silhouettes with structural elements inspired by digital architecture and complex geometries.",
}

// Selection is the info currently shown by the overlay, or none.
// OnSelect, when set, is called every time a model is selected.
type Selection struct {
	current  ModelInfo
	visible  bool
	OnSelect func(ModelInfo)
}

// Select shows info.
func (s *Selection) Select(info ModelInfo) {
	s.current = info
	s.visible = true
	if s.OnSelect != nil {
		s.OnSelect(info)
	}
}

// Dismiss clears the shown info.
func (s *Selection) Dismiss() {
	s.current = ModelInfo{}
	s.visible = false
}

// Current returns the shown info and whether anything is shown.
func (s *Selection) Current() (ModelInfo, bool) {
	return s.current, s.visible
}
