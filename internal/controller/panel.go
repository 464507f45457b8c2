package controller

type subscription struct {
	id string
	ev Event
}

// Panel is an in-memory View. Terminal and HTTP surfaces drive it with Set
// and read labels and visibility back when drawing.
//
// A Panel is not safe for concurrent use.
type Panel struct {
	values   map[string]string
	texts    map[string]string
	hidden   map[string]bool
	handlers map[subscription][]Handler
}

// NewPanel returns an empty panel.
func NewPanel() *Panel {
	return &Panel{
		values:   make(map[string]string),
		texts:    make(map[string]string),
		hidden:   make(map[string]bool),
		handlers: make(map[subscription][]Handler),
	}
}

// Value returns a control's current value, or "" if never set.
func (p *Panel) Value(id string) string { return p.values[id] }

// SetValue stores a control value without firing events.
func (p *Panel) SetValue(id, v string) { p.values[id] = v }

// Text returns a label's text.
func (p *Panel) Text(id string) string { return p.texts[id] }

// SetText sets a label's text.
func (p *Panel) SetText(id, text string) { p.texts[id] = text }

// Visible reports whether an element is shown. Elements start visible.
func (p *Panel) Visible(id string) bool { return !p.hidden[id] }

// SetVisible shows or hides an element.
func (p *Panel) SetVisible(id string, show bool) { p.hidden[id] = !show }

// On subscribes h to ev on control id.
func (p *Panel) On(id string, ev Event, h Handler) {
	key := subscription{id, ev}
	p.handlers[key] = append(p.handlers[key], h)
}

// Fire runs every handler for (id, ev) in registration order and reports
// whether any were registered.
func (p *Panel) Fire(id string, ev Event) bool {
	hs := p.handlers[subscription{id, ev}]
	for _, h := range hs {
		h()
	}
	return len(hs) > 0
}

// Set stores v and then fires ev, the way a user edit would.
func (p *Panel) Set(id, v string, ev Event) bool {
	p.SetValue(id, v)
	return p.Fire(id, ev)
}
