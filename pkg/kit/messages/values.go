package messages

import "encoding/json"

// Defaults applied when the corresponding field is absent from the
// wire.
const (
	// DefaultGridSize is the column count of a grid prompt.
	DefaultGridSize = 8
	// DefaultClipboardLimit caps a clipboard history query.
	DefaultClipboardLimit = 50
)

// Choice is one selectable entry in a prompt. Value is arbitrary JSON
// and is always present after decoding or construction; a choice whose
// value was omitted takes its name as the value. SemanticID is a
// stable, human-readable address assigned lazily by the identifier
// generator and never overwritten once set.
type Choice struct {
	Name        string    `json:"name"`
	Value       JSONValue `json:"value,omitempty"`
	Description string    `json:"description,omitempty"`
	Img         string    `json:"img,omitempty"`
	Shortcode   string    `json:"shortcode,omitempty"`
	Keyword     string    `json:"keyword,omitempty"`
	SemanticID  string    `json:"semanticId,omitempty"`
}

// NewChoice builds a choice whose value is its name.
func NewChoice(name string) Choice {
	return Choice{Name: name, Value: quoteJSON(name)}
}

// NewChoiceValue builds a choice carrying an explicit value.
func NewChoiceValue(name string, value JSONValue) Choice {
	c := Choice{Name: name, Value: value}
	if len(c.Value) == 0 {
		c.Value = quoteJSON(name)
	}

	return c
}

// UnmarshalJSON decodes a choice and fills an omitted value with the
// choice's name.
func (c *Choice) UnmarshalJSON(data []byte) error {
	type plain Choice

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*c = Choice(p)
	if len(c.Value) == 0 {
		c.Value = quoteJSON(c.Name)
	}

	return nil
}

// MarshalJSON encodes a choice, filling an omitted value with the
// choice's name so the wire form always carries one.
func (c Choice) MarshalJSON() ([]byte, error) {
	type plain Choice

	p := plain(c)
	if len(p.Value) == 0 {
		p.Value = quoteJSON(p.Name)
	}

	return json.Marshal(p)
}

// ValueString decodes the choice value as a string, falling back to
// the name when the value is not a JSON string.
func (c Choice) ValueString() string {
	var s string
	if err := json.Unmarshal(c.Value, &s); err == nil {
		return s
	}

	return c.Name
}

// ProtocolAction describes a user-triggerable action attached to a
// prompt. HasAction is load-bearing: true routes a trigger back to the
// owning script as an actionTriggered event, false submits Value
// directly as if the user had chosen it. Visible and Close are
// tri-state so the wire stays compact; read them through IsVisible and
// ShouldClose, which apply the documented true defaults.
type ProtocolAction struct {
	Name        string    `json:"name"`
	Shortcut    string    `json:"shortcut,omitempty"`
	Description string    `json:"description,omitempty"`
	Value       JSONValue `json:"value,omitempty"`
	HasAction   bool      `json:"hasAction,omitempty"`
	Visible     *bool     `json:"visible,omitempty"`
	Close       *bool     `json:"close,omitempty"`
	SemanticID  string    `json:"semanticId,omitempty"`
}

// IsVisible reports whether the action shows in the action list.
// Absent on the wire means visible.
func (a ProtocolAction) IsVisible() bool {
	if a.Visible == nil {
		return true
	}

	return *a.Visible
}

// ShouldClose reports whether triggering the action closes the prompt.
// Absent on the wire means close.
func (a ProtocolAction) ShouldClose() bool {
	if a.Close == nil {
		return true
	}

	return *a.Close
}

// Bool returns a pointer suitable for the tri-state action fields.
func Bool(v bool) *bool {
	return &v
}

// FormField describes one input in a fields prompt.
type FormField struct {
	Name        string `json:"name"`
	Label       string `json:"label,omitempty"`
	Type        string `json:"type,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Value       string `json:"value,omitempty"`
	Required    bool   `json:"required,omitempty"`
}

// WindowBounds is a window or screen rectangle in screen coordinates.
type WindowBounds struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ClipboardEntry is one item of host clipboard history.
type ClipboardEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text,omitempty"`
	Kind      string `json:"kind,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
	Pinned    bool   `json:"pinned,omitempty"`
}

// ScreenInfo describes one attached display.
type ScreenInfo struct {
	ID      int          `json:"id"`
	Bounds  WindowBounds `json:"bounds"`
	Scale   float64      `json:"scale,omitempty"`
	Primary bool         `json:"primary,omitempty"`
}

// MenuBarItem is one entry of an application menu. Children nest
// arbitrarily deep. Absent disabled means the item is clickable.
type MenuBarItem struct {
	Name     string        `json:"name"`
	Shortcut string        `json:"shortcut,omitempty"`
	Disabled bool          `json:"disabled,omitempty"`
	Checked  bool          `json:"checked,omitempty"`
	Children []MenuBarItem `json:"children,omitempty"`
}

// Scriptlet is a small executable snippet the host can run on a
// script's behalf. Either inline Code or a FilePath must be set.
type Scriptlet struct {
	Name     string   `json:"name,omitempty"`
	Tool     string   `json:"tool,omitempty"`
	Code     string   `json:"code,omitempty"`
	FilePath string   `json:"filePath,omitempty"`
	Inputs   []string `json:"inputs,omitempty"`
}

// ChatEntry is one turn of a chat prompt transcript.
type ChatEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// AppState is the host state snapshot pushed to scripts.
type AppState struct {
	Focused      bool   `json:"focused,omitempty"`
	Visible      bool   `json:"visible,omitempty"`
	ActiveScript string `json:"activeScript,omitempty"`
	PromptCount  int    `json:"promptCount,omitempty"`
}

// ErrorPayload carries a structured failure description inside
// commandError and hostError messages.
type ErrorPayload struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// quoteJSON encodes s as a JSON string. Strings always marshal
// cleanly, so the error path is unreachable.
func quoteJSON(s string) JSONValue {
	b, _ := json.Marshal(s)

	return b
}
