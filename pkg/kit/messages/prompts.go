package messages

import (
	"encoding/json"
	"errors"
)

// ArgPrompt asks the user for a single line of text. The placeholder
// is required; without it the prompt renders blank and the user has no
// idea what is being asked.
type ArgPrompt struct {
	PromptRef
	Placeholder string           `json:"placeholder"`
	Hint        string           `json:"hint,omitempty"`
	Choices     []Choice         `json:"choices,omitempty"`
	Actions     []ProtocolAction `json:"actions,omitempty"`
}

func (*ArgPrompt) message() {}

// Type returns the wire discriminator.
func (*ArgPrompt) Type() string { return TypeArg }

// Validate checks required fields.
func (p *ArgPrompt) Validate() error {
	if p.Placeholder == "" {
		return errors.New("arg: placeholder is required")
	}

	return nil
}

// NewArgPrompt builds an arg prompt.
func NewArgPrompt(placeholder string) *ArgPrompt {
	return &ArgPrompt{Placeholder: placeholder}
}

// MiniPrompt is a compact single-line prompt.
type MiniPrompt struct {
	PromptRef
	Placeholder string `json:"placeholder,omitempty"`
	Hint        string `json:"hint,omitempty"`
}

func (*MiniPrompt) message() {}

// Type returns the wire discriminator.
func (*MiniPrompt) Type() string { return TypeMini }

// NewMiniPrompt builds a mini prompt.
func NewMiniPrompt(placeholder string) *MiniPrompt {
	return &MiniPrompt{Placeholder: placeholder}
}

// MicroPrompt is the smallest prompt chrome the host can render.
type MicroPrompt struct {
	PromptRef
	Placeholder string `json:"placeholder,omitempty"`
	Hint        string `json:"hint,omitempty"`
}

func (*MicroPrompt) message() {}

// Type returns the wire discriminator.
func (*MicroPrompt) Type() string { return TypeMicro }

// NewMicroPrompt builds a micro prompt.
func NewMicroPrompt(placeholder string) *MicroPrompt {
	return &MicroPrompt{Placeholder: placeholder}
}

// SelectPrompt asks the user to pick from a list of choices.
type SelectPrompt struct {
	PromptRef
	Placeholder string           `json:"placeholder,omitempty"`
	Choices     []Choice         `json:"choices"`
	Multi       bool             `json:"multi,omitempty"`
	Actions     []ProtocolAction `json:"actions,omitempty"`
}

func (*SelectPrompt) message() {}

// Type returns the wire discriminator.
func (*SelectPrompt) Type() string { return TypeSelect }

// Validate checks required fields.
func (p *SelectPrompt) Validate() error {
	if len(p.Choices) == 0 {
		return errors.New("select: choices are required")
	}

	return nil
}

// NewSelectPrompt builds a select prompt over the given choices.
func NewSelectPrompt(placeholder string, choices []Choice) *SelectPrompt {
	return &SelectPrompt{Placeholder: placeholder, Choices: choices}
}

// GridPrompt lays choices out in a grid. An omitted gridSize defaults
// to DefaultGridSize columns at decode time.
type GridPrompt struct {
	PromptRef
	Placeholder string   `json:"placeholder,omitempty"`
	Choices     []Choice `json:"choices"`
	GridSize    int      `json:"gridSize,omitempty"`
}

func (*GridPrompt) message() {}

// Type returns the wire discriminator.
func (*GridPrompt) Type() string { return TypeGrid }

// Validate checks required fields.
func (p *GridPrompt) Validate() error {
	if len(p.Choices) == 0 {
		return errors.New("grid: choices are required")
	}

	return nil
}

// UnmarshalJSON decodes a grid prompt and applies the column default.
func (p *GridPrompt) UnmarshalJSON(data []byte) error {
	type plain GridPrompt

	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*p = GridPrompt(v)
	if p.GridSize == 0 {
		p.GridSize = DefaultGridSize
	}

	return nil
}

// NewGridPrompt builds a grid prompt with the default column count.
func NewGridPrompt(choices []Choice) *GridPrompt {
	return &GridPrompt{Choices: choices, GridSize: DefaultGridSize}
}

// DivPrompt renders a block of HTML instead of an input.
type DivPrompt struct {
	PromptRef
	HTML           string `json:"html"`
	ContainerClass string `json:"containerClass,omitempty"`
}

func (*DivPrompt) message() {}

// Type returns the wire discriminator.
func (*DivPrompt) Type() string { return TypeDiv }

// Validate checks required fields.
func (p *DivPrompt) Validate() error {
	if p.HTML == "" {
		return errors.New("div: html is required")
	}

	return nil
}

// NewDivPrompt builds a div prompt.
func NewDivPrompt(html string) *DivPrompt {
	return &DivPrompt{HTML: html}
}

// EditorPrompt opens a full text editor pane.
type EditorPrompt struct {
	PromptRef
	Value    string `json:"value,omitempty"`
	Language string `json:"language,omitempty"`
	Footer   string `json:"footer,omitempty"`
}

func (*EditorPrompt) message() {}

// Type returns the wire discriminator.
func (*EditorPrompt) Type() string { return TypeEditor }

// NewEditorPrompt builds an editor prompt seeded with value.
func NewEditorPrompt(value, language string) *EditorPrompt {
	return &EditorPrompt{Value: value, Language: language}
}

// TextareaPrompt opens a plain multi-line input.
type TextareaPrompt struct {
	PromptRef
	Placeholder string `json:"placeholder,omitempty"`
	Value       string `json:"value,omitempty"`
}

func (*TextareaPrompt) message() {}

// Type returns the wire discriminator.
func (*TextareaPrompt) Type() string { return TypeTextarea }

// NewTextareaPrompt builds a textarea prompt.
func NewTextareaPrompt(placeholder string) *TextareaPrompt {
	return &TextareaPrompt{Placeholder: placeholder}
}

// FormPrompt renders an HTML form and submits its inputs as one value.
type FormPrompt struct {
	PromptRef
	HTML string `json:"html"`
}

func (*FormPrompt) message() {}

// Type returns the wire discriminator.
func (*FormPrompt) Type() string { return TypeForm }

// Validate checks required fields.
func (p *FormPrompt) Validate() error {
	if p.HTML == "" {
		return errors.New("form: html is required")
	}

	return nil
}

// NewFormPrompt builds a form prompt.
func NewFormPrompt(html string) *FormPrompt {
	return &FormPrompt{HTML: html}
}

// FieldsPrompt renders a generated form from field descriptors.
type FieldsPrompt struct {
	PromptRef
	Fields []FormField `json:"fields"`
}

func (*FieldsPrompt) message() {}

// Type returns the wire discriminator.
func (*FieldsPrompt) Type() string { return TypeFields }

// Validate checks required fields.
func (p *FieldsPrompt) Validate() error {
	if len(p.Fields) == 0 {
		return errors.New("fields: fields are required")
	}

	return nil
}

// NewFieldsPrompt builds a fields prompt.
func NewFieldsPrompt(fields []FormField) *FieldsPrompt {
	return &FieldsPrompt{Fields: fields}
}

// HotkeyPrompt captures a single key combination.
type HotkeyPrompt struct {
	PromptRef
	Placeholder string `json:"placeholder,omitempty"`
}

func (*HotkeyPrompt) message() {}

// Type returns the wire discriminator.
func (*HotkeyPrompt) Type() string { return TypeHotkey }

// NewHotkeyPrompt builds a hotkey prompt.
func NewHotkeyPrompt(placeholder string) *HotkeyPrompt {
	return &HotkeyPrompt{Placeholder: placeholder}
}

// DropPrompt accepts files or text dropped onto the host window.
type DropPrompt struct {
	PromptRef
	Placeholder string `json:"placeholder,omitempty"`
}

func (*DropPrompt) message() {}

// Type returns the wire discriminator.
func (*DropPrompt) Type() string { return TypeDrop }

// NewDropPrompt builds a drop prompt.
func NewDropPrompt(placeholder string) *DropPrompt {
	return &DropPrompt{Placeholder: placeholder}
}

// PathPrompt browses the filesystem.
type PathPrompt struct {
	PromptRef
	StartPath string `json:"startPath,omitempty"`
	OnlyDirs  bool   `json:"onlyDirs,omitempty"`
}

func (*PathPrompt) message() {}

// Type returns the wire discriminator.
func (*PathPrompt) Type() string { return TypePath }

// NewPathPrompt builds a path prompt rooted at startPath.
func NewPathPrompt(startPath string) *PathPrompt {
	return &PathPrompt{StartPath: startPath}
}

// EmojiPrompt opens the emoji picker.
type EmojiPrompt struct {
	PromptRef
}

func (*EmojiPrompt) message() {}

// Type returns the wire discriminator.
func (*EmojiPrompt) Type() string { return TypeEmoji }

// NewEmojiPrompt builds an emoji prompt.
func NewEmojiPrompt() *EmojiPrompt {
	return &EmojiPrompt{}
}

// ChatPrompt opens a conversational transcript view.
type ChatPrompt struct {
	PromptRef
	Placeholder string      `json:"placeholder,omitempty"`
	History     []ChatEntry `json:"history,omitempty"`
}

func (*ChatPrompt) message() {}

// Type returns the wire discriminator.
func (*ChatPrompt) Type() string { return TypeChat }

// NewChatPrompt builds a chat prompt.
func NewChatPrompt(placeholder string) *ChatPrompt {
	return &ChatPrompt{Placeholder: placeholder}
}

// TermPrompt opens an embedded terminal, optionally running a command.
type TermPrompt struct {
	PromptRef
	Command string            `json:"command,omitempty"`
	Cwd     string            `json:"cwd,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

func (*TermPrompt) message() {}

// Type returns the wire discriminator.
func (*TermPrompt) Type() string { return TypeTerm }

// NewTermPrompt builds a term prompt.
func NewTermPrompt(command string) *TermPrompt {
	return &TermPrompt{Command: command}
}

// MicPrompt records audio from the default input device.
type MicPrompt struct {
	PromptRef
	FilePath    string `json:"filePath,omitempty"`
	TimeLimitMS int    `json:"timeLimitMs,omitempty"`
}

func (*MicPrompt) message() {}

// Type returns the wire discriminator.
func (*MicPrompt) Type() string { return TypeMic }

// NewMicPrompt builds a mic prompt.
func NewMicPrompt() *MicPrompt {
	return &MicPrompt{}
}

// WebcamPrompt captures a frame from the default camera.
type WebcamPrompt struct {
	PromptRef
}

func (*WebcamPrompt) message() {}

// Type returns the wire discriminator.
func (*WebcamPrompt) Type() string { return TypeWebcam }

// NewWebcamPrompt builds a webcam prompt.
func NewWebcamPrompt() *WebcamPrompt {
	return &WebcamPrompt{}
}
