package messages

import "errors"

// Fire-and-forget messages carry no correlation id. The sender does
// not wait and the receiver sends nothing back.

// Beep plays the system alert sound.
type Beep struct{}

func (*Beep) message() {}

// Type returns the wire discriminator.
func (*Beep) Type() string { return TypeBeep }

// NewBeep builds an alert-sound message.
func NewBeep() *Beep { return &Beep{} }

// Say speaks text out loud.
type Say struct {
	Text  string  `json:"text"`
	Voice string  `json:"voice,omitempty"`
	Rate  float64 `json:"rate,omitempty"`
}

func (*Say) message() {}

// Type returns the wire discriminator.
func (*Say) Type() string { return TypeSay }

// NewSay builds a speech message.
func NewSay(text string) *Say { return &Say{Text: text} }

// Validate checks required fields.
func (m *Say) Validate() error {
	if m.Text == "" {
		return errors.New("say: text is required")
	}

	return nil
}

// Notify raises a system notification.
type Notify struct {
	Body  string `json:"body"`
	Title string `json:"title,omitempty"`
}

func (*Notify) message() {}

// Type returns the wire discriminator.
func (*Notify) Type() string { return TypeNotify }

// NewNotify builds a notification.
func NewNotify(title, body string) *Notify {
	return &Notify{Title: title, Body: body}
}

// Validate checks required fields.
func (m *Notify) Validate() error {
	if m.Body == "" {
		return errors.New("notify: body is required")
	}

	return nil
}

// Show makes the host window visible.
type Show struct{}

func (*Show) message() {}

// Type returns the wire discriminator.
func (*Show) Type() string { return TypeShow }

// NewShow builds a window-show message.
func NewShow() *Show { return &Show{} }

// Hide hides the host window without ending the script.
type Hide struct{}

func (*Hide) message() {}

// Type returns the wire discriminator.
func (*Hide) Type() string { return TypeHide }

// NewHide builds a window-hide message.
func NewHide() *Hide { return &Hide{} }

// SetStatus updates the host's tray or status area.
type SetStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (*SetStatus) message() {}

// Type returns the wire discriminator.
func (*SetStatus) Type() string { return TypeSetStatus }

// NewSetStatus builds a status-area update.
func NewSetStatus(status, message string) *SetStatus {
	return &SetStatus{Status: status, Message: message}
}

// SetTheme overrides theme variables for the current session.
type SetTheme struct {
	Theme map[string]string `json:"theme"`
}

func (*SetTheme) message() {}

// Type returns the wire discriminator.
func (*SetTheme) Type() string { return TypeSetTheme }

// NewSetTheme builds a theme override.
func NewSetTheme(theme map[string]string) *SetTheme { return &SetTheme{Theme: theme} }

// SetAlwaysOnTop pins or unpins the host window.
type SetAlwaysOnTop struct {
	Value bool `json:"value"`
}

func (*SetAlwaysOnTop) message() {}

// Type returns the wire discriminator.
func (*SetAlwaysOnTop) Type() string { return TypeSetAlwaysOnTop }

// NewSetAlwaysOnTop builds a window pin toggle.
func NewSetAlwaysOnTop(value bool) *SetAlwaysOnTop { return &SetAlwaysOnTop{Value: value} }

// SetIgnoreBlur keeps the window open when focus moves elsewhere.
type SetIgnoreBlur struct {
	Value bool `json:"value"`
}

func (*SetIgnoreBlur) message() {}

// Type returns the wire discriminator.
func (*SetIgnoreBlur) Type() string { return TypeSetIgnoreBlur }

// NewSetIgnoreBlur builds a focus-loss toggle.
func NewSetIgnoreBlur(value bool) *SetIgnoreBlur { return &SetIgnoreBlur{Value: value} }

// Copy places text on the system clipboard.
type Copy struct {
	Text string `json:"text"`
}

func (*Copy) message() {}

// Type returns the wire discriminator.
func (*Copy) Type() string { return TypeCopy }

// NewCopy builds a clipboard write.
func NewCopy(text string) *Copy { return &Copy{Text: text} }

// Paste types the given text into the frontmost app, or the current
// clipboard contents when text is empty.
type Paste struct {
	Text string `json:"text,omitempty"`
}

func (*Paste) message() {}

// Type returns the wire discriminator.
func (*Paste) Type() string { return TypePaste }

// NewPaste builds a paste of the given text, or of the clipboard when
// text is empty.
func NewPaste(text string) *Paste { return &Paste{Text: text} }

// Open hands a URL or file path to the operating system's default
// handler.
type Open struct {
	Target string `json:"target"`
}

func (*Open) message() {}

// Type returns the wire discriminator.
func (*Open) Type() string { return TypeOpen }

// NewOpen builds an open request for a URL or file path.
func NewOpen(target string) *Open { return &Open{Target: target} }

// Validate checks required fields.
func (m *Open) Validate() error {
	if m.Target == "" {
		return errors.New("open: target is required")
	}

	return nil
}

// Log forwards a script log line into the host's log stream.
type Log struct {
	Level   string `json:"level,omitempty"`
	Message string `json:"message"`
}

func (*Log) message() {}

// Type returns the wire discriminator.
func (*Log) Type() string { return TypeLog }

// NewLog builds a forwarded log line.
func NewLog(level, message string) *Log { return &Log{Level: level, Message: message} }

// Exit announces that the script is done. The host may tear down any
// prompts the script still owns.
type Exit struct {
	Code int `json:"code,omitempty"`
}

func (*Exit) message() {}

// Type returns the wire discriminator.
func (*Exit) Type() string { return TypeExit }

// NewExit builds a script-done announcement.
func NewExit(code int) *Exit { return &Exit{Code: code} }

// AppStateUpdate is pushed by the host whenever its observable state
// changes.
type AppStateUpdate struct {
	State AppState `json:"state"`
}

func (*AppStateUpdate) message() {}

// Type returns the wire discriminator.
func (*AppStateUpdate) Type() string { return TypeAppState }

// NewAppStateUpdate builds a state push.
func NewAppStateUpdate(state AppState) *AppStateUpdate { return &AppStateUpdate{State: state} }

// HostErrorMessage is pushed by the host for failures not tied to any
// request, for example a prompt the script referenced after teardown.
type HostErrorMessage struct {
	Err ErrorPayload `json:"error"`
}

func (*HostErrorMessage) message() {}

// Type returns the wire discriminator.
func (*HostErrorMessage) Type() string { return TypeHostError }

// NewHostError builds an uncorrelated failure push.
func NewHostError(code, message string) *HostErrorMessage {
	return &HostErrorMessage{Err: ErrorPayload{Code: code, Message: message}}
}
