package messages

// Wire discriminator strings, grouped the way peers use them. The set
// grows additively; removing or renaming an entry breaks old peers.

// Prompt-open discriminators. A script sends one of these to start an
// interactive prompt session identified by its "id".
const (
	TypeArg      = "arg"
	TypeMini     = "mini"
	TypeMicro    = "micro"
	TypeSelect   = "select"
	TypeGrid     = "grid"
	TypeDiv      = "div"
	TypeEditor   = "editor"
	TypeTextarea = "textarea"
	TypeForm     = "form"
	TypeFields   = "fields"
	TypeHotkey   = "hotkey"
	TypeDrop     = "drop"
	TypePath     = "path"
	TypeEmoji    = "emoji"
	TypeChat     = "chat"
	TypeTerm     = "term"
	TypeMic      = "mic"
	TypeWebcam   = "webcam"
)

// Prompt mutation discriminators. Scripts adjust an open prompt
// in place without restarting it.
const (
	TypeSetChoices         = "setChoices"
	TypeSetActions         = "setActions"
	TypeSetInput           = "setInput"
	TypeSetPlaceholder     = "setPlaceholder"
	TypeSetHint            = "setHint"
	TypeSetPanel           = "setPanel"
	TypeSetPreview         = "setPreview"
	TypeSetFooter          = "setFooter"
	TypeSetName            = "setName"
	TypeSetDescription     = "setDescription"
	TypeSetProgress        = "setProgress"
	TypeSetEnter           = "setEnter"
	TypeSetSelectedChoices = "setSelectedChoices"
)

// Prompt event discriminators. The host reports user activity on an
// open prompt back to the owning script.
const (
	TypeSubmit          = "submit"
	TypeInput           = "input"
	TypeChoiceFocused   = "choiceFocused"
	TypeActionTriggered = "actionTriggered"
	TypeEscape          = "escape"
	TypeAbandon         = "abandon"
)

// Command request discriminators. One-shot exchanges correlated by
// "requestId".
const (
	TypeGetWindowBounds       = "getWindowBounds"
	TypeSetWindowBounds       = "setWindowBounds"
	TypeGetClipboardHistory   = "getClipboardHistory"
	TypeRemoveClipboardEntry  = "removeClipboardEntry"
	TypeClearClipboardHistory = "clearClipboardHistory"
	TypeCaptureScreenshot     = "captureScreenshot"
	TypeGetScreensInfo        = "getScreensInfo"
	TypeRunScriptlet          = "runScriptlet"
	TypeGetMenuBarItems       = "getMenuBarItems"
	TypeClickMenuBarItem      = "clickMenuBarItem"
	TypeGetSelectedText       = "getSelectedText"
	TypeSetSelectedText       = "setSelectedText"
	TypeGetMousePosition      = "getMousePosition"
	TypeGetActiveApp          = "getActiveApp"
)

// Command response discriminators. Each echoes the request's
// "requestId" verbatim.
const (
	TypeWindowBounds     = "windowBounds"
	TypeClipboardHistory = "clipboardHistory"
	TypeScreenshot       = "screenshot"
	TypeScreensInfo      = "screensInfo"
	TypeScriptletResult  = "scriptletResult"
	TypeMenuBarItems     = "menuBarItems"
	TypeMenuBarClicked   = "menuBarClicked"
	TypeSelectedText     = "selectedText"
	TypeMousePosition    = "mousePosition"
	TypeActiveApp        = "activeApp"
	TypeCommandError     = "commandError"
)

// Fire-and-forget discriminators. No correlation; the sender does not
// wait for anything.
const (
	TypeBeep           = "beep"
	TypeSay            = "say"
	TypeNotify         = "notify"
	TypeShow           = "show"
	TypeHide           = "hide"
	TypeSetStatus      = "setStatus"
	TypeSetTheme       = "setTheme"
	TypeSetAlwaysOnTop = "setAlwaysOnTop"
	TypeSetIgnoreBlur  = "setIgnoreBlur"
	TypeCopy           = "copy"
	TypePaste          = "paste"
	TypeOpen           = "open"
	TypeLog            = "log"
	TypeExit           = "exit"
)

// Host push discriminators. Sent by the host without any script
// request.
const (
	TypeAppState  = "appState"
	TypeHostError = "hostError"
)
