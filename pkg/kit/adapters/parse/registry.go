package parse

import (
	"sort"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
)

// Factory produces a fresh, addressable value for one message variant.
type Factory func() messages.Message

// Registry maps wire discriminators to variant factories. It is an
// explicit value handed to each Codec rather than package state, so
// two peers in one process can speak different vocabularies. Extension
// is additive: register new kinds, never repurpose existing ones.
//
// A Registry is not safe for concurrent mutation; register everything
// before sharing it between goroutines.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry holding the full standard vocabulary.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory, 80)}

	for typ, factory := range standardFactories {
		r.factories[typ] = factory
	}

	return r
}

// NewEmptyRegistry returns a registry with no variants, for peers that
// speak a deliberately narrow subset.
func NewEmptyRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a variant factory, replacing any previous registration
// for the same discriminator.
func (r *Registry) Register(messageType string, factory Factory) {
	r.factories[messageType] = factory
}

// Lookup returns the factory for a discriminator.
func (r *Registry) Lookup(messageType string) (Factory, bool) {
	f, ok := r.factories[messageType]

	return f, ok
}

// Types returns every registered discriminator, sorted.
func (r *Registry) Types() []string {
	types := make([]string, 0, len(r.factories))
	for typ := range r.factories {
		types = append(types, typ)
	}

	sort.Strings(types)

	return types
}

// standardFactories is the full vocabulary. One entry per variant;
// additions go at the end of their family block.
var standardFactories = map[string]Factory{
	// Prompt opens.
	messages.TypeArg:      func() messages.Message { return &messages.ArgPrompt{} },
	messages.TypeMini:     func() messages.Message { return &messages.MiniPrompt{} },
	messages.TypeMicro:    func() messages.Message { return &messages.MicroPrompt{} },
	messages.TypeSelect:   func() messages.Message { return &messages.SelectPrompt{} },
	messages.TypeGrid:     func() messages.Message { return &messages.GridPrompt{} },
	messages.TypeDiv:      func() messages.Message { return &messages.DivPrompt{} },
	messages.TypeEditor:   func() messages.Message { return &messages.EditorPrompt{} },
	messages.TypeTextarea: func() messages.Message { return &messages.TextareaPrompt{} },
	messages.TypeForm:     func() messages.Message { return &messages.FormPrompt{} },
	messages.TypeFields:   func() messages.Message { return &messages.FieldsPrompt{} },
	messages.TypeHotkey:   func() messages.Message { return &messages.HotkeyPrompt{} },
	messages.TypeDrop:     func() messages.Message { return &messages.DropPrompt{} },
	messages.TypePath:     func() messages.Message { return &messages.PathPrompt{} },
	messages.TypeEmoji:    func() messages.Message { return &messages.EmojiPrompt{} },
	messages.TypeChat:     func() messages.Message { return &messages.ChatPrompt{} },
	messages.TypeTerm:     func() messages.Message { return &messages.TermPrompt{} },
	messages.TypeMic:      func() messages.Message { return &messages.MicPrompt{} },
	messages.TypeWebcam:   func() messages.Message { return &messages.WebcamPrompt{} },

	// Prompt mutations.
	messages.TypeSetChoices:         func() messages.Message { return &messages.SetChoices{} },
	messages.TypeSetActions:         func() messages.Message { return &messages.SetActions{} },
	messages.TypeSetInput:           func() messages.Message { return &messages.SetInput{} },
	messages.TypeSetPlaceholder:     func() messages.Message { return &messages.SetPlaceholder{} },
	messages.TypeSetHint:            func() messages.Message { return &messages.SetHint{} },
	messages.TypeSetPanel:           func() messages.Message { return &messages.SetPanel{} },
	messages.TypeSetPreview:         func() messages.Message { return &messages.SetPreview{} },
	messages.TypeSetFooter:          func() messages.Message { return &messages.SetFooter{} },
	messages.TypeSetName:            func() messages.Message { return &messages.SetName{} },
	messages.TypeSetDescription:     func() messages.Message { return &messages.SetDescription{} },
	messages.TypeSetProgress:        func() messages.Message { return &messages.SetProgress{} },
	messages.TypeSetEnter:           func() messages.Message { return &messages.SetEnter{} },
	messages.TypeSetSelectedChoices: func() messages.Message { return &messages.SetSelectedChoices{} },

	// Prompt events.
	messages.TypeSubmit:          func() messages.Message { return &messages.Submit{} },
	messages.TypeInput:           func() messages.Message { return &messages.Input{} },
	messages.TypeChoiceFocused:   func() messages.Message { return &messages.ChoiceFocused{} },
	messages.TypeActionTriggered: func() messages.Message { return &messages.ActionTriggered{} },
	messages.TypeEscape:          func() messages.Message { return &messages.Escape{} },
	messages.TypeAbandon:         func() messages.Message { return &messages.Abandon{} },

	// Command requests.
	messages.TypeGetWindowBounds:       func() messages.Message { return &messages.GetWindowBounds{} },
	messages.TypeSetWindowBounds:       func() messages.Message { return &messages.SetWindowBounds{} },
	messages.TypeGetClipboardHistory:   func() messages.Message { return &messages.GetClipboardHistory{} },
	messages.TypeRemoveClipboardEntry:  func() messages.Message { return &messages.RemoveClipboardEntry{} },
	messages.TypeClearClipboardHistory: func() messages.Message { return &messages.ClearClipboardHistory{} },
	messages.TypeCaptureScreenshot:     func() messages.Message { return &messages.CaptureScreenshot{} },
	messages.TypeGetScreensInfo:        func() messages.Message { return &messages.GetScreensInfo{} },
	messages.TypeRunScriptlet:          func() messages.Message { return &messages.RunScriptlet{} },
	messages.TypeGetMenuBarItems:       func() messages.Message { return &messages.GetMenuBarItems{} },
	messages.TypeClickMenuBarItem:      func() messages.Message { return &messages.ClickMenuBarItem{} },
	messages.TypeGetSelectedText:       func() messages.Message { return &messages.GetSelectedText{} },
	messages.TypeSetSelectedText:       func() messages.Message { return &messages.SetSelectedText{} },
	messages.TypeGetMousePosition:      func() messages.Message { return &messages.GetMousePosition{} },
	messages.TypeGetActiveApp:          func() messages.Message { return &messages.GetActiveApp{} },

	// Command responses.
	messages.TypeWindowBounds:     func() messages.Message { return &messages.WindowBoundsResponse{} },
	messages.TypeClipboardHistory: func() messages.Message { return &messages.ClipboardHistoryResponse{} },
	messages.TypeScreenshot:       func() messages.Message { return &messages.ScreenshotResponse{} },
	messages.TypeScreensInfo:      func() messages.Message { return &messages.ScreensInfoResponse{} },
	messages.TypeScriptletResult:  func() messages.Message { return &messages.ScriptletResult{} },
	messages.TypeMenuBarItems:     func() messages.Message { return &messages.MenuBarItemsResponse{} },
	messages.TypeMenuBarClicked:   func() messages.Message { return &messages.MenuBarClicked{} },
	messages.TypeSelectedText:     func() messages.Message { return &messages.SelectedTextResponse{} },
	messages.TypeMousePosition:    func() messages.Message { return &messages.MousePositionResponse{} },
	messages.TypeActiveApp:        func() messages.Message { return &messages.ActiveAppResponse{} },
	messages.TypeCommandError:     func() messages.Message { return &messages.CommandErrorMessage{} },

	// Fire-and-forget.
	messages.TypeBeep:           func() messages.Message { return &messages.Beep{} },
	messages.TypeSay:            func() messages.Message { return &messages.Say{} },
	messages.TypeNotify:         func() messages.Message { return &messages.Notify{} },
	messages.TypeShow:           func() messages.Message { return &messages.Show{} },
	messages.TypeHide:           func() messages.Message { return &messages.Hide{} },
	messages.TypeSetStatus:      func() messages.Message { return &messages.SetStatus{} },
	messages.TypeSetTheme:       func() messages.Message { return &messages.SetTheme{} },
	messages.TypeSetAlwaysOnTop: func() messages.Message { return &messages.SetAlwaysOnTop{} },
	messages.TypeSetIgnoreBlur:  func() messages.Message { return &messages.SetIgnoreBlur{} },
	messages.TypeCopy:           func() messages.Message { return &messages.Copy{} },
	messages.TypePaste:          func() messages.Message { return &messages.Paste{} },
	messages.TypeOpen:           func() messages.Message { return &messages.Open{} },
	messages.TypeLog:            func() messages.Message { return &messages.Log{} },
	messages.TypeExit:           func() messages.Message { return &messages.Exit{} },

	// Host pushes.
	messages.TypeAppState:  func() messages.Message { return &messages.AppStateUpdate{} },
	messages.TypeHostError: func() messages.Message { return &messages.HostErrorMessage{} },
}
