package messages

import (
	"encoding/json"
	"errors"
)

// Command exchanges are one-shot request/response pairs correlated by
// requestId. The initiator picks an opaque id; the responder copies it
// verbatim. Any request may be answered by CommandErrorMessage instead
// of its usual response.

// GetWindowBounds asks for the host window rectangle.
type GetWindowBounds struct {
	RequestRef
}

func (*GetWindowBounds) message() {}

// Type returns the wire discriminator.
func (*GetWindowBounds) Type() string { return TypeGetWindowBounds }

// NewGetWindowBounds builds a window-bounds query.
func NewGetWindowBounds() *GetWindowBounds { return &GetWindowBounds{} }

// SetWindowBounds moves or resizes the host window. The response
// reports the bounds actually applied, which may differ when the host
// clamps them to a screen.
type SetWindowBounds struct {
	RequestRef
	Bounds WindowBounds `json:"bounds"`
}

func (*SetWindowBounds) message() {}

// Type returns the wire discriminator.
func (*SetWindowBounds) Type() string { return TypeSetWindowBounds }

// NewSetWindowBounds builds a window move/resize request.
func NewSetWindowBounds(bounds WindowBounds) *SetWindowBounds {
	return &SetWindowBounds{Bounds: bounds}
}

// GetClipboardHistory asks for recent clipboard entries. An omitted
// limit defaults to DefaultClipboardLimit at decode time.
type GetClipboardHistory struct {
	RequestRef
	Limit int `json:"limit,omitempty"`
}

func (*GetClipboardHistory) message() {}

// Type returns the wire discriminator.
func (*GetClipboardHistory) Type() string { return TypeGetClipboardHistory }

// NewGetClipboardHistory builds a history query. A limit of 0 asks for
// the host default.
func NewGetClipboardHistory(limit int) *GetClipboardHistory {
	return &GetClipboardHistory{Limit: limit}
}

// UnmarshalJSON decodes the request and applies the limit default.
func (m *GetClipboardHistory) UnmarshalJSON(data []byte) error {
	type plain GetClipboardHistory

	var v plain
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*m = GetClipboardHistory(v)
	if m.Limit == 0 {
		m.Limit = DefaultClipboardLimit
	}

	return nil
}

// RemoveClipboardEntry deletes one history entry by id.
type RemoveClipboardEntry struct {
	RequestRef
	EntryID string `json:"entryId"`
}

func (*RemoveClipboardEntry) message() {}

// Type returns the wire discriminator.
func (*RemoveClipboardEntry) Type() string { return TypeRemoveClipboardEntry }

// NewRemoveClipboardEntry builds a single-entry delete request.
func NewRemoveClipboardEntry(entryID string) *RemoveClipboardEntry {
	return &RemoveClipboardEntry{EntryID: entryID}
}

// Validate checks required fields.
func (m *RemoveClipboardEntry) Validate() error {
	if m.EntryID == "" {
		return errors.New("removeClipboardEntry: entryId is required")
	}

	return nil
}

// ClearClipboardHistory deletes all unpinned history entries.
type ClearClipboardHistory struct {
	RequestRef
}

func (*ClearClipboardHistory) message() {}

// Type returns the wire discriminator.
func (*ClearClipboardHistory) Type() string { return TypeClearClipboardHistory }

// NewClearClipboardHistory builds a full-history delete request.
func NewClearClipboardHistory() *ClearClipboardHistory { return &ClearClipboardHistory{} }

// CaptureScreenshot asks the host to capture a display.
type CaptureScreenshot struct {
	RequestRef
	DisplayID int `json:"displayId,omitempty"`
}

func (*CaptureScreenshot) message() {}

// Type returns the wire discriminator.
func (*CaptureScreenshot) Type() string { return TypeCaptureScreenshot }

// NewCaptureScreenshot builds a capture request. A displayID of 0
// means the main display.
func NewCaptureScreenshot(displayID int) *CaptureScreenshot {
	return &CaptureScreenshot{DisplayID: displayID}
}

// GetScreensInfo asks for the attached display layout.
type GetScreensInfo struct {
	RequestRef
}

func (*GetScreensInfo) message() {}

// Type returns the wire discriminator.
func (*GetScreensInfo) Type() string { return TypeGetScreensInfo }

// NewGetScreensInfo builds a display-layout query.
func NewGetScreensInfo() *GetScreensInfo { return &GetScreensInfo{} }

// RunScriptlet asks the host to execute a snippet on the script's
// behalf, with the host's environment and permissions.
type RunScriptlet struct {
	RequestRef
	Scriptlet Scriptlet `json:"scriptlet"`
	Args      []string  `json:"args,omitempty"`
}

func (*RunScriptlet) message() {}

// Type returns the wire discriminator.
func (*RunScriptlet) Type() string { return TypeRunScriptlet }

// NewRunScriptlet builds a snippet execution request.
func NewRunScriptlet(scriptlet Scriptlet, args ...string) *RunScriptlet {
	return &RunScriptlet{Scriptlet: scriptlet, Args: args}
}

// Validate checks required fields.
func (m *RunScriptlet) Validate() error {
	if m.Scriptlet.Code == "" && m.Scriptlet.FilePath == "" {
		return errors.New("runScriptlet: scriptlet needs code or filePath")
	}

	return nil
}

// GetMenuBarItems asks for an application's menu tree. An empty
// appName means the frontmost application.
type GetMenuBarItems struct {
	RequestRef
	AppName string `json:"appName,omitempty"`
}

func (*GetMenuBarItems) message() {}

// Type returns the wire discriminator.
func (*GetMenuBarItems) Type() string { return TypeGetMenuBarItems }

// NewGetMenuBarItems builds a menu-tree query for the application.
func NewGetMenuBarItems(appName string) *GetMenuBarItems {
	return &GetMenuBarItems{AppName: appName}
}

// ClickMenuBarItem clicks a menu item addressed by its title path,
// for example ["File", "Export", "PDF"].
type ClickMenuBarItem struct {
	RequestRef
	Path    []string `json:"path"`
	AppName string   `json:"appName,omitempty"`
}

func (*ClickMenuBarItem) message() {}

// Type returns the wire discriminator.
func (*ClickMenuBarItem) Type() string { return TypeClickMenuBarItem }

// NewClickMenuBarItem builds a click request for the menu path.
func NewClickMenuBarItem(path []string, appName string) *ClickMenuBarItem {
	return &ClickMenuBarItem{Path: path, AppName: appName}
}

// Validate checks required fields.
func (m *ClickMenuBarItem) Validate() error {
	if len(m.Path) == 0 {
		return errors.New("clickMenuBarItem: path is required")
	}

	return nil
}

// GetSelectedText asks for the text selected in the frontmost app.
type GetSelectedText struct {
	RequestRef
}

func (*GetSelectedText) message() {}

// Type returns the wire discriminator.
func (*GetSelectedText) Type() string { return TypeGetSelectedText }

// NewGetSelectedText builds a selection query.
func NewGetSelectedText() *GetSelectedText { return &GetSelectedText{} }

// SetSelectedText replaces the selection in the frontmost app.
type SetSelectedText struct {
	RequestRef
	Text string `json:"text"`
}

func (*SetSelectedText) message() {}

// Type returns the wire discriminator.
func (*SetSelectedText) Type() string { return TypeSetSelectedText }

// NewSetSelectedText builds a selection replacement request.
func NewSetSelectedText(text string) *SetSelectedText {
	return &SetSelectedText{Text: text}
}

// GetMousePosition asks for the current cursor location.
type GetMousePosition struct {
	RequestRef
}

func (*GetMousePosition) message() {}

// Type returns the wire discriminator.
func (*GetMousePosition) Type() string { return TypeGetMousePosition }

// NewGetMousePosition builds a cursor-location query.
func NewGetMousePosition() *GetMousePosition { return &GetMousePosition{} }

// GetActiveApp asks which application has focus.
type GetActiveApp struct {
	RequestRef
}

func (*GetActiveApp) message() {}

// Type returns the wire discriminator.
func (*GetActiveApp) Type() string { return TypeGetActiveApp }

// NewGetActiveApp builds a focused-application query.
func NewGetActiveApp() *GetActiveApp { return &GetActiveApp{} }

// WindowBoundsResponse answers GetWindowBounds and SetWindowBounds.
type WindowBoundsResponse struct {
	RequestRef
	Bounds WindowBounds `json:"bounds"`
}

func (*WindowBoundsResponse) message() {}

// Type returns the wire discriminator.
func (*WindowBoundsResponse) Type() string { return TypeWindowBounds }

// NewWindowBoundsResponse answers requestID with the applied bounds.
func NewWindowBoundsResponse(requestID string, bounds WindowBounds) *WindowBoundsResponse {
	return &WindowBoundsResponse{RequestRef: RequestRef{ID: requestID}, Bounds: bounds}
}

// ClipboardHistoryResponse answers the clipboard history commands with
// the post-operation state of the history.
type ClipboardHistoryResponse struct {
	RequestRef
	Entries []ClipboardEntry `json:"entries"`
}

func (*ClipboardHistoryResponse) message() {}

// Type returns the wire discriminator.
func (*ClipboardHistoryResponse) Type() string { return TypeClipboardHistory }

// NewClipboardHistoryResponse answers requestID with the history state.
func NewClipboardHistoryResponse(requestID string, entries []ClipboardEntry) *ClipboardHistoryResponse {
	return &ClipboardHistoryResponse{RequestRef: RequestRef{ID: requestID}, Entries: entries}
}

// ScreenshotResponse answers CaptureScreenshot. Data is base64 and can
// run to megabytes.
type ScreenshotResponse struct {
	RequestRef
	Data   string `json:"data"`
	Format string `json:"format,omitempty"`
}

func (*ScreenshotResponse) message() {}

// Type returns the wire discriminator.
func (*ScreenshotResponse) Type() string { return TypeScreenshot }

// NewScreenshotResponse answers requestID with base64 image data.
func NewScreenshotResponse(requestID, data, format string) *ScreenshotResponse {
	return &ScreenshotResponse{RequestRef: RequestRef{ID: requestID}, Data: data, Format: format}
}

// ScreensInfoResponse answers GetScreensInfo.
type ScreensInfoResponse struct {
	RequestRef
	Screens []ScreenInfo `json:"screens"`
}

func (*ScreensInfoResponse) message() {}

// Type returns the wire discriminator.
func (*ScreensInfoResponse) Type() string { return TypeScreensInfo }

// NewScreensInfoResponse answers requestID with the display layout.
func NewScreensInfoResponse(requestID string, screens []ScreenInfo) *ScreensInfoResponse {
	return &ScreensInfoResponse{RequestRef: RequestRef{ID: requestID}, Screens: screens}
}

// ScriptletResult answers RunScriptlet with the snippet's output.
type ScriptletResult struct {
	RequestRef
	Output   string `json:"output,omitempty"`
	ExitCode int    `json:"exitCode,omitempty"`
}

func (*ScriptletResult) message() {}

// Type returns the wire discriminator.
func (*ScriptletResult) Type() string { return TypeScriptletResult }

// NewScriptletResult answers requestID with the snippet's output.
func NewScriptletResult(requestID, output string, exitCode int) *ScriptletResult {
	return &ScriptletResult{RequestRef: RequestRef{ID: requestID}, Output: output, ExitCode: exitCode}
}

// MenuBarItemsResponse answers GetMenuBarItems.
type MenuBarItemsResponse struct {
	RequestRef
	Items []MenuBarItem `json:"items"`
}

func (*MenuBarItemsResponse) message() {}

// Type returns the wire discriminator.
func (*MenuBarItemsResponse) Type() string { return TypeMenuBarItems }

// NewMenuBarItemsResponse answers requestID with the menu tree.
func NewMenuBarItemsResponse(requestID string, items []MenuBarItem) *MenuBarItemsResponse {
	return &MenuBarItemsResponse{RequestRef: RequestRef{ID: requestID}, Items: items}
}

// MenuBarClicked answers ClickMenuBarItem, echoing the path that was
// clicked.
type MenuBarClicked struct {
	RequestRef
	Path []string `json:"path,omitempty"`
}

func (*MenuBarClicked) message() {}

// Type returns the wire discriminator.
func (*MenuBarClicked) Type() string { return TypeMenuBarClicked }

// NewMenuBarClicked answers requestID with the path that was clicked.
func NewMenuBarClicked(requestID string, path []string) *MenuBarClicked {
	return &MenuBarClicked{RequestRef: RequestRef{ID: requestID}, Path: path}
}

// SelectedTextResponse answers GetSelectedText and SetSelectedText.
type SelectedTextResponse struct {
	RequestRef
	Text string `json:"text"`
}

func (*SelectedTextResponse) message() {}

// Type returns the wire discriminator.
func (*SelectedTextResponse) Type() string { return TypeSelectedText }

// NewSelectedTextResponse answers requestID with the selection.
func NewSelectedTextResponse(requestID, text string) *SelectedTextResponse {
	return &SelectedTextResponse{RequestRef: RequestRef{ID: requestID}, Text: text}
}

// MousePositionResponse answers GetMousePosition.
type MousePositionResponse struct {
	RequestRef
	X int `json:"x"`
	Y int `json:"y"`
}

func (*MousePositionResponse) message() {}

// Type returns the wire discriminator.
func (*MousePositionResponse) Type() string { return TypeMousePosition }

// NewMousePositionResponse answers requestID with cursor coordinates.
func NewMousePositionResponse(requestID string, x, y int) *MousePositionResponse {
	return &MousePositionResponse{RequestRef: RequestRef{ID: requestID}, X: x, Y: y}
}

// ActiveAppResponse answers GetActiveApp.
type ActiveAppResponse struct {
	RequestRef
	Name     string `json:"name"`
	BundleID string `json:"bundleId,omitempty"`
	PID      int    `json:"pid,omitempty"`
}

func (*ActiveAppResponse) message() {}

// Type returns the wire discriminator.
func (*ActiveAppResponse) Type() string { return TypeActiveApp }

// NewActiveAppResponse answers requestID with the focused application.
func NewActiveAppResponse(requestID, name string) *ActiveAppResponse {
	return &ActiveAppResponse{RequestRef: RequestRef{ID: requestID}, Name: name}
}

// CommandErrorMessage answers any command request whose execution
// failed, carrying the initiator's requestId so the failure resolves
// the right pending call.
type CommandErrorMessage struct {
	RequestRef
	Err ErrorPayload `json:"error"`
}

func (*CommandErrorMessage) message() {}

// Type returns the wire discriminator.
func (*CommandErrorMessage) Type() string { return TypeCommandError }

// NewCommandError builds a command failure answering requestID.
func NewCommandError(requestID, code, message string) *CommandErrorMessage {
	return &CommandErrorMessage{
		RequestRef: RequestRef{ID: requestID},
		Err:        ErrorPayload{Code: code, Message: message},
	}
}
