package kit

import (
	"context"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// Typed wrappers over Request, one per command exchange. Each sends
// the request variant and unpacks the matching response; a response of
// the wrong type for a matched id is a session error.

// WindowBounds reports the host window rectangle.
func (c *Client) WindowBounds(
	ctx context.Context,
) (messages.WindowBounds, error) {
	resp, err := c.Request(ctx, &messages.GetWindowBounds{})
	if err != nil {
		return messages.WindowBounds{}, err
	}

	r, ok := resp.(*messages.WindowBoundsResponse)
	if !ok {
		return messages.WindowBounds{}, unexpectedResponse("getWindowBounds", resp)
	}

	return r.Bounds, nil
}

// SetWindowBounds moves or resizes the host window and reports the
// bounds actually applied.
func (c *Client) SetWindowBounds(
	ctx context.Context,
	bounds messages.WindowBounds,
) (messages.WindowBounds, error) {
	resp, err := c.Request(ctx, &messages.SetWindowBounds{Bounds: bounds})
	if err != nil {
		return messages.WindowBounds{}, err
	}

	r, ok := resp.(*messages.WindowBoundsResponse)
	if !ok {
		return messages.WindowBounds{}, unexpectedResponse("setWindowBounds", resp)
	}

	return r.Bounds, nil
}

// ClipboardHistory fetches recent clipboard entries, newest first. A
// limit of 0 asks for the host default.
func (c *Client) ClipboardHistory(
	ctx context.Context,
	limit int,
) ([]messages.ClipboardEntry, error) {
	resp, err := c.Request(ctx, &messages.GetClipboardHistory{Limit: limit})
	if err != nil {
		return nil, err
	}

	r, ok := resp.(*messages.ClipboardHistoryResponse)
	if !ok {
		return nil, unexpectedResponse("getClipboardHistory", resp)
	}

	return r.Entries, nil
}

// RemoveClipboardEntry deletes one history entry and reports the
// remaining entries.
func (c *Client) RemoveClipboardEntry(
	ctx context.Context,
	entryID string,
) ([]messages.ClipboardEntry, error) {
	resp, err := c.Request(ctx, &messages.RemoveClipboardEntry{EntryID: entryID})
	if err != nil {
		return nil, err
	}

	r, ok := resp.(*messages.ClipboardHistoryResponse)
	if !ok {
		return nil, unexpectedResponse("removeClipboardEntry", resp)
	}

	return r.Entries, nil
}

// ClearClipboardHistory deletes all unpinned history entries.
func (c *Client) ClearClipboardHistory(
	ctx context.Context,
) ([]messages.ClipboardEntry, error) {
	resp, err := c.Request(ctx, &messages.ClearClipboardHistory{})
	if err != nil {
		return nil, err
	}

	r, ok := resp.(*messages.ClipboardHistoryResponse)
	if !ok {
		return nil, unexpectedResponse("clearClipboardHistory", resp)
	}

	return r.Entries, nil
}

// Screenshot captures a display. A displayID of 0 means the main
// display.
func (c *Client) Screenshot(
	ctx context.Context,
	displayID int,
) (*messages.ScreenshotResponse, error) {
	resp, err := c.Request(ctx, &messages.CaptureScreenshot{DisplayID: displayID})
	if err != nil {
		return nil, err
	}

	r, ok := resp.(*messages.ScreenshotResponse)
	if !ok {
		return nil, unexpectedResponse("captureScreenshot", resp)
	}

	return r, nil
}

// ScreensInfo reports the attached display layout.
func (c *Client) ScreensInfo(
	ctx context.Context,
) ([]messages.ScreenInfo, error) {
	resp, err := c.Request(ctx, &messages.GetScreensInfo{})
	if err != nil {
		return nil, err
	}

	r, ok := resp.(*messages.ScreensInfoResponse)
	if !ok {
		return nil, unexpectedResponse("getScreensInfo", resp)
	}

	return r.Screens, nil
}

// RunScriptlet executes a snippet host-side and returns its output.
func (c *Client) RunScriptlet(
	ctx context.Context,
	scriptlet messages.Scriptlet,
	args ...string,
) (*messages.ScriptletResult, error) {
	resp, err := c.Request(ctx, &messages.RunScriptlet{
		Scriptlet: scriptlet,
		Args:      args,
	})
	if err != nil {
		return nil, err
	}

	r, ok := resp.(*messages.ScriptletResult)
	if !ok {
		return nil, unexpectedResponse("runScriptlet", resp)
	}

	return r, nil
}

// MenuBarItems fetches an application's menu tree. An empty appName
// means the frontmost application.
func (c *Client) MenuBarItems(
	ctx context.Context,
	appName string,
) ([]messages.MenuBarItem, error) {
	resp, err := c.Request(ctx, &messages.GetMenuBarItems{AppName: appName})
	if err != nil {
		return nil, err
	}

	r, ok := resp.(*messages.MenuBarItemsResponse)
	if !ok {
		return nil, unexpectedResponse("getMenuBarItems", resp)
	}

	return r.Items, nil
}

// ClickMenuBarItem clicks the menu item addressed by its title path
// and reports the path clicked.
func (c *Client) ClickMenuBarItem(
	ctx context.Context,
	path []string,
	appName string,
) ([]string, error) {
	resp, err := c.Request(ctx, &messages.ClickMenuBarItem{
		Path:    path,
		AppName: appName,
	})
	if err != nil {
		return nil, err
	}

	r, ok := resp.(*messages.MenuBarClicked)
	if !ok {
		return nil, unexpectedResponse("clickMenuBarItem", resp)
	}

	return r.Path, nil
}

// SelectedText reads the selection in the frontmost application.
func (c *Client) SelectedText(ctx context.Context) (string, error) {
	resp, err := c.Request(ctx, &messages.GetSelectedText{})
	if err != nil {
		return "", err
	}

	r, ok := resp.(*messages.SelectedTextResponse)
	if !ok {
		return "", unexpectedResponse("getSelectedText", resp)
	}

	return r.Text, nil
}

// SetSelectedText replaces the selection in the frontmost application
// and reports the text that was set.
func (c *Client) SetSelectedText(
	ctx context.Context,
	text string,
) (string, error) {
	resp, err := c.Request(ctx, &messages.SetSelectedText{Text: text})
	if err != nil {
		return "", err
	}

	r, ok := resp.(*messages.SelectedTextResponse)
	if !ok {
		return "", unexpectedResponse("setSelectedText", resp)
	}

	return r.Text, nil
}

// MousePosition reports the cursor location in screen coordinates.
func (c *Client) MousePosition(ctx context.Context) (int, int, error) {
	resp, err := c.Request(ctx, &messages.GetMousePosition{})
	if err != nil {
		return 0, 0, err
	}

	r, ok := resp.(*messages.MousePositionResponse)
	if !ok {
		return 0, 0, unexpectedResponse("getMousePosition", resp)
	}

	return r.X, r.Y, nil
}

// ActiveApp reports which application has focus.
func (c *Client) ActiveApp(
	ctx context.Context,
) (*messages.ActiveAppResponse, error) {
	resp, err := c.Request(ctx, &messages.GetActiveApp{})
	if err != nil {
		return nil, err
	}

	r, ok := resp.(*messages.ActiveAppResponse)
	if !ok {
		return nil, unexpectedResponse("getActiveApp", resp)
	}

	return r, nil
}

// unexpectedResponse reports a response of the wrong type answering a
// matched request id.
func unexpectedResponse(command string, resp messages.Message) error {
	return kiterrs.NewSessionError(
		kiterrs.ErrCodeUnexpectedResponse,
		"response type "+resp.Type()+" does not answer "+command,
		nil,
	).WithRequestID(requestIDOf(resp))
}
