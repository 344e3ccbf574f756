// Package mcp exposes a script session to automated agents as an MCP
// server. Each tool runs one command exchange over the session's
// Client and returns the host's answer as tool output, so an agent can
// drive the same surface scripts use, including the semantic ids
// assigned to listed choices.
package mcp

import (
	"context"
	"encoding/json"

	mcpsdk "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
)

const (
	serverName    = "script-kit"
	serverVersion = "0.1.0"
)

// Server bridges MCP tool calls onto a session client.
type Server struct {
	client *kit.Client
	srv    *mcpserver.MCPServer
	log    *logrus.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for tool-call failures.
func WithLogger(log *logrus.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// NewServer builds the MCP server over the given session client and
// registers the command tools.
func NewServer(client *kit.Client, opts ...Option) *Server {
	s := &Server{
		client: client,
		log:    logrus.New(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.srv = mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	s.register()

	return s
}

// Underlying returns the wrapped MCP server for custom transports.
func (s *Server) Underlying() *mcpserver.MCPServer {
	return s.srv
}

// ServeStdio runs the MCP server over the process's stdin and stdout
// until the stream ends.
func (s *Server) ServeStdio() error {
	return mcpserver.ServeStdio(s.srv)
}

// register wires one tool per command exchange an agent needs.
func (s *Server) register() {
	s.srv.AddTool(mcpsdk.NewTool("get_window_bounds",
		mcpsdk.WithDescription("Report the host window rectangle."),
	), s.handleWindowBounds)

	s.srv.AddTool(mcpsdk.NewTool("get_clipboard_history",
		mcpsdk.WithDescription("Fetch recent clipboard entries, newest first."),
		mcpsdk.WithNumber("limit",
			mcpsdk.Description("Maximum entries to return. 0 means the host default."),
		),
	), s.handleClipboardHistory)

	s.srv.AddTool(mcpsdk.NewTool("capture_screenshot",
		mcpsdk.WithDescription("Capture a display and return the image."),
		mcpsdk.WithNumber("display_id",
			mcpsdk.Description("Display to capture. 0 means the main display."),
		),
	), s.handleScreenshot)

	s.srv.AddTool(mcpsdk.NewTool("run_scriptlet",
		mcpsdk.WithDescription("Execute a snippet host-side and return its output."),
		mcpsdk.WithString("code",
			mcpsdk.Description("Inline snippet source. Either code or file_path is required."),
		),
		mcpsdk.WithString("file_path",
			mcpsdk.Description("Path to the snippet file. Either code or file_path is required."),
		),
		mcpsdk.WithString("tool",
			mcpsdk.Description("Interpreter for the snippet, for example bash or node."),
		),
		mcpsdk.WithArray("args",
			mcpsdk.Description("Positional arguments passed to the snippet."),
			mcpsdk.Items(map[string]any{"type": "string"}),
		),
	), s.handleRunScriptlet)

	s.srv.AddTool(mcpsdk.NewTool("get_menu_bar_items",
		mcpsdk.WithDescription("Fetch an application's menu tree."),
		mcpsdk.WithString("app_name",
			mcpsdk.Description("Application name. Empty means the frontmost application."),
		),
	), s.handleMenuBarItems)

	s.srv.AddTool(mcpsdk.NewTool("get_selected_text",
		mcpsdk.WithDescription("Read the text selected in the frontmost application."),
	), s.handleSelectedText)
}

func (s *Server) handleWindowBounds(
	ctx context.Context,
	_ mcpsdk.CallToolRequest,
) (*mcpsdk.CallToolResult, error) {
	bounds, err := s.client.WindowBounds(ctx)
	if err != nil {
		return s.commandFailed("get_window_bounds", err), nil
	}

	return jsonResult(bounds)
}

func (s *Server) handleClipboardHistory(
	ctx context.Context,
	req mcpsdk.CallToolRequest,
) (*mcpsdk.CallToolResult, error) {
	limit := intArg(req.GetArguments(), "limit")

	entries, err := s.client.ClipboardHistory(ctx, limit)
	if err != nil {
		return s.commandFailed("get_clipboard_history", err), nil
	}

	return jsonResult(entries)
}

func (s *Server) handleScreenshot(
	ctx context.Context,
	req mcpsdk.CallToolRequest,
) (*mcpsdk.CallToolResult, error) {
	displayID := intArg(req.GetArguments(), "display_id")

	shot, err := s.client.Screenshot(ctx, displayID)
	if err != nil {
		return s.commandFailed("capture_screenshot", err), nil
	}

	mime := "image/png"
	if shot.Format != "" {
		mime = "image/" + shot.Format
	}

	return mcpsdk.NewToolResultImage("captured display", shot.Data, mime), nil
}

func (s *Server) handleRunScriptlet(
	ctx context.Context,
	req mcpsdk.CallToolRequest,
) (*mcpsdk.CallToolResult, error) {
	args := req.GetArguments()
	scriptlet := messages.Scriptlet{
		Tool:     stringArg(args, "tool"),
		Code:     stringArg(args, "code"),
		FilePath: stringArg(args, "file_path"),
	}
	if scriptlet.Code == "" && scriptlet.FilePath == "" {
		return mcpsdk.NewToolResultError("either code or file_path is required"), nil
	}

	result, err := s.client.RunScriptlet(ctx, scriptlet, stringSliceArg(args, "args")...)
	if err != nil {
		return s.commandFailed("run_scriptlet", err), nil
	}

	return jsonResult(result)
}

func (s *Server) handleMenuBarItems(
	ctx context.Context,
	req mcpsdk.CallToolRequest,
) (*mcpsdk.CallToolResult, error) {
	appName := stringArg(req.GetArguments(), "app_name")

	items, err := s.client.MenuBarItems(ctx, appName)
	if err != nil {
		return s.commandFailed("get_menu_bar_items", err), nil
	}

	return jsonResult(items)
}

func (s *Server) handleSelectedText(
	ctx context.Context,
	_ mcpsdk.CallToolRequest,
) (*mcpsdk.CallToolResult, error) {
	text, err := s.client.SelectedText(ctx)
	if err != nil {
		return s.commandFailed("get_selected_text", err), nil
	}

	return mcpsdk.NewToolResultText(text), nil
}

// commandFailed reports a failed exchange as a tool error so the agent
// sees the host's reason instead of a broken call.
func (s *Server) commandFailed(tool string, err error) *mcpsdk.CallToolResult {
	s.log.WithError(err).WithField("tool", tool).Warn("tool call failed")

	return mcpsdk.NewToolResultErrorFromErr("command failed", err)
}

// jsonResult renders a payload as a JSON text result.
func jsonResult(payload any) (*mcpsdk.CallToolResult, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return mcpsdk.NewToolResultText(string(data)), nil
}

// stringArg reads an optional string argument.
func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}

	return ""
}

// intArg reads an optional numeric argument. JSON numbers arrive as
// float64.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}

	return 0
}

// stringSliceArg reads an optional array-of-string argument.
func stringSliceArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}

	return out
}
