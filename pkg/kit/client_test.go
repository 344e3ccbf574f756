package kit

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/parse"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/stdio"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kiterrs"
)

// testHost plays the shell side of a session over in-process pipes.
type testHost struct {
	reader *stdio.Reader
	writer *stdio.Writer
	rawIn  io.Writer
}

func (h *testHost) next(t *testing.T) messages.Message {
	t.Helper()

	msg, err := h.reader.Next()
	if err != nil {
		t.Fatalf("host read failed: %v", err)
	}

	return msg
}

func (h *testHost) send(t *testing.T, m messages.Message) {
	t.Helper()

	if err := h.writer.Write(m); err != nil {
		t.Fatalf("host write failed: %v", err)
	}
}

// sendRaw injects bytes that never went through the codec.
func (h *testHost) sendRaw(t *testing.T, line string) {
	t.Helper()

	if _, err := io.WriteString(h.rawIn, line+"\n"); err != nil {
		t.Fatalf("host raw write failed: %v", err)
	}
}

// newTestSession wires a Client and a testHost together with pipes.
// The pipes close with the test, which ends the client's read loop.
func newTestSession(t *testing.T, opts ...ClientOption) (*Client, *testHost) {
	t.Helper()

	inR, inW := io.Pipe()
	outR, outW := io.Pipe()

	client := NewClient(inR, outW, opts...)
	host := &testHost{
		reader: stdio.NewReader(outR, parse.NewStandardCodec()),
		writer: stdio.NewWriter(inW),
		rawIn:  inW,
	}

	t.Cleanup(func() {
		_ = client.Close()
		_ = inW.Close()
		_ = outW.Close()
		_ = inR.Close()
		_ = outR.Close()
	})

	return client, host
}

func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	return ctx
}

func TestRequestCorrelation(t *testing.T) {
	client, host := newTestSession(t)

	idCh := make(chan string, 1)
	go func() {
		msg, err := host.reader.Next()
		if err != nil {
			t.Errorf("host read failed: %v", err)

			return
		}
		req, ok := msg.(*messages.GetWindowBounds)
		if !ok {
			t.Errorf("expected *GetWindowBounds, got %T", msg)

			return
		}
		idCh <- req.RequestID()
		_ = host.writer.Write(&messages.WindowBoundsResponse{
			RequestRef: messages.RequestRef{ID: req.RequestID()},
			Bounds:     messages.WindowBounds{X: 10, Y: 20, Width: 800, Height: 600},
		})
	}()

	bounds, err := client.WindowBounds(testContext(t))
	if err != nil {
		t.Fatalf("WindowBounds failed: %v", err)
	}
	if bounds.Width != 800 || bounds.Height != 600 {
		t.Errorf("unexpected bounds: %+v", bounds)
	}

	id := <-idCh
	parts := strings.Split(id, "_")
	if len(parts) != 3 || parts[0] != "req" {
		t.Fatalf("request id %q does not match req_<counter>_<fragment>", id)
	}
	if parts[1] != "1" {
		t.Errorf("first request should carry counter 1, got %q", parts[1])
	}
	if len(parts[2]) != 8 {
		t.Errorf("id fragment should be 8 chars, got %q", parts[2])
	}
}

func TestRequestOutOfOrderResponses(t *testing.T) {
	client, host := newTestSession(t)
	ctx := testContext(t)

	// The host reads both requests first, then answers them in
	// reverse order. Each call must still get its own response.
	go func() {
		first, err := host.reader.Next()
		if err != nil {
			t.Errorf("host read failed: %v", err)

			return
		}
		second, err := host.reader.Next()
		if err != nil {
			t.Errorf("host read failed: %v", err)

			return
		}

		for _, msg := range []messages.Message{second, first} {
			switch req := msg.(type) {
			case *messages.GetMousePosition:
				_ = host.writer.Write(&messages.MousePositionResponse{
					RequestRef: messages.RequestRef{ID: req.RequestID()},
					X:          3, Y: 4,
				})
			case *messages.GetSelectedText:
				_ = host.writer.Write(&messages.SelectedTextResponse{
					RequestRef: messages.RequestRef{ID: req.RequestID()},
					Text:       "lorem",
				})
			default:
				t.Errorf("unexpected request %T", msg)
			}
		}
	}()

	type mouseResult struct {
		x, y int
		err  error
	}
	mouseCh := make(chan mouseResult, 1)
	go func() {
		x, y, err := client.MousePosition(ctx)
		mouseCh <- mouseResult{x, y, err}
	}()

	// Give the first request a head start so the host's read order
	// matches the send order.
	time.Sleep(10 * time.Millisecond)

	text, err := client.SelectedText(ctx)
	if err != nil {
		t.Fatalf("SelectedText failed: %v", err)
	}
	if text != "lorem" {
		t.Errorf("expected %q, got %q", "lorem", text)
	}

	mouse := <-mouseCh
	if mouse.err != nil {
		t.Fatalf("MousePosition failed: %v", mouse.err)
	}
	if mouse.x != 3 || mouse.y != 4 {
		t.Errorf("unexpected position: (%d,%d)", mouse.x, mouse.y)
	}
}

func TestRequestContextCancel(t *testing.T) {
	client, host := newTestSession(t)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// Consume the request so the write completes, then cancel
		// without ever answering.
		if _, err := host.reader.Next(); err != nil {
			t.Errorf("host read failed: %v", err)
		}
		cancel()
	}()

	_, err := client.WindowBounds(ctx)
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	client.mu.Lock()
	pending := len(client.pending)
	client.mu.Unlock()
	if pending != 0 {
		t.Errorf("canceled request left %d pending entries", pending)
	}
}

func TestRequestCommandError(t *testing.T) {
	client, host := newTestSession(t)

	go func() {
		msg, err := host.reader.Next()
		if err != nil {
			t.Errorf("host read failed: %v", err)

			return
		}
		req := msg.(*messages.GetSelectedText)
		_ = host.writer.Write(messages.NewCommandError(
			req.RequestID(), "unsupported", "no handler for getSelectedText",
		))
	}()

	_, err := client.SelectedText(testContext(t))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !kiterrs.IsCode(err, kiterrs.ErrCodeCommandUnsupported) {
		t.Errorf("expected command_unsupported, got %v", err)
	}

	var cmdErr *kiterrs.CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *kiterrs.CommandError, got %T", err)
	}
	if cmdErr.Command() != "getSelectedText" {
		t.Errorf("expected command getSelectedText, got %q", cmdErr.Command())
	}
}

func TestPromptSubmitFlow(t *testing.T) {
	client, host := newTestSession(t)
	ctx := testContext(t)

	go func() {
		msg, err := host.reader.Next()
		if err != nil {
			t.Errorf("host read failed: %v", err)

			return
		}
		open, ok := msg.(*messages.SelectPrompt)
		if !ok {
			t.Errorf("expected *SelectPrompt, got %T", msg)

			return
		}
		if open.PromptID() == "" {
			t.Error("open carries no prompt id")
		}
		if got := open.Choices[0].SemanticID; got != "choice:0:apple" {
			t.Errorf("expected semantic id choice:0:apple, got %q", got)
		}
		_ = host.writer.Write(messages.NewSubmit(
			open.PromptID(), messages.JSONValue(`"apple"`),
		))
	}()

	prompt, err := client.Prompt(ctx, messages.NewSelectPrompt("Pick one", []messages.Choice{
		messages.NewChoice("Apple"),
		messages.NewChoice("Banana"),
	}))
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}

	value, err := prompt.Wait(ctx)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if string(value) != `"apple"` {
		t.Errorf("expected %q, got %q", `"apple"`, value)
	}
}

func TestArgResolvesSubmittedString(t *testing.T) {
	client, host := newTestSession(t)

	go func() {
		msg, err := host.reader.Next()
		if err != nil {
			t.Errorf("host read failed: %v", err)

			return
		}
		open := msg.(*messages.ArgPrompt)
		_ = host.writer.Write(messages.NewSubmit(
			open.PromptID(), messages.JSONValue(`"hello world"`),
		))
	}()

	got, err := client.Arg(testContext(t), "Say something")
	if err != nil {
		t.Fatalf("Arg failed: %v", err)
	}
	if got != "hello world" {
		t.Errorf("expected unquoted string, got %q", got)
	}
}

func TestPromptEscape(t *testing.T) {
	client, host := newTestSession(t)
	ctx := testContext(t)

	go func() {
		msg, err := host.reader.Next()
		if err != nil {
			t.Errorf("host read failed: %v", err)

			return
		}
		open := msg.(*messages.ArgPrompt)
		_ = host.writer.Write(&messages.Escape{
			PromptRef: messages.PromptRef{ID: open.PromptID()},
		})
	}()

	prompt, err := client.Prompt(ctx, messages.NewArgPrompt("Anything"))
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}

	_, err = prompt.Wait(ctx)
	if !kiterrs.IsCode(err, kiterrs.ErrCodePromptEscaped) {
		t.Fatalf("expected prompt_escaped, got %v", err)
	}
}

func TestPromptReplaced(t *testing.T) {
	client, host := newTestSession(t)
	ctx := testContext(t)

	opens := make(chan string, 2)
	go func() {
		for i := 0; i < 2; i++ {
			msg, err := host.reader.Next()
			if err != nil {
				t.Errorf("host read failed: %v", err)

				return
			}
			opens <- msg.(*messages.ArgPrompt).PromptID()
		}
	}()

	first, err := client.Prompt(ctx, messages.NewArgPrompt("First"))
	if err != nil {
		t.Fatalf("first Prompt failed: %v", err)
	}
	second, err := client.Prompt(ctx, messages.NewArgPrompt("Second"))
	if err != nil {
		t.Fatalf("second Prompt failed: %v", err)
	}

	_, err = first.Wait(ctx)
	if !kiterrs.IsCode(err, kiterrs.ErrCodePromptReplaced) {
		t.Fatalf("expected prompt_replaced on first prompt, got %v", err)
	}

	<-opens
	secondID := <-opens
	if secondID != second.ID() {
		t.Fatalf("second open id %q does not match handle id %q", secondID, second.ID())
	}
	host.send(t, messages.NewSubmit(secondID, messages.JSONValue(`42`)))

	value, err := second.Wait(ctx)
	if err != nil {
		t.Fatalf("second Wait failed: %v", err)
	}
	if string(value) != "42" {
		t.Errorf("expected 42, got %s", value)
	}
}

func TestPromptEventsChannel(t *testing.T) {
	client, host := newTestSession(t)
	ctx := testContext(t)

	go func() {
		msg, err := host.reader.Next()
		if err != nil {
			t.Errorf("host read failed: %v", err)

			return
		}
		id := msg.(*messages.ArgPrompt).PromptID()
		_ = host.writer.Write(&messages.Input{
			PromptRef: messages.PromptRef{ID: id}, Input: "ap",
		})
		_ = host.writer.Write(&messages.ChoiceFocused{
			PromptRef: messages.PromptRef{ID: id}, ChoiceID: "choice:0:apple",
		})
		_ = host.writer.Write(messages.NewSubmit(id, messages.JSONValue(`"apple"`)))
	}()

	prompt, err := client.Prompt(ctx, messages.NewArgPrompt("Pick"))
	if err != nil {
		t.Fatalf("Prompt failed: %v", err)
	}

	var types []string
	for msg := range prompt.Events() {
		types = append(types, msg.Type())
	}

	want := []string{"input", "choiceFocused", "submit"}
	if len(types) != len(want) {
		t.Fatalf("expected %d events, got %v", len(want), types)
	}
	for i, typ := range want {
		if types[i] != typ {
			t.Errorf("event %d: expected %s, got %s", i, typ, types[i])
		}
	}
}

func TestLenientIssuesGoToLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	stateCh := make(chan messages.AppState, 1)

	client, host := newTestSession(t,
		WithLogger(logger),
		WithStateHandler(func(s messages.AppState) { stateCh <- s }),
	)

	host.sendRaw(t, `not json at all`)
	host.sendRaw(t, `{"type":"fromTheFuture","id":"1"}`)
	host.send(t, &messages.AppStateUpdate{
		State: messages.AppState{Focused: true, ActiveScript: "demo"},
	})

	select {
	case state := <-stateCh:
		if !state.Focused || state.ActiveScript != "demo" {
			t.Errorf("unexpected state: %+v", state)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("state update never arrived")
	}

	if got := client.State().ActiveScript; got != "demo" {
		t.Errorf("State() not updated, got %q", got)
	}

	var kinds []string
	for _, entry := range hook.AllEntries() {
		if entry.Message == "skipping undecodable record" {
			kinds = append(kinds, entry.Data["kind"].(string))
		}
	}
	want := []string{"parse_error", "unknown_type"}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d issues, got %v", len(want), kinds)
	}
	for i, kind := range want {
		if kinds[i] != kind {
			t.Errorf("issue %d: expected %s, got %s", i, kind, kinds[i])
		}
	}
}

func TestUnclaimedResponseKeepsSessionUsable(t *testing.T) {
	logger, hook := test.NewNullLogger()
	client, host := newTestSession(t, WithLogger(logger))

	host.send(t, &messages.SelectedTextResponse{
		RequestRef: messages.RequestRef{ID: "req_9_deadbeef"},
		Text:       "stale",
	})

	go func() {
		msg, err := host.reader.Next()
		if err != nil {
			t.Errorf("host read failed: %v", err)

			return
		}
		req := msg.(*messages.GetSelectedText)
		_ = host.writer.Write(&messages.SelectedTextResponse{
			RequestRef: messages.RequestRef{ID: req.RequestID()},
			Text:       "fresh",
		})
	}()

	text, err := client.SelectedText(testContext(t))
	if err != nil {
		t.Fatalf("SelectedText failed after stale response: %v", err)
	}
	if text != "fresh" {
		t.Errorf("expected %q, got %q", "fresh", text)
	}

	found := false
	for _, entry := range hook.AllEntries() {
		if entry.Message == "response with no pending request" {
			found = true
			if entry.Data["request_id"] != "req_9_deadbeef" {
				t.Errorf("unexpected request_id field: %v", entry.Data["request_id"])
			}
		}
	}
	if !found {
		t.Error("stale response was not logged")
	}
}

func TestSendFireAndForget(t *testing.T) {
	client, host := newTestSession(t)

	go func() {
		if err := client.Send(&messages.Beep{}); err != nil {
			t.Errorf("Send failed: %v", err)
		}
	}()

	msg := host.next(t)
	if msg.Type() != "beep" {
		t.Fatalf("expected beep, got %s", msg.Type())
	}
}

func TestCloseFailsPendingRequests(t *testing.T) {
	client, host := newTestSession(t)

	errCh := make(chan error, 1)
	go func() {
		_, err := client.WindowBounds(context.Background())
		errCh <- err
	}()

	// Consume the request so the call is parked in its select.
	host.next(t)

	if err := client.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	err := <-errCh
	if !kiterrs.IsCode(err, kiterrs.ErrCodeSessionClosed) {
		t.Fatalf("expected session_closed, got %v", err)
	}

	if err := client.Send(&messages.Beep{}); err == nil {
		t.Error("Send after Close should fail")
	}
}

func TestDoneOnEOF(t *testing.T) {
	inR, inW := io.Pipe()
	outR, outW := io.Pipe()
	t.Cleanup(func() {
		_ = outR.Close()
		_ = outW.Close()
	})

	client := NewClient(inR, outW)

	_ = inW.Close()

	select {
	case <-client.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Done never closed after EOF")
	}

	if err := client.Err(); err != nil {
		t.Errorf("clean EOF should leave Err nil, got %v", err)
	}
}
