package wsstream

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/parse"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/adapters/stdio"
	"github.com/zacjones93/script-kit-next-sub004/pkg/kit/messages"
)

// startEcho runs a host-side endpoint that hands each upgraded
// connection to fn and returns the ws:// URL to reach it.
func startEcho(t *testing.T, fn func(*Conn)) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrade(w, r)
		if err != nil {
			t.Errorf("Upgrade: %v", err)

			return
		}

		fn(conn)
	}))
	t.Cleanup(server.Close)

	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestResilienceScenarioOverWebsocket(t *testing.T) {
	received := make(chan messages.Message, 4)
	issues := make(chan *parse.ParseIssue, 4)
	done := make(chan struct{})

	url := startEcho(t, func(conn *Conn) {
		defer close(done)

		reader := stdio.NewReader(conn, parse.NewStandardCodec(),
			stdio.WithIssueHandler(func(issue *parse.ParseIssue) {
				issues <- issue
			}))

		for {
			msg, err := reader.NextLenient()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				t.Errorf("NextLenient: %v", err)

				return
			}
			received <- msg
		}
	})

	conn, err := Dial(context.Background(), url)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}

	writer := stdio.NewWriter(conn)
	stream := []messages.Message{&messages.Beep{}, &messages.Show{}}

	// Interleave unknown traffic with known, exactly like a newer
	// script talking to an older host.
	if _, err := conn.Write([]byte(`{"type":"unknownType","id":"1"}` + "\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := writer.Write(stream[0]); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := conn.Write([]byte(`{"type":"anotherUnknown"}` + "\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := writer.Write(stream[1]); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := conn.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	<-done
	close(received)
	close(issues)

	var deliveredTypes []string
	for msg := range received {
		deliveredTypes = append(deliveredTypes, msg.Type())
	}
	if len(deliveredTypes) != 2 || deliveredTypes[0] != "beep" || deliveredTypes[1] != "show" {
		t.Errorf("delivered %v, want [beep show]", deliveredTypes)
	}

	var issueCount int
	for issue := range issues {
		issueCount++
		if issue.Kind != parse.IssueUnknownType {
			t.Errorf("issue kind = %s, want unknown type", issue.Kind)
		}
	}
	if issueCount != 2 {
		t.Errorf("saw %d issues, want 2", issueCount)
	}
}

func TestRecordSpanningFrames(t *testing.T) {
	got := make(chan messages.Message, 1)

	url := startEcho(t, func(conn *Conn) {
		reader := stdio.NewReader(conn, parse.NewStandardCodec())

		msg, err := reader.Next()
		if err != nil {
			t.Errorf("Next: %v", err)

			return
		}
		got <- msg
	})

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer ws.Close()

	// One record split across three frames must reassemble.
	record := `{"type":"say","text":"spanning frames"}` + "\n"
	for _, part := range []string{record[:10], record[10:25], record[25:]} {
		if err := ws.WriteMessage(websocket.TextMessage, []byte(part)); err != nil {
			t.Fatalf("WriteMessage: %v", err)
		}
	}

	msg := <-got
	say, ok := msg.(*messages.Say)
	if !ok {
		t.Fatalf("got %T, want *messages.Say", msg)
	}
	if say.Text != "spanning frames" {
		t.Errorf("Text = %q", say.Text)
	}
}

func TestFrameCarryingSeveralRecords(t *testing.T) {
	types := make(chan string, 2)

	url := startEcho(t, func(conn *Conn) {
		reader := stdio.NewReader(conn, parse.NewStandardCodec())

		for i := 0; i < 2; i++ {
			msg, err := reader.Next()
			if err != nil {
				t.Errorf("Next: %v", err)

				return
			}
			types <- msg.Type()
		}
	})

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer ws.Close()

	frame := `{"type":"beep"}` + "\n" + `{"type":"hide"}` + "\n"
	if err := ws.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		t.Fatalf("WriteMessage: %v", err)
	}

	if first := <-types; first != "beep" {
		t.Errorf("first = %q, want beep", first)
	}
	if second := <-types; second != "hide" {
		t.Errorf("second = %q, want hide", second)
	}
}
