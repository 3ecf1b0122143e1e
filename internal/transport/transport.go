// Package transport owns the realtime session connection. It exposes a
// small typed event surface so the controller and dispatcher never touch
// the underlying SDK: every server message is translated into an Event and
// delivered through a channel in arrival order.
package transport

import (
	"context"

	"google.golang.org/genai"
)

// Status describes the connection lifecycle.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusConnecting Status = "connecting"
	StatusConnected  Status = "connected"
	StatusClosed     Status = "closed"
)

// EventKind discriminates the Event union.
type EventKind int

const (
	EventOpen EventKind = iota
	EventSetupComplete
	EventClose
	EventInterrupted
	EventAudio
	EventToolCall
	EventText
	EventGenerationComplete
)

// String returns the event kind name for logging.
func (k EventKind) String() string {
	switch k {
	case EventOpen:
		return "open"
	case EventSetupComplete:
		return "setupcomplete"
	case EventClose:
		return "close"
	case EventInterrupted:
		return "interrupted"
	case EventAudio:
		return "audio"
	case EventToolCall:
		return "toolcall"
	case EventText:
		return "text"
	case EventGenerationComplete:
		return "generationcomplete"
	default:
		return "unknown"
	}
}

// FunctionCall is a model-issued tool invocation.
type FunctionCall struct {
	ID   string
	Name string
	Args map[string]any
}

// FunctionResponse answers one FunctionCall. Response carries the result
// payload under the "result" key.
type FunctionResponse struct {
	ID       string
	Name     string
	Response map[string]any
}

// CloseEvent carries the close code and optional reason text. Code 1000 is
// a normal, intentional closure; anything else is abnormal.
type CloseEvent struct {
	Code   int
	Reason string
}

// Normal reports whether the closure was intentional.
func (c CloseEvent) Normal() bool { return c.Code == 1000 }

// TextEvent is a fragment of streamed agent text.
type TextEvent struct {
	Content string
	Final   bool
}

// Event is the tagged union delivered by a Transport. Kind selects which
// payload field is set.
type Event struct {
	Kind     EventKind
	Close    *CloseEvent
	Audio    []byte
	ToolCall []FunctionCall
	Text     *TextEvent
}

// Config is the active session configuration.
type Config struct {
	Model        string
	Voice        string
	SystemPrompt string
	Declarations []*genai.FunctionDeclaration
}

// Transport owns one realtime connection at a time.
type Transport interface {
	// Connect tears down any existing session and opens a new one with
	// cfg. Connect errors propagate to the caller.
	Connect(ctx context.Context, cfg Config) error

	// Disconnect closes the session. Idempotent.
	Disconnect()

	// Status reports the current connection status.
	Status() Status

	// SendRealtimeText streams user text into the session.
	SendRealtimeText(text string) error

	// SendToolResponse sends one batch of tool responses in a single
	// message.
	SendToolResponse(responses []FunctionResponse) error

	// Events returns the event stream. The channel is closed when the
	// session ends; a Close event is always delivered first.
	Events() <-chan Event
}
