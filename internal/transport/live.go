package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gorilla/websocket"
	"google.golang.org/genai"

	"github.com/oasis-voice/oasis/internal/log"
)

// eventBuffer sizes the event channel. Audio chunks arrive faster than the
// consumer drains during tool dispatch, so leave headroom.
const eventBuffer = 256

// abnormalCloseCode is reported when the connection drops without a close
// frame (matches the websocket "abnormal closure" code).
const abnormalCloseCode = 1006

// Live is a Transport backed by the Gemini Live API.
//
// Live is safe for concurrent use: Connect/Disconnect/Send* may be called
// from the controller goroutine while the receive goroutine translates
// server messages into Events.
type Live struct {
	client *genai.Client
	logger log.Logger

	mu            sync.Mutex
	session       *genai.Session
	status        Status
	events        chan Event
	closed        bool
	disconnecting bool
}

// NewLive creates a live transport. The client is shared with the grounding
// providers; the transport only uses its Live surface.
func NewLive(client *genai.Client, logger log.Logger) (*Live, error) {
	if client == nil {
		return nil, fmt.Errorf("client is required")
	}
	if logger == nil {
		logger = log.NewNop()
	}
	return &Live{
		client: client,
		logger: logger,
		status: StatusIdle,
		events: make(chan Event, eventBuffer),
	}, nil
}

// Connect opens a new session, tearing down any existing one first.
func (l *Live) Connect(ctx context.Context, cfg Config) error {
	l.Disconnect()

	l.mu.Lock()
	l.status = StatusConnecting
	l.events = make(chan Event, eventBuffer)
	l.closed = false
	l.disconnecting = false
	l.mu.Unlock()

	connectCfg := &genai.LiveConnectConfig{
		ResponseModalities: []genai.Modality{genai.ModalityAudio},
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: cfg.SystemPrompt}},
		},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: cfg.Voice},
			},
		},
		OutputAudioTranscription: &genai.AudioTranscriptionConfig{},
	}
	if len(cfg.Declarations) > 0 {
		connectCfg.Tools = []*genai.Tool{{FunctionDeclarations: cfg.Declarations}}
	}

	session, err := l.client.Live.Connect(ctx, cfg.Model, connectCfg)
	if err != nil {
		l.mu.Lock()
		l.status = StatusClosed
		l.mu.Unlock()
		return fmt.Errorf("connecting live session: %w", err)
	}

	l.mu.Lock()
	l.session = session
	l.status = StatusConnected
	events := l.events
	l.mu.Unlock()

	l.logger.Info("live session connected", "model", cfg.Model, "voice", cfg.Voice)
	events <- Event{Kind: EventOpen}

	go l.receiveLoop(session, events)
	return nil
}

// receiveLoop translates server messages into Events until the session
// ends, then emits the Close event and closes the channel.
func (l *Live) receiveLoop(session *genai.Session, events chan Event) {
	for {
		msg, err := session.Receive()
		if err != nil {
			l.finish(session, events, err)
			return
		}
		for _, ev := range translate(msg) {
			events <- ev
		}
	}
}

// translate maps one server message onto zero or more Events.
func translate(msg *genai.LiveServerMessage) []Event {
	var out []Event

	if msg.SetupComplete != nil {
		out = append(out, Event{Kind: EventSetupComplete})
	}

	if sc := msg.ServerContent; sc != nil {
		if sc.Interrupted {
			out = append(out, Event{Kind: EventInterrupted})
		}
		if sc.OutputTranscription != nil && sc.OutputTranscription.Text != "" {
			out = append(out, Event{Kind: EventText, Text: &TextEvent{
				Content: sc.OutputTranscription.Text,
			}})
		}
		if sc.ModelTurn != nil {
			for _, part := range sc.ModelTurn.Parts {
				if part.InlineData != nil && len(part.InlineData.Data) > 0 {
					out = append(out, Event{Kind: EventAudio, Audio: part.InlineData.Data})
				}
			}
		}
		if sc.TurnComplete {
			out = append(out, Event{Kind: EventText, Text: &TextEvent{Final: true}})
		}
		if sc.GenerationComplete {
			out = append(out, Event{Kind: EventGenerationComplete})
		}
	}

	if tc := msg.ToolCall; tc != nil && len(tc.FunctionCalls) > 0 {
		calls := make([]FunctionCall, 0, len(tc.FunctionCalls))
		for _, fc := range tc.FunctionCalls {
			calls = append(calls, FunctionCall{ID: fc.ID, Name: fc.Name, Args: fc.Args})
		}
		out = append(out, Event{Kind: EventToolCall, ToolCall: calls})
	}

	return out
}

// finish classifies the terminal error, emits Close and closes the stream.
func (l *Live) finish(session *genai.Session, events chan Event, cause error) {
	l.mu.Lock()
	intentional := l.disconnecting
	if l.session == session {
		l.session = nil
		l.status = StatusClosed
	}
	alreadyClosed := l.closed
	l.closed = true
	l.mu.Unlock()

	closeEvent := CloseEvent{Code: 1000}
	var ce *websocket.CloseError
	switch {
	case intentional:
		// Local Disconnect; surfaces as a normal closure.
	case errors.As(cause, &ce):
		closeEvent = CloseEvent{Code: ce.Code, Reason: ce.Text}
	case errors.Is(cause, io.EOF):
		// Server ended the stream without a close frame.
		closeEvent = CloseEvent{Code: abnormalCloseCode}
	default:
		closeEvent = CloseEvent{Code: abnormalCloseCode, Reason: cause.Error()}
	}

	if alreadyClosed {
		return
	}

	l.logger.Info("live session closed", "code", closeEvent.Code, "reason", closeEvent.Reason)
	events <- Event{Kind: EventClose, Close: &closeEvent}
	close(events)
}

// Disconnect closes the current session. Safe to call repeatedly and when
// never connected.
func (l *Live) Disconnect() {
	l.mu.Lock()
	session := l.session
	l.session = nil
	if session != nil {
		l.disconnecting = true
	}
	if l.status == StatusConnected || l.status == StatusConnecting {
		l.status = StatusClosed
	}
	l.mu.Unlock()

	if session != nil {
		// The receive goroutine observes the closed connection and
		// finishes with a normal close.
		if err := session.Close(); err != nil {
			l.logger.Debug("closing live session", "error", err)
		}
	}
}

// Status reports the connection status.
func (l *Live) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.status
}

// SendRealtimeText streams user text into the session.
func (l *Live) SendRealtimeText(text string) error {
	session := l.currentSession()
	if session == nil {
		return fmt.Errorf("send text: not connected")
	}
	if err := session.SendRealtimeInput(genai.LiveRealtimeInput{Text: text}); err != nil {
		return fmt.Errorf("sending realtime text: %w", err)
	}
	return nil
}

// SendToolResponse sends one tool-response batch as a single message.
func (l *Live) SendToolResponse(responses []FunctionResponse) error {
	session := l.currentSession()
	if session == nil {
		return fmt.Errorf("send tool response: not connected")
	}

	out := make([]*genai.FunctionResponse, 0, len(responses))
	for _, r := range responses {
		out = append(out, &genai.FunctionResponse{ID: r.ID, Name: r.Name, Response: r.Response})
	}
	if err := session.SendToolResponse(genai.LiveToolResponseInput{FunctionResponses: out}); err != nil {
		return fmt.Errorf("sending tool response: %w", err)
	}
	return nil
}

// Events returns the current event stream.
func (l *Live) Events() <-chan Event {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.events
}

func (l *Live) currentSession() *genai.Session {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.session
}

// Ensure Live satisfies Transport.
var _ Transport = (*Live)(nil)
