// Package controller wires the realtime transport to the conversation log,
// the tool dispatcher and the audio sink, and owns the connect/disconnect
// policy including resume after an abnormal close.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/oasis-voice/oasis/internal/conversation"
	"github.com/oasis-voice/oasis/internal/log"
	"github.com/oasis-voice/oasis/internal/state"
	"github.com/oasis-voice/oasis/internal/tools"
	"github.com/oasis-voice/oasis/internal/transport"
)

// ErrNoConfig is returned by Connect before a session configuration has
// been set.
var ErrNoConfig = errors.New("session configuration has not been set")

// AudioSink plays streamed PCM audio. Stop discards any buffered audio
// immediately; it is called on interruption and on session close.
type AudioSink interface {
	Play(pcm []byte)
	Stop()
}

// Options bundles the controller's collaborators.
type Options struct {
	Transport  transport.Transport
	Dispatcher *tools.Dispatcher
	Tools      *tools.Context
	Log        *conversation.Log
	Map        *state.Map
	Profile    *state.Profile
	Audio      AudioSink
	Logger     log.Logger
}

// Controller is the top-level session orchestrator. One controller owns at
// most one live session at a time.
type Controller struct {
	transport  transport.Transport
	dispatcher *tools.Dispatcher
	tools      *tools.Context
	log        *conversation.Log
	mapState   *state.Map
	profile    *state.Profile
	audio      AudioSink
	logger     log.Logger

	mu          sync.Mutex
	cfg         transport.Config
	configSet   bool
	connected   bool
	sessionLost bool

	wg sync.WaitGroup
}

// New creates a controller from its collaborators.
func New(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.NewNop()
	}
	return &Controller{
		transport:  opts.Transport,
		dispatcher: opts.Dispatcher,
		tools:      opts.Tools,
		log:        opts.Log,
		mapState:   opts.Map,
		profile:    opts.Profile,
		audio:      opts.Audio,
		logger:     logger,
	}
}

// SetConfig sets the session configuration used by subsequent connects.
func (c *Controller) SetConfig(cfg transport.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
	c.configSet = true
}

// Connect opens a new session. After a normal close the conversation log,
// map markers and client profile are reset; after an abnormal close they
// are preserved so the user resumes where the connection dropped. Any
// existing session is torn down first.
func (c *Controller) Connect(ctx context.Context) error {
	c.mu.Lock()
	if !c.configSet {
		c.mu.Unlock()
		return ErrNoConfig
	}
	resume := c.sessionLost
	c.sessionLost = false
	cfg := c.cfg
	c.mu.Unlock()

	if !resume {
		c.log.ClearTurns()
		c.mapState.ClearMarkers()
		c.profile.Reset()
	}

	c.transport.Disconnect()
	c.wg.Wait()

	if err := c.transport.Connect(ctx, cfg); err != nil {
		return fmt.Errorf("connect session: %w", err)
	}

	c.wg.Add(1)
	go c.eventLoop(ctx, c.transport.Events())
	return nil
}

// Disconnect closes the session. Safe to call when already disconnected.
func (c *Controller) Disconnect() {
	c.transport.Disconnect()
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
}

// Close tears the controller down. A still-connected transport gets a
// graceful disconnect first so the server never sees an abrupt closure.
func (c *Controller) Close() {
	if c.transport.Status() == transport.StatusConnected {
		c.transport.Disconnect()
	}
	c.wg.Wait()
}

// Connected reports whether the session is currently open.
func (c *Controller) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// SessionLost reports whether the last session ended abnormally and the
// next Connect will resume rather than reset.
func (c *Controller) SessionLost() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionLost
}

func (c *Controller) eventLoop(ctx context.Context, events <-chan transport.Event) {
	defer c.wg.Done()

	for ev := range events {
		switch ev.Kind {
		case transport.EventOpen:
			c.mu.Lock()
			c.connected = true
			c.mu.Unlock()
			c.logger.Info("session opened")

		case transport.EventSetupComplete:
			// Kick the model into its greeting once setup is confirmed.
			if err := c.transport.SendRealtimeText("hello"); err != nil {
				c.logger.Error("failed to send initial message", "error", err)
			}

		case transport.EventClose:
			c.handleClose(ev.Close)

		case transport.EventInterrupted:
			c.audio.Stop()
			c.log.UpdateLastTurn(func(t *conversation.Turn) {
				if !t.IsFinal {
					t.IsFinal = true
				}
			})

		case transport.EventAudio:
			c.audio.Play(ev.Audio)

		case transport.EventToolCall:
			c.dispatcher.Dispatch(ctx, ev.ToolCall, c.transport)

		case transport.EventText:
			c.handleText(ev.Text)

		case transport.EventGenerationComplete:
			c.logger.Debug("generation complete")
		}
	}
}

func (c *Controller) handleClose(ev *transport.CloseEvent) {
	c.audio.Stop()

	var message string
	if ev == nil || ev.Normal() {
		message = "Session ended. Press 'Play' to start a new session."
	} else {
		reason := ""
		if ev.Reason != "" {
			reason = " Reason: " + ev.Reason
		}
		message = fmt.Sprintf("Connection lost (Code: %d). Your session has been saved. Press 'Play' to reconnect.%s",
			ev.Code, reason)
	}

	c.mu.Lock()
	c.connected = false
	c.sessionLost = ev != nil && !ev.Normal()
	c.mu.Unlock()

	c.log.AddTurn(conversation.Turn{
		Role:    conversation.RoleSystem,
		Text:    message,
		IsFinal: true,
	})
}

// handleText merges a streamed text fragment into the open agent turn. A
// final fragment also carries any grounded response held by the last maps
// tool call, so the UI can render its references with the finished turn.
func (c *Controller) handleText(text *transport.TextEvent) {
	if text == nil {
		return
	}

	patch := conversation.AgentPatch{Text: text.Content, IsFinal: text.Final}
	if text.Final {
		if held := c.tools.TakeGroundedResponse(); held != nil {
			patch.GroundedResponse = held
			patch.GroundingChunks = held.Chunks
		}
	}
	c.log.MergeIntoLastAgentTurn(patch)
}
