// Package conversation maintains the ordered conversation log: user, agent
// and system turns, with incremental merge of streamed agent text.
//
// The log is an owned state container injected into the controller and the
// tool dispatcher; it is safe for concurrent use.
package conversation

import (
	"sync"
	"time"

	"github.com/oasis-voice/oasis/internal/grounding"
	"github.com/oasis-voice/oasis/internal/transport"
)

// Role attributes a turn to its author.
type Role string

const (
	RoleUser   Role = "user"
	RoleAgent  Role = "agent"
	RoleSystem Role = "system"
)

// Turn is one message-sized unit of dialogue. Text on a non-final agent
// turn is append-only: streamed fragments accumulate until the turn is
// finalized.
type Turn struct {
	Timestamp time.Time
	Role      Role
	Text      string
	IsFinal   bool

	// ToolCallRequest/ToolCallResponse record dispatched batches on
	// system turns, for transparency rather than for the model.
	ToolCallRequest  []transport.FunctionCall
	ToolCallResponse []transport.FunctionResponse

	// GroundingChunks and GroundedResponse hold grounding data attached
	// to agent turns for UI display.
	GroundingChunks  []grounding.Chunk
	GroundedResponse *grounding.Response
}

// AgentPatch is the merge payload for streamed agent content. Text
// concatenates and grounding chunks accumulate, while IsFinal and
// GroundedResponse are point-in-time facts that overwrite.
type AgentPatch struct {
	Text             string
	IsFinal          bool
	GroundingChunks  []grounding.Chunk
	GroundedResponse *grounding.Response
}

// Log is the ordered, append/merge store of conversation turns.
//
// The zero value is not useful; use NewLog.
type Log struct {
	mu       sync.RWMutex
	turns    []Turn
	awaiting bool

	// onAwaitingChange, when set, is invoked (outside the lock) whenever
	// the awaiting-tool-response indicator flips. The UI subscribes here.
	onAwaitingChange func(bool)

	// onTurn, when set, receives every appended turn and every finalized
	// agent turn, outside the lock.
	onTurn func(Turn)
}

// NewLog creates an empty conversation log.
func NewLog() *Log {
	return &Log{}
}

// AddTurn appends a turn stamped with the current time.
func (l *Log) AddTurn(turn Turn) {
	l.mu.Lock()
	turn.Timestamp = time.Now()
	l.turns = append(l.turns, turn)
	notify := l.onTurn
	l.mu.Unlock()

	if notify != nil {
		notify(turn)
	}
}

// UpdateLastTurn applies update to the most recent turn. No-op on an empty
// log.
func (l *Log) UpdateLastTurn(update func(*Turn)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.turns) == 0 {
		return
	}
	update(&l.turns[len(l.turns)-1])
}

// MergeIntoLastAgentTurn merges patch into the most recent agent turn,
// scanning from the end. When no agent turn exists it falls back to
// appending a new one built from the patch.
func (l *Log) MergeIntoLastAgentTurn(patch AgentPatch) {
	l.mu.Lock()

	var merged Turn
	found := false
	for i := len(l.turns) - 1; i >= 0; i-- {
		if l.turns[i].Role != RoleAgent {
			continue
		}
		t := &l.turns[i]
		t.Text += patch.Text
		t.IsFinal = patch.IsFinal
		t.GroundingChunks = append(t.GroundingChunks, patch.GroundingChunks...)
		if patch.GroundedResponse != nil {
			t.GroundedResponse = patch.GroundedResponse
		}
		merged = *t
		found = true
		break
	}

	if !found {
		merged = Turn{
			Timestamp:        time.Now(),
			Role:             RoleAgent,
			Text:             patch.Text,
			IsFinal:          patch.IsFinal,
			GroundingChunks:  patch.GroundingChunks,
			GroundedResponse: patch.GroundedResponse,
		}
		l.turns = append(l.turns, merged)
	}

	notify := l.onTurn
	l.mu.Unlock()

	if notify != nil && merged.IsFinal {
		notify(merged)
	}
}

// ClearTurns empties the log. Used on session reset, not on resume.
func (l *Log) ClearTurns() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.turns = nil
}

// Turns returns a snapshot copy of all turns.
func (l *Log) Turns() []Turn {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Turn, len(l.turns))
	copy(out, l.turns)
	return out
}

// LastTurn returns the most recent turn and whether one exists.
func (l *Log) LastTurn() (Turn, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if len(l.turns) == 0 {
		return Turn{}, false
	}
	return l.turns[len(l.turns)-1], true
}

// SetAwaitingToolResponse flips the UI "awaiting response" indicator.
// Background tool batches never touch this.
func (l *Log) SetAwaitingToolResponse(awaiting bool) {
	l.mu.Lock()
	changed := l.awaiting != awaiting
	l.awaiting = awaiting
	notify := l.onAwaitingChange
	l.mu.Unlock()

	if changed && notify != nil {
		notify(awaiting)
	}
}

// AwaitingToolResponse reports the indicator state.
func (l *Log) AwaitingToolResponse() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.awaiting
}

// OnAwaitingChange registers the indicator subscriber. Only one subscriber
// is supported; the UI owns it.
func (l *Log) OnAwaitingChange(fn func(bool)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onAwaitingChange = fn
}

// OnTurn registers the turn subscriber: it receives appended turns and
// finalized agent merges. Only one subscriber is supported.
func (l *Log) OnTurn(fn func(Turn)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onTurn = fn
}
