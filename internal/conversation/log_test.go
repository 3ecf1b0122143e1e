package conversation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasis-voice/oasis/internal/grounding"
)

func TestAddTurn_StampsTimestamp(t *testing.T) {
	l := NewLog()
	l.AddTurn(Turn{Role: RoleUser, Text: "hello", IsFinal: true})

	turns := l.Turns()
	require.Len(t, turns, 1)
	assert.False(t, turns[0].Timestamp.IsZero())
	assert.Equal(t, RoleUser, turns[0].Role)
}

func TestUpdateLastTurn_EmptyLogIsNoop(t *testing.T) {
	l := NewLog()
	l.UpdateLastTurn(func(turn *Turn) { turn.IsFinal = true })
	assert.Empty(t, l.Turns())
}

func TestUpdateLastTurn_PatchesMostRecent(t *testing.T) {
	l := NewLog()
	l.AddTurn(Turn{Role: RoleAgent, Text: "thinking"})
	l.UpdateLastTurn(func(turn *Turn) { turn.IsFinal = true })

	last, ok := l.LastTurn()
	require.True(t, ok)
	assert.True(t, last.IsFinal)
	assert.Equal(t, "thinking", last.Text)
}

func TestMergeIntoLastAgentTurn_StreamedFragments(t *testing.T) {
	l := NewLog()

	l.MergeIntoLastAgentTurn(AgentPatch{Text: "Hel", IsFinal: false})
	l.MergeIntoLastAgentTurn(AgentPatch{Text: "lo", IsFinal: true})

	turns := l.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, RoleAgent, turns[0].Role)
	assert.Equal(t, "Hello", turns[0].Text)
	assert.True(t, turns[0].IsFinal)
}

func TestMergeIntoLastAgentTurn_SkipsTrailingSystemTurns(t *testing.T) {
	l := NewLog()
	l.AddTurn(Turn{Role: RoleAgent, Text: "Maple at Dubai Hills has "})
	l.AddTurn(Turn{Role: RoleSystem, Text: "Triggering function call", IsFinal: true})

	l.MergeIntoLastAgentTurn(AgentPatch{Text: "a golf course.", IsFinal: true})

	turns := l.Turns()
	require.Len(t, turns, 2)
	assert.Equal(t, "Maple at Dubai Hills has a golf course.", turns[0].Text)
	assert.Equal(t, RoleSystem, turns[1].Role)
}

func TestMergeIntoLastAgentTurn_AccumulatesChunksOverwritesResponse(t *testing.T) {
	l := NewLog()
	first := &grounding.Response{Text: "first"}
	second := &grounding.Response{Text: "second"}

	l.MergeIntoLastAgentTurn(AgentPatch{
		Text:             "a",
		GroundingChunks:  []grounding.Chunk{{PlaceID: "p1"}},
		GroundedResponse: first,
	})
	l.MergeIntoLastAgentTurn(AgentPatch{
		Text:            "b",
		GroundingChunks: []grounding.Chunk{{PlaceID: "p2"}},
	})
	l.MergeIntoLastAgentTurn(AgentPatch{
		Text:             "c",
		IsFinal:          true,
		GroundedResponse: second,
	})

	turns := l.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, "abc", turns[0].Text)
	require.Len(t, turns[0].GroundingChunks, 2)
	// The grounded response is a point-in-time fact: latest wins.
	assert.Same(t, second, turns[0].GroundedResponse)
}

func TestClearTurns(t *testing.T) {
	l := NewLog()
	l.AddTurn(Turn{Role: RoleUser, Text: "hi"})
	l.AddTurn(Turn{Role: RoleAgent, Text: "hello"})

	l.ClearTurns()

	assert.Empty(t, l.Turns())
	_, ok := l.LastTurn()
	assert.False(t, ok)
}

func TestAwaitingToolResponse_NotifiesOnChange(t *testing.T) {
	l := NewLog()
	var seen []bool
	l.OnAwaitingChange(func(v bool) { seen = append(seen, v) })

	l.SetAwaitingToolResponse(true)
	l.SetAwaitingToolResponse(true) // no change, no notification
	l.SetAwaitingToolResponse(false)

	assert.True(t, l.AwaitingToolResponse() == false)
	assert.Equal(t, []bool{true, false}, seen)
}

func TestOnTurnNotifications(t *testing.T) {
	l := NewLog()
	var seen []string
	l.OnTurn(func(turn Turn) {
		seen = append(seen, string(turn.Role)+":"+turn.Text)
	})

	l.AddTurn(Turn{Role: RoleUser, Text: "hi", IsFinal: true})
	l.MergeIntoLastAgentTurn(AgentPatch{Text: "Hel"})
	l.MergeIntoLastAgentTurn(AgentPatch{Text: "lo", IsFinal: true})

	// Streaming fragments stay silent until the turn is finalized.
	assert.Equal(t, []string{"user:hi", "agent:Hello"}, seen)
}
