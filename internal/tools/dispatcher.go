package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oasis-voice/oasis/internal/conversation"
	"github.com/oasis-voice/oasis/internal/transport"
)

// backgroundToolName marks the one tool whose batches run silently,
// without the UI's awaiting-response indicator.
const backgroundToolName = "updateClientProfile"

// Responder sends one batch of tool responses back over the transport.
type Responder interface {
	SendToolResponse(responses []transport.FunctionResponse) error
}

// Dispatcher executes tool-call batches. Each call runs in isolation: a
// failing or panicking implementation yields a failure-string response and
// never aborts its siblings. Responses preserve request order, one per
// request.
type Dispatcher struct {
	registry Registry
	tools    *Context
}

// NewDispatcher builds a dispatcher over the given registry and shared
// tool context.
func NewDispatcher(registry Registry, tc *Context) *Dispatcher {
	return &Dispatcher{registry: registry, tools: tc}
}

// Dispatch runs a batch of tool calls and sends the aggregated responses
// through responder in a single message.
func (d *Dispatcher) Dispatch(ctx context.Context, calls []transport.FunctionCall, responder Responder) {
	if len(calls) == 0 {
		return
	}

	background := true
	for _, call := range calls {
		if call.Name != backgroundToolName {
			background = false
			break
		}
	}

	if !background {
		d.tools.Log.SetAwaitingToolResponse(true)
		defer d.tools.Log.SetAwaitingToolResponse(false)
	}

	responses := make([]transport.FunctionResponse, 0, len(calls))
	for _, call := range calls {
		d.tools.Log.AddTurn(conversation.Turn{
			Role:             conversation.RoleSystem,
			Text:             fmt.Sprintf("Triggering function call: **%s**\n```json\n%s\n```", call.Name, prettyJSON(call.Args)),
			IsFinal:          true,
			ToolCallRequest:  []transport.FunctionCall{call},
		})

		result := d.run(ctx, call)
		responses = append(responses, transport.FunctionResponse{
			ID:       call.ID,
			Name:     call.Name,
			Response: map[string]any{"result": result},
		})
	}

	d.tools.Log.AddTurn(conversation.Turn{
		Role:             conversation.RoleSystem,
		Text:             fmt.Sprintf("Function call response:\n```json\n%s\n```", prettyJSON(responses)),
		IsFinal:          true,
		ToolCallResponse: responses,
	})

	if err := responder.SendToolResponse(responses); err != nil {
		d.tools.Logger.Error("failed to send tool responses", "error", err)
	}
}

// run executes one call, converting every failure mode into a result
// value.
func (d *Dispatcher) run(ctx context.Context, call transport.FunctionCall) (result any) {
	defer func() {
		if r := recover(); r != nil {
			d.tools.Logger.Error("tool panicked", "tool", call.Name, "panic", r)
			result = d.failure(call.Name)
		}
	}()

	handler, ok := d.registry[call.Name]
	if !ok {
		msg := fmt.Sprintf("Unknown tool called: %s.", call.Name)
		d.tools.Logger.Warn(msg)
		return msg
	}

	out, err := handler(ctx, d.tools, call.Args)
	if err != nil {
		d.tools.Logger.Error("tool failed", "tool", call.Name, "error", err)
		return d.failure(call.Name)
	}
	return out
}

func (d *Dispatcher) failure(name string) string {
	msg := fmt.Sprintf("Error executing tool %s.", name)
	d.tools.Log.AddTurn(conversation.Turn{
		Role:    conversation.RoleSystem,
		Text:    msg,
		IsFinal: true,
	})
	return msg
}

func prettyJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
