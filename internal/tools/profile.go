package tools

import (
	"context"
	"fmt"

	"github.com/oasis-voice/oasis/internal/conversation"
	"github.com/oasis-voice/oasis/internal/state"
)

func updateClientProfile(_ context.Context, tc *Context, args map[string]any) (any, error) {
	fieldName, okF := stringArg(args, "fieldName")
	fieldValue, hasV := args["fieldValue"]
	if !okF || !state.ValidProfileField(fieldName) || !hasV {
		msg := fmt.Sprintf("Invalid field name or value provided for client profile. Field: %v, Value: %v",
			args["fieldName"], fieldValue)
		tc.Logger.Warn(msg)
		return msg, nil
	}

	value := fmt.Sprintf("%v", fieldValue)
	if err := tc.Profile.Update(state.ProfileField(fieldName), value); err != nil {
		return err.Error(), nil
	}

	// System channel only: background tools are never surfaced as agent
	// messages.
	tc.Log.AddTurn(conversation.Turn{
		Role:    conversation.RoleSystem,
		Text:    fmt.Sprintf("Client profile updated: **%s** = %q", fieldName, value),
		IsFinal: true,
	})

	return "ok", nil
}
