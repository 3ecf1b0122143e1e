package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasis-voice/oasis/internal/conversation"
	"github.com/oasis-voice/oasis/internal/state"
)

func TestUpdateClientProfile(t *testing.T) {
	tc := newTestContext()

	result, err := updateClientProfile(context.Background(), tc, map[string]any{
		"fieldName":  "budget",
		"fieldValue": "AED 2M",
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, "AED 2M", tc.Profile.Get(state.FieldBudget))

	turns := tc.Log.Turns()
	require.Len(t, turns, 1)
	assert.Equal(t, conversation.RoleSystem, turns[0].Role)
	assert.Equal(t, `Client profile updated: **budget** = "AED 2M"`, turns[0].Text)
}

func TestUpdateClientProfileInvalidField(t *testing.T) {
	tc := newTestContext()

	result, err := updateClientProfile(context.Background(), tc, map[string]any{
		"fieldName":  "favoriteColor",
		"fieldValue": "blue",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "Invalid field name or value")
	assert.Empty(t, tc.Profile.All())
	assert.Empty(t, tc.Log.Turns())
}

func TestUpdateClientProfileMissingValue(t *testing.T) {
	tc := newTestContext()

	result, err := updateClientProfile(context.Background(), tc, map[string]any{
		"fieldName": "budget",
	})
	require.NoError(t, err)
	assert.Contains(t, result, "Invalid field name or value")
	assert.Empty(t, tc.Profile.All())
}

func TestUpdateClientProfileCoercesValue(t *testing.T) {
	tc := newTestContext()

	result, err := updateClientProfile(context.Background(), tc, map[string]any{
		"fieldName":  "isMarried",
		"fieldValue": true,
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, "true", tc.Profile.Get(state.FieldIsMarried))
}
