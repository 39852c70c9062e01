package common_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/K-dessa/VHM-api-sub000/pkg/types/common"
)

func TestID_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, common.NewID().Validate())
	assert.Error(t, common.ID("").Validate())
	assert.Error(t, common.ID("not-a-uuid").Validate())
}

func TestGenerateID_Prefix(t *testing.T) {
	t.Parallel()

	id := common.GenerateID("req")
	assert.Contains(t, id, "req-")

	bare := common.GenerateID("")
	assert.NotContains(t, bare, "-req")
	assert.NoError(t, common.ID(bare).Validate())
}

func TestTimestamp_JSONRoundTrip(t *testing.T) {
	t.Parallel()

	now := common.Timestamp(time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC))
	data, err := json.Marshal(now)
	require.NoError(t, err)

	var back common.Timestamp
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, time.Time(now).Equal(time.Time(back)))
}

func TestTimestamp_UnmarshalAcceptsRFC3339(t *testing.T) {
	t.Parallel()

	var ts common.Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2026-03-14T09:26:53Z"`), &ts))
	assert.Equal(t, 2026, time.Time(ts).Year())
}

func TestNewSuccessResponse(t *testing.T) {
	t.Parallel()

	resp := common.NewSuccessResponse("payload")
	assert.True(t, resp.Success)
	assert.Equal(t, "payload", resp.Data)
	assert.Nil(t, resp.Error)
}

func TestNewErrorResponse(t *testing.T) {
	t.Parallel()

	resp := common.NewErrorResponse("COMMON_002", "bad request")
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "COMMON_002", resp.Error.Code)
	assert.Equal(t, "bad request", resp.Error.Message)
}

//Personal.AI order the ending
