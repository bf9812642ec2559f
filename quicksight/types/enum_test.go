package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignmentStatus(t *testing.T) {
	tests := []struct {
		raw     string
		want    AssignmentStatus
		wantErr bool
	}{
		{raw: "ENABLED", want: AssignmentStatusEnabled},
		{raw: "DRAFT", want: AssignmentStatusDraft},
		{raw: "DISABLED", want: AssignmentStatusDisabled},
		{raw: "", wantErr: true},
		{raw: "enabled", wantErr: true},
		{raw: "ARCHIVED", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseAssignmentStatus(tt.raw)
			if tt.wantErr {
				var unrecognized *UnrecognizedEnumError
				require.ErrorAs(t, err, &unrecognized)
				assert.Equal(t, "AssignmentStatus", unrecognized.Enum)
				assert.Equal(t, tt.raw, unrecognized.Value)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnrecognizedEnumError_Message(t *testing.T) {
	_, err := ParseJoinType("")
	assert.EqualError(t, err, "unrecognized JoinType value: empty string")

	_, err = ParseJoinType("CROSS")
	assert.EqualError(t, err, `unrecognized JoinType value: "CROSS"`)
}

func TestEnum_ParseEveryKnownValue(t *testing.T) {
	for _, v := range IngestionErrorType("").Values() {
		got, err := ParseIngestionErrorType(string(v))
		require.NoError(t, err, v)
		assert.Equal(t, v, got)
	}
	assert.Len(t, IngestionErrorType("").Values(), 40)

	for _, v := range DataSourceType("").Values() {
		assert.True(t, v.IsKnown(), v)
	}
}

func TestEnum_UnknownValueKeptOnDecode(t *testing.T) {
	var summary IAMPolicyAssignmentSummary
	err := json.Unmarshal([]byte(`{"AssignmentName":"a1","AssignmentStatus":"SUSPENDED"}`), &summary)
	require.NoError(t, err)

	assert.Equal(t, AssignmentStatus("SUSPENDED"), summary.AssignmentStatus)
	assert.False(t, summary.AssignmentStatus.IsKnown())

	b, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.JSONEq(t, `{"AssignmentName":"a1","AssignmentStatus":"SUSPENDED"}`, string(b))
}

func TestFilterOperator_CaseSensitive(t *testing.T) {
	got, err := ParseFilterOperator("StringEquals")
	require.NoError(t, err)
	assert.Equal(t, FilterOperatorStringEquals, got)

	_, err = ParseFilterOperator("STRING_EQUALS")
	require.Error(t, err)
}
