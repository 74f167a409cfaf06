package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTurnNumberUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want TurnNumber
	}{
		{"bare number", `{"turn_number": 4}`, 4},
		{"quoted number", `{"turn_number": "4"}`, 4},
		{"null", `{"turn_number": null}`, 0},
		{"free text", `{"turn_number": "네 번째 턴"}`, 0},
		{"empty string", `{"turn_number": ""}`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m CriticalMoment
			require.NoError(t, json.Unmarshal([]byte(tc.in), &m))
			assert.Equal(t, tc.want, m.TurnNumber)
		})
	}
}

func TestTurnNumberMarshalsAsNumber(t *testing.T) {
	out, err := json.Marshal(CriticalMoment{TurnNumber: 7, UserMessage: "x"})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"turn_number":7`)
}

func TestPremiumReportJSONShape(t *testing.T) {
	report := PremiumReport{
		OverallEvaluation: &OverallEvaluation{Grade: GradeB, Summary: "양호"},
		CriticalMoments:   []CriticalMoment{},
		RecommendedAction: "송금 전 반드시 확인",
		References:        []string{},
	}

	out, err := json.Marshal(report)
	require.NoError(t, err)

	// Empty slices must serialize as [], not null; the caller iterates them
	// without nil checks.
	assert.Contains(t, string(out), `"critical_moments":[]`)
	assert.Contains(t, string(out), `"references":[]`)
	assert.NotContains(t, string(out), `"error"`)
}
