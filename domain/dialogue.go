package domain

import "strings"

// Role identifies who spoke a turn.
type Role string

const (
	AgentRole Role = "agent"
	UserRole  Role = "user"
)

// Verdict is the safety classification of a reply option.
type Verdict string

const (
	VerdictSafe   Verdict = "safe"
	VerdictRisky  Verdict = "risky"
	VerdictUnsafe Verdict = "unsafe"
)

// Turn is one utterance of a simulated conversation. Verdict and Axes are
// filled in by the calling backend's scoring and may be absent.
type Turn struct {
	Role    Role               `json:"role"`
	Text    string             `json:"text"`
	Verdict Verdict            `json:"verdict,omitempty"`
	Axes    map[string]float64 `json:"axes,omitempty"`
}

// Transcript is an ordered conversation history. Order is conversation order
// and must survive into the rendered prompt unchanged.
type Transcript []Turn

// Render serializes the transcript for prompt injection, one "{role}: {text}"
// line per turn. Verdicts and axes stay with the caller; the model never sees
// them.
func (t Transcript) Render() string {
	var b strings.Builder
	for i, turn := range t {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(turn.Role))
		b.WriteString(": ")
		b.WriteString(turn.Text)
	}
	return b.String()
}

// Crime categories the simulation supports. Unknown categories fall back to
// CategoryRentalFraud when looking up a persona.
const (
	CategoryVoicePhishing     = "보이스피싱"
	CategoryRentalFraud       = "전세사기"
	CategoryFamilyImpersonate = "가족/지인 사칭"
	CategoryUsedGoodsFraud    = "중고거래 사기"
	CategoryRomanceScam       = "로맨스 스캠"
)
