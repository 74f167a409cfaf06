package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Grade is the four-level assessment of a trainee's performance.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeF Grade = "F"

	// DefaultGrade replaces anything outside the valid set.
	DefaultGrade = GradeC
)

// Valid reports whether g is one of the four allowed grades.
func (g Grade) Valid() bool {
	switch g {
	case GradeA, GradeB, GradeC, GradeF:
		return true
	}
	return false
}

// TurnOption is one of the three reply choices offered to the trainee.
type TurnOption struct {
	Text    string  `json:"text"`
	Verdict Verdict `json:"verdict"`
}

// AdaptiveTurn is the result of adaptive turn generation. Error is set only
// when generation failed and the rest of the payload is fallback filler.
type AdaptiveTurn struct {
	NextSpeech string       `json:"next_speech"`
	Options    []TurnOption `json:"options"`
	Error      string       `json:"error,omitempty"`
}

// VoiceTurn is the result of voice-mode turn generation. Audio carries
// synthesized speech when a synthesizer is configured, nil otherwise.
type VoiceTurn struct {
	Message string
	Audio   []byte
}

// BasicReport is the free post-simulation report.
type BasicReport struct {
	Grade        Grade  `json:"grade"`
	Summary      string `json:"summary"`
	CautionPoint string `json:"caution_point"`
	Guide        string `json:"guide"`
	Error        string `json:"error,omitempty"`
}

// OverallEvaluation is the nested verdict block of a premium report.
type OverallEvaluation struct {
	Grade   Grade  `json:"grade"`
	Summary string `json:"summary"`
}

// CriticalMoment pinpoints one legally risky turn in the conversation.
type CriticalMoment struct {
	TurnNumber   TurnNumber `json:"turn_number"`
	UserMessage  string     `json:"user_message"`
	RiskAnalysis string     `json:"risk_analysis"`
	LegalAdvice  string     `json:"legal_advice"`
}

// PremiumReport is the paid in-depth report. References is always empty from
// this service; news lookup belongs to the calling backend.
type PremiumReport struct {
	OverallEvaluation *OverallEvaluation `json:"overall_evaluation,omitempty"`
	CriticalMoments   []CriticalMoment   `json:"critical_moments"`
	RecommendedAction string             `json:"recommended_action"`
	References        []string           `json:"references"`
	Error             string             `json:"error,omitempty"`
}

// ImageDiagnosis is the outcome of the OCR risk-diagnosis pipeline.
type ImageDiagnosis struct {
	RiskLevel        string   `json:"risk_level"`
	Title            string   `json:"title,omitempty"`
	Reason           string   `json:"reason,omitempty"`
	DetectedKeywords []string `json:"detected_keywords"`
	Summary          string   `json:"summary,omitempty"`
	Guide            string   `json:"guide,omitempty"`
	ExtractedText    string   `json:"extracted_text"`
	Error            string   `json:"error,omitempty"`
}

// TurnNumber tolerates both 3 and "3" in model output. The premium-report
// prompt asks for a number, but models quote it often enough that rejecting
// the string form would tip whole reports into the fallback path.
type TurnNumber int

func (n *TurnNumber) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(bytes.TrimSpace(data), `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		// Free-text like "3번째 턴" still carries a leading digit sometimes;
		// anything unparseable degrades to zero rather than failing the report.
		*n = 0
		return nil
	}
	*n = TurnNumber(v)
	return nil
}

func (n TurnNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}
