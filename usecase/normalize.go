package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

// Fallback payloads, one per endpoint. These shapes are part of the caller
// contract: the backend branches on the presence of "error" and must never
// see a schema surprise.
var (
	fallbackAdaptiveTurn = domain.AdaptiveTurn{
		Error:      "AI 응답 생성 실패",
		NextSpeech: "오류 발생",
		Options:    []domain.TurnOption{},
	}

	fallbackVoiceMessage = "응답 생성에 실패했습니다."

	fallbackBasicReport = domain.BasicReport{
		Error: "리포트 생성 실패",
	}

	fallbackPremiumReport = domain.PremiumReport{
		Error:           "리포트를 생성하는 중 오류가 발생했습니다.",
		CriticalMoments: []domain.CriticalMoment{},
		References:      []string{},
	}

	fallbackImageDiagnosis = domain.ImageDiagnosis{
		RiskLevel:        "오류",
		Title:            "분석 중 오류 발생",
		DetectedKeywords: []string{},
		Summary:          "AI가 분석하는 데 실패했습니다. 잠시 후 다시 시도해주세요.",
		Guide:            "네트워크 상태를 확인하거나, 다른 이미지를 사용해보세요.",
	}
)

// stripCodeFence removes a markdown code fence wrapped around model output.
// Exact prefix/suffix matching only: a ```json opener (or a bare
// ``` line) and a trailing ``` are dropped, nothing else is touched.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line, language tag included.
		if nl := strings.Index(s, "\n"); nl != -1 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```json")
			s = strings.TrimPrefix(s, "```")
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")

	return strings.TrimSpace(s)
}

// decodeModelJSON fence-strips raw and unmarshals it into out. It reports
// failure instead of returning an error value so call sites read as a plain
// branch to their fallback.
func decodeModelJSON(ctx context.Context, raw string, out any) bool {
	cleaned := stripCodeFence(raw)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		log.WithCtx(ctx).Error("model output is not valid JSON",
			zap.Error(err),
			zap.String("raw", truncate(raw, 500)))
		return false
	}
	return true
}

// normalizeVoiceReply trims a leading "AI:" role-prefix artifact the voice
// prompt tends to elicit.
func normalizeVoiceReply(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "AI:")
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
