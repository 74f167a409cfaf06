package usecase

import (
	"fmt"

	"github.com/safeguard-ai/agentic/domain"
)

// Prompt builders. Each is a pure function of its inputs; nothing here calls
// a model or logs.

func AdaptiveTurnPrompt(category string, transcript domain.Transcript, highestVulnerabilityAxis string) string {
	return fmt.Sprintf(`
# ROLE
당신은 사용자의 심리적 취약점을 분석하여 맞춤형으로 대응하는 '지능형 사기꾼 AI'입니다.
# CONTEXT
%s
당신은 현재 '%s' 시나리오를 수행 중입니다.
지금까지의 대화를 통해 파악된 사용자의 가장 큰 취약점은 '%s' 입니다.
당신의 목표는 이 취약점을 집요하게 공략하여, 사용자가 'unsafe'한 행동을 하도록 유도하는 것입니다.

[이전 대화 기록]
%s

# INSTRUCTION
1. 사용자의 가장 큰 취약점인 '%s'를 공략하는, 다음 AI 대사('next_speech')를 생성하세요.
2. 그 대사에 이어질, 사용자가 선택할 수 있는 3개의 짧고 명료한 선택지('options')를 만드세요.
3. 3개의 선택지는 각각 'safe', 'risky', 'unsafe'한 대응을 대표해야 합니다.
4. 결과는 반드시 아래 JSON 형식으로만 출력하고, 다른 어떤 말도 덧붙이지 마세요.
# OUTPUT (JSON ONLY)
{
  "next_speech": "AI가 생성할 다음 대사",
  "options": [
    {"text": "안전한 대응 선택지 (15자 내외)", "verdict": "safe"},
    {"text": "애매하고 위험한 선택지 (15자 내외)", "verdict": "risky"},
    {"text": "치명적으로 위험한 선택지 (15자 내외)", "verdict": "unsafe"}
  ]
}
`,
		PersonaFor(category),
		category,
		highestVulnerabilityAxis,
		transcript.Render(),
		highestVulnerabilityAxis,
	)
}

// VoiceTurnPrompt always plays the voice-phishing persona regardless of the
// scenario the backend is running; voice mode only ships that scenario.
func VoiceTurnPrompt(transcript domain.Transcript, userMessage string) string {
	history := transcript.Render() + "\nUSER: " + userMessage

	return fmt.Sprintf(`
%s
# DIALOGUE HISTORY
%s
# INSTRUCTION
위 대화의 맥락을 이어받아, 당신의 페르소나를 완벽하게 유지하며 다음 할 말을 자연스럽게 생성하세요. 다른 설명 없이 오직 대사만 출력하세요.
AI:
`,
		PersonaFor(domain.CategoryVoicePhishing),
		history,
	)
}

// BasicReportPrompt grades category-agnostically; the category parameter is
// kept for call-site symmetry with the premium builder.
func BasicReportPrompt(category string, transcript domain.Transcript) string {
	return fmt.Sprintf(`
# ROLE
당신은 금융사기 대응을 평가하는 냉정한 'AI 금융사기 분석가'입니다.

# DIALOGUE HISTORY
%s

# INSTRUCTION
1.  **분석:** 위 대화 기록 전체를 보고, 사용자의 대응에서 나타난 핵심적인 문제점과 잘한 점을 분석하세요.
2.  **등급 결정:** 분석 결과를 바탕으로, 사용자의 대응 수준을 **'A', 'B', 'C', 'F' 4개 등급 중 '하나만'**으로 최종 판정하세요.
3.  **내용 생성:** 당신이 내린 등급과 분석 내용에 맞춰, 아래 OUTPUT FORMAT의 각 필드에 들어갈 내용을 간결하게 작성하세요.
4.  **형식 준수:** 결과는 반드시 아래 JSON 형식과 키를 완벽하게 준수해야 하며, 다른 어떤 텍스트도 추가하지 마세요.


# OUTPUT (JSON ONLY)
{
  "grade": "[대응 수준 평가: A, B, C, F 중 한가지]",
  "summary": "[AI 한 줄 총평: 사용자의 대응에 대한 핵심적인 요약 평가]",
  "caution_point": "[이런 점은 주의하세요: 대화 중 가장 위험했거나 아쉬웠던 대응 '하나'를 구체적으로 지적]",
  "guide": "[한 줄 가이드: 이번 시뮬레이션 경험을 통해 사용자가 얻어야 할 가장 중요한 행동 지침 하나]"
}
`,
		transcript.Render(),
	)
}

func PremiumReportPrompt(category string, transcript domain.Transcript) string {
	return fmt.Sprintf(`
# ROLE
당신은 '금융사기 전문 변호사'입니다. 당신의 목표는 아래 대화 기록을 법률적 관점에서 분석하고, 사용자의 대응 방식에 대한 명확하고 전문적인 피드백 리포트를 작성하는 것입니다.

# CONTEXT
아래는 사용자와 사기꾼 간의 '%s' 시뮬레이션 전체 대화 기록입니다. 이 기록을 법률적, 심리적 관점에서 면밀히 분석해야 합니다.

# DIALOGUE HISTORY
%s

# INSTRUCTION
1.  **분석:** 위 대화 기록 전체를 법률적 관점에서 면밀히 분석하세요.
2.  **등급 결정:** 분석 결과를 바탕으로, **'A', 'B', 'C', 'F' 4개 등급 중 '하나만'**으로 최종 판정하세요.
3.  **내용 생성:** 당신이 내린 등급과 분석 내용에 맞춰, 아래 OUTPUT FORMAT의 각 필드에 들어갈 내용을 전문적으로 작성하세요.
4.  **형식 준수:** 결과는 반드시 아래 JSON 형식과 키를 완벽하게 준수해야 하며, 다른 어떤 텍스트도 추가하지 마세요.

# OUTPUT (JSON ONLY)
{
  "overall_evaluation": {
    "grade": "[대응 수준 평가: A, B, C, F 중 한가지]",
    "summary": "[변호사 AI 종합 소견: 사용자의 대응에 대한 법률적 관점의 종합 평가 (2~3 문장)]"
  },
  "critical_moments": [
    {
      "turn_number": "[대화 턴 번호: 가장 치명적이었던 턴의 숫자]",
      "user_message": "[대화 인용: 해당 턴에서 사용자가 선택한 선택지 내용 정확히 인용] ",
      "risk_analysis": "[위험 분석: 인용한 발언의 어떤 부분이 왜 법적으로 위험했는지]",
      "legal_advice": "[법률 조언: 해당 상황에서 했어야 할 가장 이상적인 법률적 대응 방법 제시]"
    }
  ],
  "recommended_action": "[최종 법률 권고: 이 시뮬레이션 전체를 통해 사용자가 얻어야 할 가장 중요한 일반적인 법률 행동 지침]",
  "references": []
}
`,
		category,
		transcript.Render(),
	)
}

func TextDiagnosisPrompt(text string) string {
	return fmt.Sprintf(`
# ROLE
당신은 금융사기 메세지 탐지 전문 AI '세이프가드'입니다.

# CONTEXT
사용자가 의심스러운 문자 메시지 또는 계약서의 일부 내용을 전달했습니다. 이 텍스트에 전세사기, 보이스피싱, 스미싱 등 금융사기와 관련된 위험 요소가 포함되어 있는지 분석해야 합니다.

# TEXT FOR DIAGNOSIS
%s

# INSTRUCTION
1.  위 텍스트를 분석하여, 금융사기 위험도를 **'위험', '주의', '관심' 3단계 중 하나로만** 판정하세요.
2.  판정된 위험도에 어울리는 '상황 요약 제목(title)'을 생성하세요.
3.  판단의 핵심 근거를 'AI 분석 요약(summary)'과 '한 줄 가이드(guide)'로 나누어 작성해주세요.
4.  텍스트에서 가장 위험하다고 판단되는 핵심 키워드를 정확히 3개만 추출해주세요.
5.  결과는 반드시 아래 JSON 형식으로만 출력해야 합니다.


# OUTPUT FORMAT (JSON ONLY)
{
  "risk_level": "[위험 레벨: 위험, 주의, 관심 중 한가지]",
  "title": "[위험도에 맞는 상황 요약 제목]",
  "detected_keywords": ["핵심 위험 키워드 1", "핵심 위험 키워드 2", "핵심 위험 키워드 3"],
  "summary": "[AI 분석 요약: 이 텍스트가 왜 해당 위험 등급으로 판정되었는지에 대한 핵심 분석 내용]",
  "guide": "[한 줄 가이드: 사용자가 이 메시지에 대해 어떻게 행동해야 하는지에 대한 명확한 지침]"
}
`,
		text,
	)
}
