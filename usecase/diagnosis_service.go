package usecase

import (
	"context"

	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

// DiagnosisService runs the image pipeline: OCR the upload, then grade the
// extracted text for fraud risk. An image with no readable text is a valid
// "nothing suspicious" outcome, not an error, and skips the model call.
type DiagnosisService struct {
	ocr domain.TextExtractor
	llm domain.TextGenerator
}

func NewDiagnosisService(ocr domain.TextExtractor, llm domain.TextGenerator) *DiagnosisService {
	return &DiagnosisService{ocr: ocr, llm: llm}
}

// noTextDiagnosis is returned when OCR finds nothing to analyze.
var noTextDiagnosis = domain.ImageDiagnosis{
	RiskLevel:        "안전",
	Reason:           "이미지에서 분석할 텍스트를 찾을 수 없습니다.",
	DetectedKeywords: []string{},
	ExtractedText:    "",
}

func (s *DiagnosisService) DiagnoseImage(ctx context.Context, image []byte) domain.ImageDiagnosis {
	var extracted string
	if s.ocr != nil {
		var err error
		extracted, err = s.ocr.ExtractText(ctx, image)
		if err != nil {
			// Extraction failure and "no text" share a shape on purpose.
			log.WithCtx(ctx).Warn("ocr extraction failed", zap.Error(err))
			extracted = ""
		}
	}

	if extracted == "" {
		return noTextDiagnosis
	}

	diagnosis := s.DiagnoseText(ctx, extracted)
	diagnosis.ExtractedText = extracted
	return diagnosis
}

// DiagnoseText classifies already-extracted text. Uses the quality tier; a
// misread risk level on a real scam screenshot costs more than the latency.
func (s *DiagnosisService) DiagnoseText(ctx context.Context, text string) domain.ImageDiagnosis {
	prompt := TextDiagnosisPrompt(text)

	raw, err := s.llm.Generate(ctx, prompt, domain.TierQuality)
	if err != nil {
		log.WithCtx(ctx).Error("risk diagnosis failed", zap.Error(err))
		return fallbackImageDiagnosis
	}

	var diagnosis domain.ImageDiagnosis
	if !decodeModelJSON(ctx, raw, &diagnosis) {
		return fallbackImageDiagnosis
	}
	if diagnosis.DetectedKeywords == nil {
		diagnosis.DetectedKeywords = []string{}
	}
	return diagnosis
}
