package usecase

import (
	"context"

	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

// ReportService builds the two post-simulation reports. The free report runs
// on the fast tier, the premium one on the quality tier; both repair the
// grade before returning so the caller can rely on it unconditionally.
type ReportService struct {
	llm domain.TextGenerator
}

func NewReportService(llm domain.TextGenerator) *ReportService {
	return &ReportService{llm: llm}
}

func (s *ReportService) Basic(ctx context.Context, category string, transcript domain.Transcript) domain.BasicReport {
	prompt := BasicReportPrompt(category, transcript)

	raw, err := s.llm.Generate(ctx, prompt, domain.TierFast)
	if err != nil {
		log.WithCtx(ctx).Error("basic report generation failed", zap.Error(err))
		return EnsureGrade(ctx, fallbackBasicReport)
	}

	var report domain.BasicReport
	if !decodeModelJSON(ctx, raw, &report) {
		return EnsureGrade(ctx, fallbackBasicReport)
	}

	return EnsureGrade(ctx, report)
}

func (s *ReportService) Premium(ctx context.Context, category string, transcript domain.Transcript) domain.PremiumReport {
	prompt := PremiumReportPrompt(category, transcript)

	raw, err := s.llm.Generate(ctx, prompt, domain.TierQuality)
	if err != nil {
		log.WithCtx(ctx).Error("premium report generation failed", zap.Error(err))
		return EnsurePremiumGrade(ctx, fallbackPremiumReport)
	}

	var report domain.PremiumReport
	if !decodeModelJSON(ctx, raw, &report) {
		return EnsurePremiumGrade(ctx, fallbackPremiumReport)
	}
	if report.CriticalMoments == nil {
		report.CriticalMoments = []domain.CriticalMoment{}
	}
	// References always comes back empty from this service; the backend owns
	// news lookup.
	report.References = []string{}

	return EnsurePremiumGrade(ctx, report)
}
