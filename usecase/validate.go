package usecase

import (
	"context"

	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

// EnsureGrade returns a copy of the report with its grade forced into the
// allowed set. An invalid or absent grade becomes the moderate default and
// is logged; all other fields pass through untouched. Never fails, and a
// second application is a no-op.
func EnsureGrade(ctx context.Context, report domain.BasicReport) domain.BasicReport {
	if report.Grade.Valid() {
		return report
	}

	log.WithCtx(ctx).Warn("basic report grade invalid, correcting",
		zap.String("grade", string(report.Grade)),
		zap.String("corrected", string(domain.DefaultGrade)))

	report.Grade = domain.DefaultGrade
	return report
}

// EnsurePremiumGrade is EnsureGrade for the nested premium shape. When the
// model omitted overall_evaluation entirely the block is synthesized so the
// caller always finds a grade where the contract says one lives.
func EnsurePremiumGrade(ctx context.Context, report domain.PremiumReport) domain.PremiumReport {
	if report.OverallEvaluation != nil && report.OverallEvaluation.Grade.Valid() {
		return report
	}

	var current domain.Grade
	if report.OverallEvaluation != nil {
		current = report.OverallEvaluation.Grade
	}
	log.WithCtx(ctx).Warn("premium report grade invalid, correcting",
		zap.String("grade", string(current)),
		zap.String("corrected", string(domain.DefaultGrade)))

	eval := domain.OverallEvaluation{Grade: domain.DefaultGrade}
	if report.OverallEvaluation != nil {
		eval = *report.OverallEvaluation
		eval.Grade = domain.DefaultGrade
	}
	report.OverallEvaluation = &eval
	return report
}
