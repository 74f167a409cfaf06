package log

import (
	"context"
	"os"

	"go.uber.org/zap"
)

var logger *zap.Logger

func init() {
	if os.Getenv("DEBUG") == "true" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
}

func WithCtx(ctx context.Context) *zap.Logger {
	fields := []zap.Field{}

	if v := ctx.Value("crime_type"); v != nil {
		fields = append(fields, zap.Any("crime_type", v))
	}
	if v := ctx.Value("user_name"); v != nil {
		fields = append(fields, zap.Any("user_name", v))
	}
	if v := ctx.Value("endpoint"); v != nil {
		fields = append(fields, zap.Any("endpoint", v))
	}

	return logger.With(fields...)
}

func With(fields ...zap.Field) *zap.Logger {
	return logger.With(fields...)
}
