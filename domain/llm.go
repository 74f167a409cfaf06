package domain

import (
	"context"
	"errors"
)

// Tier selects the latency/quality tradeoff of a generation call.
type Tier int

const (
	// TierFast is the cheap low-latency model, used for in-simulation turns
	// and the free report.
	TierFast Tier = iota
	// TierQuality is the stronger model, used for the premium report and
	// image risk diagnosis.
	TierQuality
)

// ErrModelUnavailable is returned when no generative client could be
// constructed (missing credentials). Callers convert it to their fallback
// payload; it never reaches the HTTP boundary.
var ErrModelUnavailable = errors.New("generative model unavailable")

// ErrNoContent is returned when the upstream call succeeded but carried no
// usable text.
var ErrNoContent = errors.New("model returned no content")

// TextGenerator abstracts the hosted generative text model.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, tier Tier) (string, error)
}

// TextExtractor abstracts the hosted OCR model. Implementations return an
// empty string, not an error, when no text region is detected or the upstream
// call fails; OCR failure is "no signal", never fatal.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// SpeechSynthesizer turns a generated line into audio for voice mode.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
