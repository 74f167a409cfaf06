package ocr

import (
	"bytes"
	"context"
	"fmt"

	vision "cloud.google.com/go/vision/apiv1"

	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

// GoogleVision extracts text from uploaded images. It rides gcloud
// application-default credentials; when those are missing the constructor
// degrades to a client-less extractor that reports "no text" for everything.
type GoogleVision struct {
	client *vision.ImageAnnotatorClient
}

func NewGoogleVision() domain.TextExtractor {
	client, err := vision.NewImageAnnotatorClient(context.Background())
	if err != nil {
		log.With().Warn("creating Google vision client failed, OCR disabled", zap.Error(err))
		return &GoogleVision{}
	}
	return &GoogleVision{client: client}
}

// ExtractText OCRs the image. A missing client, an upstream failure and an
// image with no detectable text all collapse to ("", nil); the diagnosis
// pipeline treats them as "no signal". Only an unreadable upload surfaces as
// an error, and the caller downgrades that to empty text too.
func (g *GoogleVision) ExtractText(ctx context.Context, image []byte) (string, error) {
	if g.client == nil {
		return "", nil
	}

	img, err := vision.NewImageFromReader(bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	annotation, err := g.client.DetectDocumentText(ctx, img, nil)
	if err != nil {
		log.WithCtx(ctx).Warn("vision text detection failed", zap.Error(err))
		return "", nil
	}
	if annotation == nil {
		return "", nil
	}

	return annotation.GetText(), nil
}
