package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"github.com/safeguard-ai/agentic/config"
	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

const retryDelay = 500 * time.Millisecond

// GeminiClient invokes Gemini on two tiers. Constructed without an API key it
// stays alive but answers every call with domain.ErrModelUnavailable, so the
// endpoints degrade to their fallback payloads instead of the process dying.
type GeminiClient struct {
	client       *genai.Client
	fastModel    string
	qualityModel string
	timeout      time.Duration
}

func NewGeminiClient(cfg config.Config) domain.TextGenerator {
	g := &GeminiClient{
		fastModel:    cfg.FastModel,
		qualityModel: cfg.QualityModel,
		timeout:      cfg.ModelTimeout,
	}

	if cfg.GoogleAPIKey == "" {
		log.With().Warn("GOOGLE_API_KEY is not set, text generation disabled")
		return g
	}

	client, err := genai.NewClient(
		context.TODO(),
		&genai.ClientConfig{
			APIKey:  cfg.GoogleAPIKey,
			Backend: genai.BackendGeminiAPI,
		},
	)
	if err != nil {
		log.With().Warn("creating genai client failed, text generation disabled", zap.Error(err))
		return g
	}

	g.client = client
	return g
}

func (g *GeminiClient) model(tier domain.Tier) string {
	if tier == domain.TierQuality {
		return g.qualityModel
	}
	return g.fastModel
}

// Generate runs one prompt against the tier's model. One retry on failure;
// the hosted call is the sole source of latency variance, so the whole
// attempt sequence shares a single bounded deadline.
func (g *GeminiClient) Generate(ctx context.Context, prompt string, tier domain.Tier) (string, error) {
	if g.client == nil {
		return "", domain.ErrModelUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	model := g.model(tier)

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				return "", fmt.Errorf("generate content: %w", ctx.Err())
			}
			log.WithCtx(ctx).Warn("retrying generation",
				zap.String("model", model), zap.Error(lastErr))
		}

		resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
		if err != nil {
			lastErr = fmt.Errorf("generate content: %w", err)
			continue
		}

		text := resp.Text()
		if text == "" {
			lastErr = domain.ErrNoContent
			continue
		}
		return text, nil
	}

	return "", lastErr
}
