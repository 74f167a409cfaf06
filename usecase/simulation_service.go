package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

// SimulationService generates in-simulation turns: the adaptive text mode and
// the voice mode. The synthesizer and broker are optional; a nil synthesizer
// means text-only voice turns and a nil broker disables the live feed.
type SimulationService struct {
	llm    domain.TextGenerator
	tts    domain.SpeechSynthesizer
	broker domain.MessageBroker
}

func NewSimulationService(llm domain.TextGenerator, tts domain.SpeechSynthesizer, broker domain.MessageBroker) *SimulationService {
	return &SimulationService{
		llm:    llm,
		tts:    tts,
		broker: broker,
	}
}

// AdaptiveTurn produces the next fraudster line plus exactly three tagged
// reply options. Generation or parse failure yields the fixed fallback
// payload, never an error.
func (s *SimulationService) AdaptiveTurn(ctx context.Context, category string, transcript domain.Transcript, highestVulnerabilityAxis string) domain.AdaptiveTurn {
	prompt := AdaptiveTurnPrompt(category, transcript, highestVulnerabilityAxis)

	raw, err := s.llm.Generate(ctx, prompt, domain.TierFast)
	if err != nil {
		log.WithCtx(ctx).Error("adaptive turn generation failed", zap.Error(err))
		return fallbackAdaptiveTurn
	}

	var turn domain.AdaptiveTurn
	if !decodeModelJSON(ctx, raw, &turn) {
		return fallbackAdaptiveTurn
	}
	if turn.Options == nil {
		turn.Options = []domain.TurnOption{}
	}

	s.publishTurn(ctx, domain.TurnEvent{
		Mode:       "adaptive",
		CrimeType:  category,
		NextSpeech: turn.NextSpeech,
		Timestamp:  time.Now().UTC(),
	})

	return turn
}

// VoiceTurn produces the next spoken fraudster line. Output is plain text;
// when a synthesizer is configured the line is also rendered to audio, and
// synthesis failure downgrades to text-only rather than failing the turn.
func (s *SimulationService) VoiceTurn(ctx context.Context, transcript domain.Transcript, userMessage string) domain.VoiceTurn {
	prompt := VoiceTurnPrompt(transcript, userMessage)

	raw, err := s.llm.Generate(ctx, prompt, domain.TierFast)
	if err != nil {
		log.WithCtx(ctx).Error("voice turn generation failed", zap.Error(err))
		return domain.VoiceTurn{Message: fallbackVoiceMessage}
	}

	turn := domain.VoiceTurn{Message: normalizeVoiceReply(raw)}

	if s.tts != nil {
		audio, err := s.tts.Synthesize(ctx, turn.Message)
		if err != nil {
			log.WithCtx(ctx).Warn("speech synthesis failed, returning text only", zap.Error(err))
		} else {
			turn.Audio = audio
		}
	}

	s.publishTurn(ctx, domain.TurnEvent{
		Mode:      "voice",
		AIMessage: turn.Message,
		Timestamp: time.Now().UTC(),
	})

	return turn
}

// publishTurn feeds the live observer stream. Broker trouble is logged and
// swallowed; the feed must never fail a request.
func (s *SimulationService) publishTurn(ctx context.Context, event domain.TurnEvent) {
	if s.broker == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.WithCtx(ctx).Error("marshaling turn event", zap.Error(err))
		return
	}
	if err := s.broker.Publish(ctx, domain.TurnTopic, event.Mode, payload); err != nil {
		log.WithCtx(ctx).Warn("publishing turn event", zap.Error(err))
	}
}
