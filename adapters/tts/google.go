package tts

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"

	"github.com/safeguard-ai/agentic/domain"
	"github.com/safeguard-ai/agentic/utils/log"
	"go.uber.org/zap"
)

// GoogleTTS renders voice-mode lines to Korean speech. Optional: when gcloud
// credentials are absent the constructor returns nil and voice turns stay
// text-only.
type GoogleTTS struct {
	client *texttospeech.Client
}

func NewGoogleTTS() domain.SpeechSynthesizer {
	client, err := texttospeech.NewClient(context.Background())
	if err != nil {
		log.With().Warn("creating Google tts client failed, voice audio disabled", zap.Error(err))
		return nil
	}
	return &GoogleTTS{client: client}
}

func (g *GoogleTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	req := texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{
				Text: text,
			},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "ko-KR",
			SsmlGender:   texttospeechpb.SsmlVoiceGender_MALE,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	}
	resp, err := g.client.SynthesizeSpeech(ctx, &req)
	if err != nil {
		return nil, fmt.Errorf("synthesizing speech: %w", err)
	}

	return resp.GetAudioContent(), nil
}
