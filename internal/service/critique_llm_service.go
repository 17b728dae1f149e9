package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/Rehearse/config"
	"github.com/rs/zerolog/log"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	contentSystemInstruction    = "You are an expert at analyzing interview responses. Analyze the following response for clarity, confidence, and content quality."
	expressionSystemInstruction = "You are an expert at analyzing facial expressions and body language in interviews."
)

// CritiqueLLMService produces free-text critiques of a recorded answer.
type CritiqueLLMService interface {
	// CritiqueTranscript critiques what was said, on the smaller text model.
	CritiqueTranscript(ctx context.Context, transcript string) (string, error)
	// CritiqueExpressions critiques how it was said, on the vision model. Only the video URL
	// is sent, as text; no frames are attached.
	CritiqueExpressions(ctx context.Context, videoURL string) (string, error)
	Provider() string
}

func transcriptPrompt(transcript string) string {
	return "Analyze this interview response transcript: " + transcript
}

func expressionPrompt(videoURL string) string {
	return "Analyze the facial expressions and body language in this video: " + videoURL
}

// NewCritiqueLLMService picks the provider named in config.
func NewCritiqueLLMService(cfg *config.Config) (CritiqueLLMService, error) {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "", ProviderGemini:
		return NewGeminiLLMService(cfg)
	case ProviderOpenAI:
		return NewOpenAILLMService(cfg), nil
	default:
		log.Error().Str("provider", cfg.LLM.Provider).Msg("Unknown LLM provider")
		return nil, fmt.Errorf("unsupported LLM_PROVIDER %q (want %q or %q)", cfg.LLM.Provider, ProviderGemini, ProviderOpenAI)
	}
}
