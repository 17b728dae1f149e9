package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Rehearse/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	defaultGeminiTextModel   = "gemini-1.5-flash"
	defaultGeminiVisionModel = "gemini-1.5-pro"
)

// contentGenerator is satisfied by *genai.GenerativeModel.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type geminiLLMService struct {
	textModel   contentGenerator
	visionModel contentGenerator
}

// NewGeminiLLMService leaves the models nil when GEMINI_API_KEY is missing; every call then
// fails at the upstream step instead of at startup.
func NewGeminiLLMService(cfg *config.Config) (CritiqueLLMService, error) {
	if cfg.LLM.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. Every analysis request will fail.")
		return &geminiLLMService{}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.LLM.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}

	textName := firstNonEmpty(cfg.LLM.TextModel, defaultGeminiTextModel)
	visionName := firstNonEmpty(cfg.LLM.VisionModel, defaultGeminiVisionModel)

	text := client.GenerativeModel(textName)
	text.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(contentSystemInstruction)}}

	vision := client.GenerativeModel(visionName)
	vision.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(expressionSystemInstruction)}}

	log.Info().Str("text_model", textName).Str("vision_model", visionName).Msg("Gemini critique models ready")
	return &geminiLLMService{textModel: text, visionModel: vision}, nil
}

func (s *geminiLLMService) Provider() string {
	return ProviderGemini
}

func (s *geminiLLMService) CritiqueTranscript(ctx context.Context, transcript string) (string, error) {
	return s.generate(ctx, s.textModel, transcriptPrompt(transcript))
}

func (s *geminiLLMService) CritiqueExpressions(ctx context.Context, videoURL string) (string, error) {
	return s.generate(ctx, s.visionModel, expressionPrompt(videoURL))
}

func (s *geminiLLMService) generate(ctx context.Context, model contentGenerator, prompt string) (string, error) {
	if model == nil {
		return "", fmt.Errorf("gemini client not initialized: GEMINI_API_KEY is missing")
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during critique")
		return "", fmt.Errorf("gemini API error: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return b.String(), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
