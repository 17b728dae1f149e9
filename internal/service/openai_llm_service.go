package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Rehearse/config"
	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// chatCompleter is satisfied by *openai.Client.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type openAILLMService struct {
	client      chatCompleter
	textModel   string
	visionModel string
}

func NewOpenAILLMService(cfg *config.Config) CritiqueLLMService {
	svc := &openAILLMService{
		textModel:   firstNonEmpty(cfg.LLM.TextModel, openai.GPT4oMini),
		visionModel: firstNonEmpty(cfg.LLM.VisionModel, openai.GPT4o),
	}
	if cfg.LLM.OpenAIApiKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set. Every analysis request will fail.")
		return svc
	}
	svc.client = openai.NewClient(cfg.LLM.OpenAIApiKey)
	return svc
}

func (s *openAILLMService) Provider() string {
	return ProviderOpenAI
}

func (s *openAILLMService) CritiqueTranscript(ctx context.Context, transcript string) (string, error) {
	return s.complete(ctx, s.textModel, contentSystemInstruction, transcriptPrompt(transcript))
}

func (s *openAILLMService) CritiqueExpressions(ctx context.Context, videoURL string) (string, error) {
	return s.complete(ctx, s.visionModel, expressionSystemInstruction, expressionPrompt(videoURL))
}

func (s *openAILLMService) complete(ctx context.Context, model, system, user string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("openai client not initialized: OPENAI_API_KEY is missing")
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		log.Error().Err(err).Str("model", model).Msg("OpenAI API error during critique")
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
