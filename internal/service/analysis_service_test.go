package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/Rehearse/config"
	"github.com/lshigami/Rehearse/internal/apperr"
	"github.com/lshigami/Rehearse/internal/dto"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisService_AnalyzeResponse(t *testing.T) {
	llm := &fakeCritiqueLLM{
		content:    "The answer was clear, detailed and well-structured, with relevant examples.",
		expression: "The candidate appears confident with good eye contact.",
	}
	svc := NewAnalysisService(llm)

	got, err := svc.AnalyzeResponse(context.Background(), dto.AnalyzeRequest{
		Transcript: "I led the migration.",
		VideoURL:   "https://cdn.test/x.webm",
	})
	require.NoError(t, err)
	assert.Equal(t, llm.content, got.ContentAnalysis)
	assert.Equal(t, llm.expression, got.ExpressionAnalysis)
	assert.Equal(t, "I led the migration.", llm.gotTranscript)
	assert.Equal(t, "https://cdn.test/x.webm", llm.gotURL)
	assert.Greater(t, got.ConfidenceScore, 0.5)
	assert.Greater(t, got.ClarityScore, 0.5)
	assert.Greater(t, got.ContentScore, 0.5)
}

func TestAnalysisService_AnalyzeResponse_NeutralText(t *testing.T) {
	svc := NewAnalysisService(&fakeCritiqueLLM{content: "ok", expression: "ok"})

	got, err := svc.AnalyzeResponse(context.Background(), dto.AnalyzeRequest{})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, got.ConfidenceScore, 1e-9)
	assert.InDelta(t, 0.5, got.ClarityScore, 1e-9)
	assert.InDelta(t, 0.5, got.ContentScore, 1e-9)
}

func TestAnalysisService_AnalyzeResponse_UpstreamError(t *testing.T) {
	svc := NewAnalysisService(&fakeCritiqueLLM{
		content:       "fine",
		expressionErr: errors.New("quota exceeded"),
	})

	got, err := svc.AnalyzeResponse(context.Background(), dto.AnalyzeRequest{Transcript: "t"})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAnalysisService_MissingGeminiKey(t *testing.T) {
	llm, err := NewCritiqueLLMService(&config.Config{LLM: config.LLM{Provider: "gemini"}})
	require.NoError(t, err)

	_, err = NewAnalysisService(llm).AnalyzeResponse(context.Background(), dto.AnalyzeRequest{Transcript: "t"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindUpstream, apperr.KindOf(err))
}

func TestAnalysisService_MissingOpenAIKey(t *testing.T) {
	llm, err := NewCritiqueLLMService(&config.Config{LLM: config.LLM{Provider: "openai"}})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, llm.Provider())

	_, err = NewAnalysisService(llm).AnalyzeResponse(context.Background(), dto.AnalyzeRequest{Transcript: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}

func TestNewCritiqueLLMService_UnknownProvider(t *testing.T) {
	_, err := NewCritiqueLLMService(&config.Config{LLM: config.LLM{Provider: "llama"}})
	require.Error(t, err)
}

type fakeGenerator struct {
	resp   *genai.GenerateContentResponse
	err    error
	prompt string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if txt, ok := parts[0].(genai.Text); ok {
			f.prompt = string(txt)
		}
	}
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, p := range parts {
		content.Parts = append(content.Parts, genai.Text(p))
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}
}

func TestGeminiLLMService_Critiques(t *testing.T) {
	text := &fakeGenerator{resp: textResponse("Clear ", "answer.")}
	vision := &fakeGenerator{resp: textResponse("Confident posture.")}
	svc := &geminiLLMService{textModel: text, visionModel: vision}

	got, err := svc.CritiqueTranscript(context.Background(), "my answer")
	require.NoError(t, err)
	assert.Equal(t, "Clear answer.", got)
	assert.Equal(t, "Analyze this interview response transcript: my answer", text.prompt)

	got, err = svc.CritiqueExpressions(context.Background(), "https://cdn.test/v.webm")
	require.NoError(t, err)
	assert.Equal(t, "Confident posture.", got)
	assert.Equal(t, "Analyze the facial expressions and body language in this video: https://cdn.test/v.webm", vision.prompt)
}

func TestGeminiLLMService_EmptyResponse(t *testing.T) {
	svc := &geminiLLMService{
		textModel:   &fakeGenerator{resp: &genai.GenerateContentResponse{}},
		visionModel: &fakeGenerator{err: errors.New("503")},
	}

	_, err := svc.CritiqueTranscript(context.Background(), "x")
	require.Error(t, err)
	_, err = svc.CritiqueExpressions(context.Background(), "x")
	require.Error(t, err)
}

type fakeChatCompleter struct {
	resp openai.ChatCompletionResponse
	err  error
	req  openai.ChatCompletionRequest
}

func (f *fakeChatCompleter) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestOpenAILLMService_Critiques(t *testing.T) {
	client := &fakeChatCompleter{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{Message: openai.ChatCompletionMessage{Content: "Good eye contact."}}},
	}}
	svc := &openAILLMService{client: client, textModel: openai.GPT4oMini, visionModel: openai.GPT4o}

	got, err := svc.CritiqueExpressions(context.Background(), "https://cdn.test/v.webm")
	require.NoError(t, err)
	assert.Equal(t, "Good eye contact.", got)
	assert.Equal(t, openai.GPT4o, client.req.Model)
	require.Len(t, client.req.Messages, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, client.req.Messages[0].Role)
	assert.Contains(t, client.req.Messages[1].Content, "https://cdn.test/v.webm")

	_, err = svc.CritiqueTranscript(context.Background(), "answer")
	require.NoError(t, err)
	assert.Equal(t, openai.GPT4oMini, client.req.Model)
}

func TestOpenAILLMService_NoChoices(t *testing.T) {
	svc := &openAILLMService{client: &fakeChatCompleter{}, textModel: openai.GPT4oMini}

	_, err := svc.CritiqueTranscript(context.Background(), "answer")
	require.Error(t, err)
}
