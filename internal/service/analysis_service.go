package service

import (
	"context"
	"time"

	"github.com/lshigami/Rehearse/internal/apperr"
	"github.com/lshigami/Rehearse/internal/dto"
	"github.com/lshigami/Rehearse/internal/metrics"
	"github.com/lshigami/Rehearse/internal/scoring"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type AnalysisService interface {
	AnalyzeResponse(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalysisResult, error)
}

type analysisService struct {
	llm CritiqueLLMService
}

func NewAnalysisService(llm CritiqueLLMService) AnalysisService {
	return &analysisService{llm: llm}
}

// AnalyzeResponse runs both critiques concurrently; either failing fails the whole request.
func (s *analysisService) AnalyzeResponse(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalysisResult, error) {
	var contentAnalysis, expressionAnalysis string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		contentAnalysis, err = s.timed(gctx, "content", func(ctx context.Context) (string, error) {
			return s.llm.CritiqueTranscript(ctx, req.Transcript)
		})
		return err
	})
	g.Go(func() error {
		var err error
		expressionAnalysis, err = s.timed(gctx, "expression", func(ctx context.Context) (string, error) {
			return s.llm.CritiqueExpressions(ctx, req.VideoURL)
		})
		return err
	})

	if err := g.Wait(); err != nil {
		metrics.AnalysisRequests.WithLabelValues("error").Inc()
		log.Error().Err(err).Str("provider", s.llm.Provider()).Msg("Response analysis failed")
		return nil, apperr.Wrap(apperr.KindUpstream, err.Error(), err)
	}

	scores := scoring.Score(contentAnalysis, expressionAnalysis)
	metrics.AnalysisRequests.WithLabelValues("success").Inc()
	return &dto.AnalysisResult{
		ContentAnalysis:    contentAnalysis,
		ExpressionAnalysis: expressionAnalysis,
		ConfidenceScore:    scores.Confidence,
		ClarityScore:       scores.Clarity,
		ContentScore:       scores.Content,
	}, nil
}

func (s *analysisService) timed(ctx context.Context, kind string, call func(context.Context) (string, error)) (string, error) {
	start := time.Now()
	out, err := call(ctx)
	metrics.CritiqueDuration.WithLabelValues(kind, s.llm.Provider()).Observe(time.Since(start).Seconds())
	return out, err
}
