package service

import "github.com/lshigami/Rehearse/internal/dto"

var landingFeatures = []dto.LandingFeature{
	{Icon: "message-square", Title: "AI-Based Questioning", Description: "Intelligent questions tailored to your job role and skills"},
	{Icon: "mic", Title: "Speech Analysis", Description: "Real-time evaluation of tone, confidence, and clarity"},
	{Icon: "video", Title: "Expression Analysis", Description: "Assessment of facial expressions and eye contact"},
	{Icon: "chart-bar", Title: "Instant Feedback", Description: "Comprehensive analysis of your interview performance"},
	{Icon: "file", Title: "Resume Evaluation", Description: "AI-powered review of your application documents"},
	{Icon: "globe", Title: "Multilingual Support", Description: "Practice interviews in multiple languages"},
}

type LandingService interface {
	Landing(signedIn bool) dto.LandingDTO
}

type landingService struct{}

func NewLandingService() LandingService {
	return &landingService{}
}

// Landing points signed-in visitors at setup and everyone else at sign-in.
func (s *landingService) Landing(signedIn bool) dto.LandingDTO {
	next := "/auth"
	if signedIn {
		next = SetupRoute
	}
	features := make([]dto.LandingFeature, len(landingFeatures))
	copy(features, landingFeatures)
	return dto.LandingDTO{Features: features, SignedIn: signedIn, Next: next}
}
