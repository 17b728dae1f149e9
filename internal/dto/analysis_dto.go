package dto

// AnalyzeRequest is the body of POST /analyze-response.
type AnalyzeRequest struct {
	Transcript string `json:"transcript"`
	VideoURL   string `json:"videoUrl"`
}

// AnalysisResult is returned to the caller and never persisted.
type AnalysisResult struct {
	ContentAnalysis    string  `json:"contentAnalysis"`
	ExpressionAnalysis string  `json:"expressionAnalysis"`
	ConfidenceScore    float64 `json:"confidenceScore"`
	ClarityScore       float64 `json:"clarityScore"`
	ContentScore       float64 `json:"contentScore"`
}

type LandingFeature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type LandingDTO struct {
	Features []LandingFeature `json:"features"`
	SignedIn bool             `json:"signed_in"`
	Next     string           `json:"next"`
}
