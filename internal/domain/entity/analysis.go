package entity

// MaxTextLength is the upper bound, in code points, accepted for analysis.
const MaxTextLength = 5000

// DefaultLanguage is reported on every response; no detection is done.
const DefaultLanguage = "en"

type AnalysisRequest struct {
	Text string `json:"text" validate:"required,min=1,max=5000"`
}

type AnalysisResult struct {
	WordCount      int     `json:"word_count"`
	CharacterCount int     `json:"character_count"`
	SentenceCount  int     `json:"sentence_count"`
	SentimentScore float64 `json:"sentiment_score"` // [-1, 1], two decimals
}

type AnalysisResponse struct {
	OriginalText string `json:"original_text"`
	AnalysisResult
	Sentiment string `json:"sentiment"` // positive, negative or neutral
	Language  string `json:"language"`
}
