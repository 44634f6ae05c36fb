package intent

import (
	"context"

	"github.com/fundsbot/fundsbot/internal/logger"
)

// Labeler asks an external model for a single intent label.
type Labeler interface {
	Classify(ctx context.Context, text string) (string, error)
}

// LLMClassifier adapts a Labeler to Predictor.
type LLMClassifier struct {
	labeler Labeler
}

func NewLLMClassifier(labeler Labeler) *LLMClassifier {
	return &LLMClassifier{labeler: labeler}
}

func (l *LLMClassifier) Predict(ctx context.Context, text string) Intent {
	label, err := l.labeler.Classify(ctx, text)
	if err != nil {
		log := logger.FromContext(ctx)
		log.Warn().Err(err).Msg("llm intent classification failed")
		return Unknown
	}

	in, ok := Parse(label)
	if !ok {
		log := logger.FromContext(ctx)
		log.Warn().Str("label", label).Msg("llm returned label outside vocabulary")
	}
	return in
}
