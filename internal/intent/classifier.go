package intent

import (
	"context"
	"math"
	"strings"
	"unicode"

	"github.com/jbrukh/bayesian"
	"github.com/pkg/errors"

	"github.com/fundsbot/fundsbot/internal/logger"
)

// Predictor maps text to an intent. Implementations return Unknown instead of
// failing.
type Predictor interface {
	Predict(ctx context.Context, text string) Intent
}

// BayesClassifier predicts intents with a trained naive Bayes model whose
// classes are intent labels. It is read-only after construction.
type BayesClassifier struct {
	cl *bayesian.Classifier
}

// NewBayesClassifier wraps an already trained classifier.
func NewBayesClassifier(cl *bayesian.Classifier) *BayesClassifier {
	return &BayesClassifier{cl: cl}
}

// LoadBayesClassifier reads a gob-encoded classifier from path.
func LoadBayesClassifier(path string) (*BayesClassifier, error) {
	cl, err := bayesian.NewClassifierFromFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load intent classifier %s", path)
	}
	if len(cl.Classes) < 2 {
		return nil, errors.Errorf("intent classifier %s has %d classes, need at least 2", path, len(cl.Classes))
	}

	known := 0
	for _, class := range cl.Classes {
		if _, ok := Parse(string(class)); ok {
			known++
		}
	}
	if known == 0 {
		return nil, errors.Errorf("intent classifier %s has no known intent labels", path)
	}

	return NewBayesClassifier(cl), nil
}

// Classes returns the labels the model was trained on.
func (b *BayesClassifier) Classes() []string {
	out := make([]string, len(b.cl.Classes))
	for i, class := range b.cl.Classes {
		out[i] = string(class)
	}
	return out
}

// Predict returns the highest scoring class. Empty input, ties, underflow,
// labels outside the vocabulary and panics inside the model all yield Unknown.
func (b *BayesClassifier) Predict(ctx context.Context, text string) (result Intent) {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return Unknown
	}

	defer func() {
		if r := recover(); r != nil {
			log := logger.FromContext(ctx)
			log.Error().Interface("panic", r).Str("text", text).Msg("intent prediction failed")
			result = Unknown
		}
	}()

	scores, inx, strict := b.cl.LogScores(tokens)
	if !strict || inx < 0 || inx >= len(scores) {
		return Unknown
	}
	if math.IsInf(scores[inx], 0) || math.IsNaN(scores[inx]) {
		return Unknown
	}

	in, _ := Parse(string(b.cl.Classes[inx]))
	return in
}

// Tokenize lower-cases text and splits it on anything that is not a letter or
// digit. Training and prediction must tokenize the same way.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
