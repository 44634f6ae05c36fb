package intent

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

const (
	SourceClassifier = "classifier"
	SourceLLM        = "llm"
)

// Resolution is the chosen intent and what chose it.
type Resolution struct {
	Intent Intent
	Source string
}

// Resolver runs the rule chain, then the classifier, then the optional
// fallback when the classifier has no answer.
type Resolver struct {
	rules      []Rule
	classifier Predictor
	fallback   Predictor
	log        zerolog.Logger
}

// NewResolver builds a resolver with DefaultRules. fallback may be nil.
func NewResolver(classifier Predictor, fallback Predictor, log zerolog.Logger) *Resolver {
	return &Resolver{
		rules:      DefaultRules(),
		classifier: classifier,
		fallback:   fallback,
		log:        log,
	}
}

// WithRules replaces the rule chain.
func (r *Resolver) WithRules(rules ...Rule) *Resolver {
	r.rules = rules
	return r
}

func (r *Resolver) Resolve(ctx context.Context, text string) Resolution {
	lower := strings.ToLower(text)
	for _, rule := range r.rules {
		if in, ok := rule.Match(lower); ok {
			return r.done(Resolution{Intent: in, Source: rule.Name}, text)
		}
	}

	in := r.classifier.Predict(ctx, text)
	if in != Unknown || r.fallback == nil {
		return r.done(Resolution{Intent: in, Source: SourceClassifier}, text)
	}

	return r.done(Resolution{Intent: r.fallback.Predict(ctx, text), Source: SourceLLM}, text)
}

func (r *Resolver) done(res Resolution, text string) Resolution {
	r.log.Debug().
		Str("intent", res.Intent.String()).
		Str("source", res.Source).
		Str("text", text).
		Msg("intent resolved")
	return res
}
