package intent

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/jbrukh/bayesian"
	"github.com/pkg/errors"
)

// Sample is one labelled training utterance.
type Sample struct {
	Text  string
	Label string
}

// Train builds a TF-IDF naive Bayes classifier from labelled samples. Labels
// keep first-seen order. Samples with no tokens are skipped.
func Train(samples []Sample) (*bayesian.Classifier, error) {
	var classes []bayesian.Class
	seen := make(map[string]bool)
	for _, s := range samples {
		if s.Label == "" || seen[s.Label] {
			continue
		}
		if _, ok := Parse(s.Label); !ok {
			return nil, errors.Errorf("unknown intent label %q", s.Label)
		}
		seen[s.Label] = true
		classes = append(classes, bayesian.Class(s.Label))
	}
	if len(classes) < 2 {
		return nil, errors.Errorf("need samples for at least 2 intents, got %d", len(classes))
	}

	cl := bayesian.NewClassifierTfIdf(classes...)
	learned := 0
	for _, s := range samples {
		tokens := Tokenize(s.Text)
		if len(tokens) == 0 || s.Label == "" {
			continue
		}
		cl.Learn(tokens, bayesian.Class(s.Label))
		learned++
	}
	if learned == 0 {
		return nil, errors.New("no usable training samples")
	}
	cl.ConvertTermsFreqToTfIdf()

	return cl, nil
}

// ReadSamples reads a text,intent CSV dataset. A header row whose second
// column is "intent" is skipped, as are rows with an empty text.
func ReadSamples(r io.Reader) ([]Sample, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var samples []Sample
	for line := 1; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "read dataset")
		}
		if len(record) < 2 {
			return nil, errors.Errorf("line %d: want text,intent, got %d columns", line, len(record))
		}

		text := strings.TrimSpace(record[0])
		label := strings.ToLower(strings.TrimSpace(record[1]))
		if line == 1 && label == "intent" {
			continue
		}
		if text == "" {
			continue
		}
		samples = append(samples, Sample{Text: text, Label: label})
	}
	return samples, nil
}
