package main

import (
	"flag"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/fundsbot/fundsbot/internal/intent"
	"github.com/fundsbot/fundsbot/internal/logger"
)

var (
	dataset = flag.String("data", "", "CSV file with text,intent columns.")
	out     = flag.String("out", "models/intent_classifier.gob", "Where to write the trained classifier.")
)

func main() {
	flag.Parse()
	log := logger.New("info")

	if *dataset == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(*dataset)
	if err != nil {
		log.Fatal().Err(errors.WithStack(err)).Msg("Failed to open dataset")
	}
	defer f.Close()

	samples, err := intent.ReadSamples(f)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read dataset")
	}

	cl, err := intent.Train(samples)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to train classifier")
	}

	if err := cl.WriteToFile(*out); err != nil {
		log.Fatal().Err(errors.Wrapf(err, "write %s", *out)).Msg("Failed to save classifier")
	}

	color.Green("Trained on %d samples, %d intents, saved to %s", len(samples), len(cl.Classes), *out)
}
