// Command artifactscan screens an EDF/EDF+ recording for artifacts.
//
// Usage:
//
//	artifactscan -rate 24000 [flags] recording.edf
//
// Every signal in the file becomes one channel; channels are truncated to
// the shortest signal before classification.
//
// Examples:
//
//	artifactscan -rate 24000 session.edf
//	artifactscan -rate 24000 -method cov -threshold 1.5 session.edf
//	artifactscan -rate 24000 -method tree -model store.yaml -csv out.csv session.edf
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/OpenPSG/edf"
	"github.com/rs/zerolog"

	"github.com/cwbudde/algo-artifact/artifact"
	"github.com/cwbudde/algo-artifact/artifact/tree"
)

func main() {
	var (
		rate        = flag.Float64("rate", 0, "sampling rate in Hz (required)")
		methodName  = flag.String("method", "psd", "classification method: psd, psdPrg, tree, treePrg, cov")
		threshold   = flag.Float64("threshold", 0, "decision threshold override")
		window      = flag.Float64("window", 0, "cov window length in seconds")
		aggregation = flag.Float64("aggregation", 0, "cov aggregation fraction")
		modelPath   = flag.String("model", "", "external decision-tree model store (YAML)")
		csvPath     = flag.String("csv", "", "write the annotation grid as CSV")
	)

	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: artifactscan -rate <Hz> [flags] <recording.edf>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	method, err := artifact.ParseMethod(*methodName)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid method")
	}

	opts := []artifact.Option{
		artifact.WithMethod(method),
		artifact.WithAdvisoryHandler(func(msg string) {
			log.Warn().Msg(msg)
		}),
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			opts = append(opts, artifact.WithThreshold(*threshold))
		case "window":
			opts = append(opts, artifact.WithWindowLength(*window))
		case "aggregation":
			opts = append(opts, artifact.WithAggregation(*aggregation))
		case "model":
			opts = append(opts, artifact.WithModelLoader(func() (*tree.Model, error) {
				return tree.LoadFile(*modelPath)
			}))
		}
	})

	path := flag.Arg(0)

	signal, labels, err := readRecording(path)
	if err != nil {
		log.Fatal().Err(err).Str("file", path).Msg("failed to read recording")
	}

	log.Info().
		Str("file", path).
		Int("channels", len(signal)).
		Str("method", method.String()).
		Msg("classifying")

	grid, err := artifact.Classify(signal, *rate, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("classification failed")
	}

	printSummary(os.Stdout, grid, labels)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, grid, labels); err != nil {
			log.Fatal().Err(err).Str("file", *csvPath).Msg("failed to write CSV")
		}

		log.Info().Str("file", *csvPath).Msg("annotation grid written")
	}
}

// readRecording loads every signal of an EDF file as one channel, truncated
// to the shortest signal.
func readRecording(path string) ([][]float64, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	reader, err := edf.Open(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parse EDF header: %w", err)
	}

	var (
		signal [][]float64
		labels []string
	)

	for i := 0; ; i++ {
		sr, err := reader.Signal(i)
		if err != nil {
			// Signal index out of range: all signals consumed.
			break
		}

		samples, err := readAll(sr)
		if err != nil {
			return nil, nil, fmt.Errorf("read signal %d: %w", i, err)
		}

		signal = append(signal, samples)
		labels = append(labels, fmt.Sprintf("ch%d", i))
	}

	if len(signal) == 0 {
		return nil, nil, fmt.Errorf("recording contains no signals")
	}

	shortest := len(signal[0])
	for _, ch := range signal {
		if len(ch) < shortest {
			shortest = len(ch)
		}
	}

	for i := range signal {
		signal[i] = signal[i][:shortest]
	}

	return signal, labels, nil
}

func readAll(sr *edf.SignalReader) ([]float64, error) {
	var out []float64

	buf := make([]float64, 8192)

	for {
		n, err := sr.Read(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out, nil
		}

		if err != nil {
			return nil, err
		}

		if n == 0 {
			return out, nil
		}
	}
}

func printSummary(w io.Writer, grid artifact.Grid, labels []string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "channel\tartifact seconds\ttotal seconds\tfraction")

	for ch, row := range grid {
		count := 0
		for _, v := range row {
			if v {
				count++
			}
		}

		fraction := 0.0
		if len(row) > 0 {
			fraction = float64(count) / float64(len(row))
		}

		fmt.Fprintf(tw, "%s\t%d\t%d\t%.3f\n", labels[ch], count, len(row), fraction)
	}

	tw.Flush()
}

// writeCSV stores the grid as one line per channel of comma-separated 0/1
// values.
func writeCSV(path string, grid artifact.Grid, labels []string) error {
	var sb strings.Builder

	for ch, row := range grid {
		sb.WriteString(labels[ch])

		for _, v := range row {
			if v {
				sb.WriteString(",1")
			} else {
				sb.WriteString(",0")
			}
		}

		sb.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
