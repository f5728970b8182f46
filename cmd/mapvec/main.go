// mapvec converts a map-shaped document between JSON, JSONC, YAML,
// MessagePack and CBOR, keeping the order of its top-level keys.
//
// Nested values are converted through their generic representation, so only
// the top-level mapping is guaranteed to keep its order.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	mapvec "github.com/tarantool/go-mapvec"
	"github.com/tarantool/go-mapvec/marshaller"
)

// errUnexpectedArgument is returned for positional arguments.
var errUnexpectedArgument = errors.New("unexpected argument")

type config struct {
	from          marshaller.Format
	to            marshaller.Format
	input         string
	output        string
	capacityLimit int
	verbose       bool
	help          bool
}

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flagSet, cfg := newFlagSet()

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if cfg.help {
		printHelp(flagSet, stderr)
		return nil
	}

	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("%w: %s", errUnexpectedArgument, rest[0])
	}

	logger := newLogger(stderr, cfg.verbose)
	defer func() { _ = logger.Sync() }()

	err = convertFile(cfg, stdin, stdout, logger)
	if err != nil {
		logger.Error("conversion failed",
			zap.Stringer("from", cfg.from),
			zap.Stringer("to", cfg.to),
			zap.Error(err),
		)

		return err
	}

	return nil
}

func newFlagSet() (*pflag.FlagSet, *config) {
	cfg := &config{
		from:          marshaller.FormatJSON,
		to:            marshaller.FormatYAML,
		input:         "-",
		output:        "-",
		capacityLimit: mapvec.DefaultCapacityLimit,
		verbose:       false,
		help:          false,
	}

	flagSet := pflag.NewFlagSet("mapvec", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.VarP(&cfg.from, "from", "f", "input format: json, jsonc, yaml, msgpack or cbor")
	flagSet.VarP(&cfg.to, "to", "t", "output format: json, jsonc, yaml, msgpack or cbor")
	flagSet.StringVarP(&cfg.input, "input", "i", cfg.input, "input file, - for stdin")
	flagSet.StringVarP(&cfg.output, "output", "o", cfg.output, "output file, - for stdout")
	flagSet.IntVar(&cfg.capacityLimit, "capacity-limit", cfg.capacityLimit,
		"largest number of entries reserved from a length prefix")
	flagSet.BoolVarP(&cfg.verbose, "verbose", "v", false, "log conversion steps")
	flagSet.BoolVarP(&cfg.help, "help", "h", false, "show help")

	return flagSet, cfg
}

func printHelp(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprint(w, `mapvec converts a map-shaped document between formats, keeping the
order of its top-level keys.

Usage:
  mapvec [flags]

Examples:
  # Convert a JSON object on stdin to YAML
  mapvec < settings.json

  # Convert commented JSON to MessagePack
  mapvec --from jsonc --to msgpack -i settings.jsonc -o settings.mp

Flags:
`)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

// newLogger creates a JSON logger writing to w. It logs errors only, or
// every step when verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)

	return zap.New(core).Named("mapvec")
}

func convertFile(cfg *config, stdin io.Reader, stdout io.Writer, logger *zap.Logger) error {
	input, err := readInput(cfg.input, stdin)
	if err != nil {
		return err
	}

	logger.Debug("input read", zap.String("path", cfg.input), zap.Int("bytes", len(input)))

	output, err := convert(input, cfg.from, cfg.to, logger, mapvec.WithCapacityLimit(cfg.capacityLimit))
	if err != nil {
		return err
	}

	if !cfg.to.Binary() && (len(output) == 0 || output[len(output)-1] != '\n') {
		output = append(output, '\n')
	}

	err = writeOutput(cfg.output, stdout, output)
	if err != nil {
		return err
	}

	logger.Debug("output written", zap.String("path", cfg.output), zap.Int("bytes", len(output)))

	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return data, nil
}

func writeOutput(path string, stdout io.Writer, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		if err != nil {
			return fmt.Errorf("failed to write stdout: %w", err)
		}

		return nil
	}

	err := os.WriteFile(path, data, 0o644) //nolint:gosec,mnd
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
