package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mcncl/ndjson/internal/codec"
	"github.com/mcncl/ndjson/internal/config"
	"github.com/mcncl/ndjson/internal/errors"
	"github.com/mcncl/ndjson/internal/models"
	"github.com/mcncl/ndjson/internal/reader"
	"github.com/mcncl/ndjson/internal/report"
)

// CLI defines the command-line interface
var CLI struct {
	Input         string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output        string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Check         bool   `help:"Validate the input and report the result without writing the stream." short:"c"`
	Array         bool   `help:"Write the decoded stream as a single JSON array document." short:"a"`
	FromArray     bool   `help:"Treat the input as one JSON array and emit one element per line." short:"A"`
	Summary       bool   `help:"Print a per-kind summary of the decoded stream to stderr." short:"s"`
	SummaryFormat string `help:"Summary format: text or yaml." name:"summary-format"`
	Config        string `help:"Path to config file. If not specified, searches for .ndjson.yml." type:"path"`
	Version       bool   `help:"Show version information." short:"v"`
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	parser := kong.Must(&CLI,
		kong.Name("ndjson"),
		kong.Description("A tool to validate and convert NDJSON streams"),
		kong.UsageOnError(),
	)

	_, err := parser.Parse(os.Args[1:])
	if err != nil {
		// Usage is already shown by kong.UsageOnError()
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("ndjson version %s\n", Version)
		return
	}

	cfg, err := loadConfig()
	if err == nil {
		err = run(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

// loadConfig resolves the tool config: explicit path, discovered dotfile, or
// defaults, with CLI flags layered on top.
func loadConfig() (*config.Config, error) {
	switch CLI.SummaryFormat {
	case "", config.FormatText, config.FormatYAML:
	default:
		return nil, errors.NewConfigError(
			fmt.Sprintf("invalid summary format '%s' (want %s or %s)",
				CLI.SummaryFormat, config.FormatText, config.FormatYAML), nil)
	}

	path := CLI.Config
	if path == "" {
		path = config.FindConfigFile()
	}

	cfg := config.NewConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	return cfg.MergeCLI(CLI.Array, CLI.Summary, CLI.SummaryFormat), nil
}

// run executes the main program logic
func run(cfg *config.Config) error {
	values, err := decodeInput()
	if err != nil {
		return err
	}

	if cfg.Report.Enabled {
		if err := printSummary(cfg, values); err != nil {
			return err
		}
	}

	if CLI.Check {
		fmt.Fprintf(os.Stderr, "ok: %d values\n", len(values))
		return nil
	}

	var out string
	if cfg.Output.Array {
		out = codec.EncodeArray(values) + "\n"
	} else {
		out = codec.EncodeAll(values)
	}
	return writeOutput(out)
}

// decodeInput reads NDJSON from file or stdin and decodes it. With
// --from-array the input is one JSON array whose elements become the stream.
func decodeInput() ([]models.Value, error) {
	if CLI.FromArray {
		data, err := readRaw()
		if err != nil {
			return nil, err
		}
		doc, err := codec.DecodeDocument(data)
		if err != nil {
			return nil, errors.NewInputError("input is not a valid JSON document", err)
		}
		arr, ok := doc.(models.Array)
		if !ok {
			return nil, errors.NewInputError(
				fmt.Sprintf("input is a JSON %s, not an array", models.Kind(doc)), nil)
		}
		return arr, nil
	}

	if CLI.Input != "" {
		lines, err := reader.ReadLines(CLI.Input)
		if err != nil {
			return nil, err
		}
		return codec.DecodeLines(lines)
	}

	data, err := readStdin()
	if err != nil {
		return nil, err
	}
	return codec.DecodeBytes(data)
}

// readRaw reads the whole input as one buffer.
func readRaw() ([]byte, error) {
	if CLI.Input != "" {
		lines, err := reader.ReadLines(CLI.Input)
		if err != nil {
			return nil, err
		}
		return []byte(strings.Join(lines, "")), nil
	}
	return readStdin()
}

func readStdin() ([]byte, error) {
	stdinInfo, err := os.Stdin.Stat()
	if err != nil {
		return nil, errors.NewInputError("failed to access stdin", err)
	}
	if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
		// Terminal with nothing piped in
		return nil, errors.NewInputError("no input provided", errors.ErrNoInput)
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.NewInputError("failed to read from stdin", err)
	}
	return data, nil
}

func printSummary(cfg *config.Config, values []models.Value) error {
	summary := report.Build(values)

	text := summary.Text()
	if cfg.Report.Format == config.FormatYAML {
		rendered, err := summary.YAML()
		if err != nil {
			return errors.NewOutputError("failed to render summary", err)
		}
		text = rendered
	}

	_, err := fmt.Fprint(os.Stderr, text)
	if err != nil {
		return errors.NewOutputError("failed to write summary", err)
	}
	return nil
}

// writeOutput writes the stream to file or stdout
func writeOutput(out string) error {
	if CLI.Output != "" {
		err := os.WriteFile(CLI.Output, []byte(out), 0644)
		if err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		return nil
	}

	_, err := fmt.Print(out)
	if err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}
