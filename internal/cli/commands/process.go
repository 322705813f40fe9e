package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treasurytools/treasuryman/pkg/config"
	"github.com/treasurytools/treasuryman/pkg/input"
	"github.com/treasurytools/treasuryman/pkg/logging"
	"github.com/treasurytools/treasuryman/pkg/pipeline"
)

// ProcessOptions holds command-line options for the process command.
type ProcessOptions struct {
	Verbose   bool
	Input     string
	Output    string
	Config    string
	Encoding  string
	LogFormat string
	Stats     bool
}

// NewProcessCommand creates the process command.
func NewProcessCommand() *cobra.Command {
	opts := &ProcessOptions{}

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Process input lines and write a JSON report",
		Long: `Process a line-delimited input file.

Each line is transformed into a result record with its length, a processing
timestamp, and a sequential item number. The collected records are written to
the output file as a pretty-printed JSON array, in input order.

Without --input the run processes zero lines; without --output the results
are computed but not written. Input files ending in .zst are decompressed,
and output files ending in .zst are compressed.

Exit codes:
  0 - Run completed (including no-op runs)
  2 - Input read, serialization, or output write failure`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, opts)
		},
	}

	// Flags
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug-level logging")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Path to input file (absent means empty input)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Path to output file (absent means no output)")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to YAML file with run defaults")
	cmd.Flags().StringVar(&opts.Encoding, "encoding", string(input.EncodingUTF8), "Input text encoding (utf-8|windows-1251|latin-1)")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "text", "Diagnostic log format (text|json)")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "Print processor stats as JSON to stderr after the run")

	return cmd
}

func runProcess(cmd *cobra.Command, opts *ProcessOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	encoding, err := input.ParseEncoding(cfg.Encoding)
	if err != nil {
		return err
	}

	logger := logging.New(cfg.Verbose, cfg.LogFormat, cmd.ErrOrStderr())

	summary, err := pipeline.Run(ctx, pipeline.Options{
		Verbose:    cfg.Verbose,
		InputPath:  cfg.Input,
		OutputPath: cfg.Output,
		Encoding:   encoding,
	}, logger)
	if err != nil {
		return err
	}

	if opts.Stats {
		encoder := json.NewEncoder(cmd.ErrOrStderr())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(summary.Stats); err != nil {
			return fmt.Errorf("printing stats: %w", err)
		}
	}

	return nil
}

// resolveConfig merges the optional config file with explicitly set flags.
// Flags the user set on the command line win over config file values.
func resolveConfig(cmd *cobra.Command, opts *ProcessOptions) (*config.Config, error) {
	cfg := config.Default()

	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose = opts.Verbose
	}
	if flags.Changed("input") {
		cfg.Input = opts.Input
	}
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if flags.Changed("encoding") {
		cfg.Encoding = opts.Encoding
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.LogFormat
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
