// Package cli implements the docxseq command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/roboco-io/docxseq/internal/config"
	"github.com/roboco-io/docxseq/internal/extract"
	"github.com/roboco-io/docxseq/internal/logging"
	"github.com/roboco-io/docxseq/internal/parser"
)

var version = "dev"

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

var (
	rootOutput     string
	rootVerbose    bool
	rootConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "docxseq <file>",
	Short: "Print the paragraphs and tables of a .docx document in order",
	Long: `docxseq reads a Word (.docx) document and prints its paragraphs and
tables to standard output in the order they appear.

Whitespace-only paragraphs are skipped. Each table row is printed on one
line with its cells separated by " | ".

Environment variables:
  DOCXSEQ_LOG_LEVEL    log level (trace, debug, info, warn, error, disabled)
  DOCXSEQ_LOG_FORMAT   log format (console, json)
  DOCXSEQ_VERBOSE=true same as --verbose

Examples:
  docxseq report.docx
  docxseq report.docx -o report.txt
  docxseq report.docx --verbose`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docxseq %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&rootOutput, "output", "o", "", "output file path (default: stdout)")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "config file (default: ~/.docxseq/config.yaml)")

	rootCmd.AddCommand(versionCmd)
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return execute(os.Args[1:], os.Stdout, os.Stderr)
}

func execute(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	resetFlags()

	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// usage errors have already been reported by the command
		if parser.KindOf(err) != parser.KindUsage {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func resetFlags() {
	rootOutput = ""
	rootVerbose = false
	rootConfigPath = ""
	configForce = false
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Usage: %s <path_to_your_file.docx>\n", cmd.Name())
		return parser.NewError(parser.KindUsage, "", "missing file argument", nil)
	}

	inputPath := args[0]
	if parser.DetectFormat(inputPath) != parser.FormatDOCX {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: The file '%s' is not a %s file.\n", inputPath, parser.Extension)
		return parser.NewError(parser.KindUsage, inputPath, "not a .docx file", nil)
	}

	logger := newLogger(cmd.ErrOrStderr())

	out := cmd.OutOrStdout()
	if rootOutput != "" {
		f, err := os.Create(rootOutput)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	opts := parser.DefaultOptions()
	opts.Logger = logger

	ex := extract.New(out, cmd.ErrOrStderr(), extract.DocxOpener(opts), logger)
	if err := ex.Run(inputPath); err != nil {
		// reported by the extractor; not a process failure
		logger.Info().Err(err).Str("path", inputPath).Msg("extraction reported an error")
	}

	if rootOutput != "" {
		logger.Info().Str("output", rootOutput).Msg("transcript written")
	}
	return nil
}

// newLogger builds the diagnostic logger from the config file, the
// environment and --verbose, falling back to defaults on any problem.
func newLogger(stderr io.Writer) zerolog.Logger {
	cfg := config.DefaultConfig()

	if loader, err := config.Resolve(rootConfigPath); err == nil {
		loaded, err := loader.Load()
		if err != nil {
			fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
		} else {
			cfg = loaded
		}
	}

	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Warning: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}
	if rootVerbose {
		cfg.Log.Level = zerolog.DebugLevel.String()
	}

	logger, err := logging.FromConfig(stderr, cfg)
	if err != nil {
		return zerolog.Nop()
	}
	return logger
}
