package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/glint/internal/config"
	"github.com/dshills/glint/internal/notify"
	"github.com/dshills/glint/internal/output"
	"github.com/dshills/glint/internal/redact"
	"github.com/dshills/glint/internal/review"
)

var (
	flagLang     string
	flagFormat   string
	flagOut      string
	flagFailOn   string
	flagExtended bool
	flagRules    string
	flagDelay    time.Duration
)

var reviewCmd = &cobra.Command{
	Use:   "review [file|-]",
	Short: "Review a code snippet from a file or stdin",
	Long: "Review a code snippet. With no argument, or with -, the snippet is read from stdin. " +
		"The language comes from --lang, then the file extension, then the config default.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides(cmd))
		if err != nil {
			return err
		}

		log, err := newLogger(cfg, false)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		path := "-"
		if len(args) == 1 {
			path = args[0]
		}
		src, err := readSource(cmd.InOrStdin(), path)
		if err != nil {
			_ = notify.Print(cmd.ErrOrStderr(), notify.KindError, err.Error())
			exitCode = ExitRuntimeError
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		exitCode = runReview(ctx, src, path, cfg, log, cmd.OutOrStdout(), cmd.ErrOrStderr())
		return nil
	},
}

// buildOverrides maps the review flags set on cmd to config keys.
func buildOverrides(cmd *cobra.Command) map[string]string {
	m := make(map[string]string)
	if flagLang != "" {
		m["language"] = flagLang
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagFailOn != "" {
		m["fail_on"] = flagFailOn
	}
	if flagExtended {
		m["extended"] = "true"
	}
	if flagRules != "" {
		m["rules_file"] = flagRules
	}
	if f := cmd.Flags().Lookup("delay"); f != nil && f.Changed {
		m["review.delay_ms"] = strconv.FormatInt(flagDelay.Milliseconds(), 10)
	}
	return m
}

func readSource(stdin io.Reader, path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading source file: %w", err)
	}
	return string(data), nil
}

var extLanguages = map[string]string{
	".js":   "javascript",
	".jsx":  "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".ts":   "typescript",
	".tsx":  "typescript",
	".py":   "python",
	".java": "java",
	".cpp":  "cpp",
	".cc":   "cpp",
	".cxx":  "cpp",
	".hpp":  "cpp",
	".cs":   "csharp",
	".go":   "go",
	".rs":   "rust",
}

// languageFromPath infers a language tag from a file extension.
func languageFromPath(path string) string {
	return extLanguages[strings.ToLower(filepath.Ext(path))]
}

// resolveLanguage picks --lang, then the file extension, then the config default.
func resolveLanguage(cfg config.Config, path string) string {
	if flagLang != "" {
		return cfg.Language
	}
	if lang := languageFromPath(path); lang != "" {
		return lang
	}
	return cfg.Language
}

// runReview reviews src and writes the report to flagOut, or to stdout when
// no output file is set. It returns the process exit code.
func runReview(ctx context.Context, src, path string, cfg config.Config, log *zap.Logger, stdout, stderr io.Writer) int {
	if _, err := output.GetWriter(cfg.Format); err != nil {
		_ = notify.Print(stderr, notify.KindError, err.Error())
		return ExitUsageError
	}

	lang := resolveLanguage(cfg, path)
	if !review.IsKnownLanguage(lang) {
		msg := fmt.Sprintf("unknown language %q; only generic checks apply", lang)
		if s := review.SuggestLanguage(lang); s != "" {
			msg = fmt.Sprintf("unknown language %q; did you mean %q?", lang, s)
		}
		fmt.Fprint(stderr, pterm.Warning.Sprintln(msg))
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		_ = notify.Print(stderr, notify.KindError, err.Error())
		return ExitUsageError
	}

	delay := cfg.Review.Delay()
	var spinner *pterm.SpinnerPrinter
	if delay > 0 && strings.TrimSpace(src) != "" {
		spinner, _ = pterm.DefaultSpinner.WithWriter(stderr).Start("Analyzing...")
	}

	log.Debug("review started",
		zap.String("language", lang),
		zap.Duration("delay", delay),
		zap.String("excerpt", redact.Excerpt(src, 80)))

	report, err := review.Run(ctx, review.Input{Source: src, Language: lang}, gen, delay)
	if spinner != nil {
		_ = spinner.Stop()
	}
	if err != nil {
		if errors.Is(err, review.ErrEmptyInput) {
			_ = notify.Print(stderr, notify.KindError, "Please enter some code to review")
			return ExitUsageError
		}
		log.Error("review failed", zap.Error(err))
		_ = notify.Print(stderr, notify.KindError, err.Error())
		return ExitRuntimeError
	}

	counts := report.Result.Counts
	log.Info("review complete",
		zap.String("run_id", report.RunID),
		zap.Int("total", counts.Total),
		zap.Int("issues", counts.Issues),
		zap.Int("security", counts.Security),
		zap.Int("suggestions", counts.Suggestions))

	if err := output.WriteReport(report, cfg.Format, flagOut, stdout); err != nil {
		_ = notify.Print(stderr, notify.KindError, fmt.Sprintf("writing output: %v", err))
		return ExitRuntimeError
	}

	if cfg.FailOn != "none" && cfg.FailOn != "" {
		for _, f := range report.Result.Findings {
			if review.MeetsThreshold(f.Severity, cfg.FailOn) {
				return ExitFindings
			}
		}
	}
	return ExitSuccess
}

func init() {
	reviewCmd.Flags().StringVar(&flagLang, "lang", "", "Language of the snippet (see 'glint languages')")
	reviewCmd.Flags().StringVar(&flagFormat, "format", "", "Output format ("+strings.Join(output.Formats(), ", ")+")")
	reviewCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: stdout)")
	reviewCmd.Flags().StringVar(&flagFailOn, "fail-on", "", "Fail on severity threshold (none, low, medium, high, critical)")
	reviewCmd.Flags().BoolVar(&flagExtended, "extended", false, "Enable the extended check battery")
	reviewCmd.Flags().StringVar(&flagRules, "rules", "", "Rules file path")
	reviewCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Simulated analysis latency (e.g. 2s)")
}
