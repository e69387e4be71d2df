package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dshills/glint/internal/config"
	"github.com/dshills/glint/internal/notify"
	"github.com/dshills/glint/internal/tui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Open the interactive review demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(nil)
		if err != nil {
			return err
		}

		// The screen belongs to the UI, so logs only go to log.file.
		log, err := newLogger(cfg, true)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		gen, err := newGenerator(cfg)
		if err != nil {
			return err
		}

		log.Info("demo started", zap.Int("delay_ms", cfg.Demo.DelayMs))
		if err := tui.Run(tui.Options{Config: cfg, Logger: log, Generator: gen}); err != nil {
			_ = notify.Print(cmd.ErrOrStderr(), notify.KindError, err.Error())
			exitCode = ExitRuntimeError
		}
		return nil
	},
}
