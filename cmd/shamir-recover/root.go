package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	zap "github.com/Laisky/zap"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/renproject/shamir-recovery/caseio"
	"github.com/renproject/shamir-recovery/config"
	"github.com/renproject/shamir-recovery/log"
	"github.com/renproject/shamir-recovery/runner"
)

// ErrCasesFailed is returned when at least one case could not be solved.
var ErrCasesFailed = errors.New("cases failed")

var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "shamir-recover [dir]",
	Short: "recover shared secrets from case files",
	Long: `Recover the secret of every case file in a directory.

Each case file is a JSON document holding the threshold k and a set of
shares, where every share is a number written in some base. The secret is
the constant term of the polynomial through the first k shares.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			settings.Set(config.KeyDir, args[0])
		}

		cfg, err := config.Load(settings)
		if err != nil {
			return errors.Wrap(err, "load settings")
		}
		if cfg.Debug {
			if err := log.Shared.ChangeLevel(log.LevelDebug); err != nil {
				return errors.Wrap(err, "change logger level to debug")
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		return run(ctx, cfg, cmd.OutOrStdout())
	},
}

func init() {
	config.Defaults(settings)
	if err := config.RegisterFlags(settings, rootCmd.Flags()); err != nil {
		log.Shared.Panic("register flags", zap.Error(err))
	}
}

// Execute runs the root command and returns its error, if any.
func Execute(ctx context.Context) error {
	defer func() {
		_ = log.Shared.Sync()
	}()
	return rootCmd.ExecuteContext(ctx)
}

// run solves every case in the configured directory and writes the report.
// The report is written even when some cases fail, in which case
// ErrCasesFailed is returned afterwards.
func run(ctx context.Context, cfg config.Config, stdout io.Writer) error {
	paths, err := caseio.List(cfg.Dir)
	if err != nil {
		return errors.Wrap(err, "list case files")
	}
	log.Shared.Info("found case files",
		zap.String("dir", cfg.Dir),
		zap.Int("files", len(paths)),
		zap.String("field", cfg.Field),
		zap.Bool("consistency", cfg.Consistency))

	r := runner.New(cfg.Recoverer(), runner.WithWorkers(cfg.Workers), runner.WithLogger(log.Shared))
	report, err := r.Run(ctx, paths)
	if err != nil {
		log.Shared.Warn("run interrupted", zap.Error(err))
	}

	if err := writeReport(report, cfg, stdout); err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		return errors.Wrapf(ErrCasesFailed, "%v of %v", failed, len(report))
	}
	return err
}

func writeReport(report runner.Report, cfg config.Config, stdout io.Writer) error {
	if cfg.Out == "" {
		return report.Write(stdout, cfg.Format)
	}

	f, err := os.Create(cfg.Out)
	if err != nil {
		return errors.Wrapf(err, "create %q", cfg.Out)
	}
	if err := report.Write(f, cfg.Format); err != nil {
		_ = f.Close()
		return err
	}
	return errors.Wrapf(f.Close(), "close %q", cfg.Out)
}
