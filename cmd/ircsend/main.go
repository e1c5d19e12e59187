package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/ircsend/internal/cliconfig"
	"github.com/bft-labs/ircsend/internal/script"
	"github.com/bft-labs/ircsend/pkg/ircsend"
	"github.com/bft-labs/ircsend/pkg/log"
	"github.com/bft-labs/ircsend/pkg/numeric"
	"github.com/bft-labs/ircsend/pkg/transport"
)

const longHelp = `Format IRC client commands and server numeric replies as wire lines.

With arguments, ircsend formats a single command and writes the resulting
lines to stdout. Without arguments it reads one command per line from stdin
until EOF. A parameter starting with ':' runs to the end of the line.

Commands: msg, quit, user, kick, topic, whois, whowas, away, names, ctcp,
ctcpreply, yes, ok, no, ns, cs, identify, the simple verbs (join, part, nick,
notice, invite, mode) and every numeric reply by symbolic name.`

var exampleUsage = strings.TrimSpace(`
  ircsend msg '#go' ':hello there'
  ircsend names '#go' '#rust'
  ircsend --numerics ./numerics.toml --watch < commands.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	root, logger := newRootCommand()
	if err := root.Execute(); err != nil {
		l := logger()
		l.Error().Err(err).Msg("ircsend")
		os.Exit(1)
	}
}

// newRootCommand builds the CLI. The returned func yields the logger for the
// configured level once RunE has loaded the config.
func newRootCommand() (*cobra.Command, func() zerolog.Logger) {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger(os.Stderr, cfg.LogLevel)

	root := &cobra.Command{
		Use:          "ircsend [flags] [command [args...]]",
		Short:        "Format IRC commands and numeric replies as wire lines",
		Long:         longHelp,
		Example:      exampleUsage,
		Version:      fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, filepath.Dir(cfgFile), changed); err != nil {
					return err
				}
			}

			// IRCSEND_* override the file but not explicit flags.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger = cliconfig.Logger(cmd.ErrOrStderr(), cfg.LogLevel)
			logger.Debug().Interface("config", cfg).Msg("configuration")

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), log.NewZerologAdapterWithLogger(logger))
		},
	}

	// Everything after the command name belongs to the IRC command, so
	// parameters such as "-o" are not taken for flags.
	root.Flags().SetInterspersed(false)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.ircsend/config.toml)")
	root.Flags().StringVar(&cfg.Host, "host", cfg.Host, "host name used in USER lines")
	root.Flags().StringVar(&cfg.NumericsFile, "numerics", cfg.NumericsFile, "TOML numeric table layered over the built-in registry")
	root.Flags().IntVar(&cfg.NamesLimit, "names-limit", cfg.NamesLimit, "byte budget for one NAMES channel list")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "reload the numerics file when it changes (stdin mode)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	return root, func() zerolog.Logger { return logger }
}

func run(ctx context.Context, cfg cliconfig.Config, args []string, in io.Reader, w io.Writer, logger *log.ZerologAdapter) error {
	zl := logger.Logger()

	table, err := loadTable(cfg.NumericsFile)
	if err != nil {
		return err
	}
	surface, err := ircsend.Build(table, ircsend.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build command surface: %w", err)
	}
	holder := ircsend.NewHolder(surface)

	out := transport.NewWriter(w, cfg.Host)
	runner := script.NewRunner(out, holder, script.Config{
		NamesLimit: cfg.NamesLimit,
		Logger:     logger,
	})

	if len(args) > 0 {
		return runner.Exec(strings.Join(args, " "))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	if cfg.Watch {
		wcfg := numeric.DefaultWatcherConfig()
		wcfg.Base = numeric.Default()
		wcfg.Logger = logger
		nw := numeric.NewWatcher(cfg.NumericsFile, func(t numeric.Table) {
			s, err := ircsend.Build(t, ircsend.WithLogger(logger))
			if err != nil {
				logger.Warn("rebuild command surface", log.Err(err))
				return
			}
			holder.Store(s)
			logger.Info("command surface reloaded", log.Int("commands", s.Len()))
		}, wcfg)

		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := nw.Run(ctx); err != nil {
				logger.Error("numerics watcher stopped", log.Err(err))
			}
		}()
	}

	// Reading stdin cannot be interrupted, so the runner is abandoned on
	// signal and the process exits.
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx, in) }()

	select {
	case err = <-done:
	case <-ctx.Done():
		zl.Info().Msg("received signal, stopping")
	}

	cancel()
	wg.Wait()

	if errors.Is(err, context.Canceled) {
		err = nil
	}
	zl.Debug().Int("lines", out.Lines()).Msg("done")
	return err
}

func loadTable(path string) (numeric.Table, error) {
	table := numeric.Default()
	if path == "" {
		return table, nil
	}
	extra, err := numeric.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load numerics: %w", err)
	}
	return numeric.Merge(table, extra), nil
}
