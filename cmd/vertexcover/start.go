package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/graphsat/vertexcover/config"
	"github.com/graphsat/vertexcover/pkg/cover"
	"github.com/graphsat/vertexcover/pkg/lib/signals"
	"github.com/graphsat/vertexcover/pkg/metrics"
	"github.com/graphsat/vertexcover/pkg/sat"
	"github.com/graphsat/vertexcover/pkg/session"
	"github.com/graphsat/vertexcover/pkg/version"
)

type options struct {
	configPath               string
	backend                  string
	exitOnInvalidVertexCount bool
	debug                    bool
	trace                    bool
	dumpDir                  string
	metricsFile              string
	cacheSize                int
	version                  bool
}

func newRootCmd() *cobra.Command {
	o := options{}

	cmd := &cobra.Command{
		Use:   "vertexcover [input-file]",
		Short: "Prints a minimum vertex cover after every edge update",
		Long: `Reads graph commands, one per line, from the input file or stdin:

  V <n>                  set the vertex count, clearing all edges
  E {<a,b>,<c,d>,...}    replace the edge set

After every non-empty edge set a minimum vertex cover is written to
stdout, vertices in ascending order.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.version {
				fmt.Fprint(cmd.OutOrStdout(), version.String())
				return nil
			}

			cfg, err := o.config(cmd)
			if err != nil {
				return err
			}

			logger := logrus.New()
			logger.SetOutput(cmd.ErrOrStderr())
			if cfg.Debug {
				logger.SetLevel(logrus.DebugLevel)
			}
			logger.Debugf("log level %s", logger.Level)

			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrapf(err, "opening input %s", args[0])
				}
				defer f.Close()
				in = f
			}

			return run(signals.Context(), cfg, logger, in, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVar(&o.configPath, "config", "", "path to a YAML config file, environment variables in the path are expanded")
	cmd.Flags().StringVar(&o.backend, "backend", sat.Gini, fmt.Sprintf("sat backend, one of %s", strings.Join(sat.Names(), ", ")))
	cmd.Flags().BoolVar(&o.exitOnInvalidVertexCount, "exit-on-invalid-vertex-count", true, "stop reading input when a vertex count below 2 is given")
	cmd.Flags().BoolVar(&o.debug, "debug", false, "use debug log level")
	cmd.Flags().BoolVar(&o.trace, "trace", false, "log every cover size attempt")
	cmd.Flags().StringVar(&o.dumpDir, "dump-dir", "", "write every encoded formula to this directory in DIMACS format")
	cmd.Flags().StringVar(&o.metricsFile, "metrics-file", "", "write prometheus metrics to this file when the input ends")
	cmd.Flags().IntVar(&o.cacheSize, "cache-size", 0, "number of covers to remember by graph content, 0 disables the cache")
	cmd.Flags().BoolVar(&o.version, "version", false, "displays the vertexcover version")

	return cmd
}

// config loads the config file, if any, and applies explicitly set
// flags on top of it.
func (o *options) config(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.LoadConfig(o.configPath); err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend = o.backend
	}
	if flags.Changed("exit-on-invalid-vertex-count") {
		cfg.ExitOnInvalidVertexCount = &o.exitOnInvalidVertexCount
	}
	if flags.Changed("debug") {
		cfg.Debug = o.debug
	}
	if flags.Changed("trace") {
		cfg.Trace = o.trace
	}
	if flags.Changed("dump-dir") {
		cfg.DumpDir = o.dumpDir
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = o.metricsFile
	}
	if flags.Changed("cache-size") {
		cfg.CacheSize = o.cacheSize
	}
	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg *config.Config, logger *logrus.Logger, in io.Reader, out, diag io.Writer) (err error) {
	registry := prometheus.NewRegistry()
	metrics.Register(registry)
	if cfg.MetricsFile != "" {
		defer func() {
			if werr := metrics.WriteFile(cfg.MetricsFile, registry); werr != nil {
				logger.WithError(werr).Warn("unable to write metrics")
				if err == nil {
					err = werr
				}
			}
		}()
	}

	factory, err := sat.NewFactory(cfg.Backend)
	if err != nil {
		return err
	}
	tracer := cover.Tracers{cover.MetricsTracer{}}
	if cfg.Trace {
		tracer = append(tracer, cover.LoggingTracer{Logger: logger})
	}
	searcher, err := cover.New(
		cover.WithBackend(factory),
		cover.WithTracer(tracer),
		cover.WithLogger(logger),
		cover.WithDumpDir(cfg.DumpDir),
		cover.WithCache(cfg.CacheSize),
	)
	if err != nil {
		return err
	}

	s, err := session.New(
		session.WithCoverer(cover.NewInstrumentedCoverer(searcher, metrics.EmitSearchSuccess, metrics.EmitSearchFailure)),
		session.WithOutput(out),
		session.WithDiagnostics(diag),
		session.WithLogger(logger),
		session.WithExitOnInvalidVertexCount(cfg.ExitOnInvalid()),
	)
	if err != nil {
		return err
	}

	logger.WithField("backend", cfg.Backend).Debug("reading commands")
	return s.Run(ctx, in)
}
