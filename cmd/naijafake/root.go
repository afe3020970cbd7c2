package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/naijafake"
	"github.com/dmitrymomot/naijafake/pkg/config"
	"github.com/dmitrymomot/naijafake/pkg/logger"
	"github.com/dmitrymomot/naijafake/pkg/validator"
)

const maxCount = 10_000

// app holds the state shared by every subcommand of one invocation.
type app struct {
	stdout io.Writer
	stderr io.Writer

	settings settings
	format   string
	count    int
	seed     uint64

	log   *slog.Logger
	faker *naijafake.Faker
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "naijafake",
		Short:         "Generate realistic Nigerian fake data",
		Long:          "naijafake prints fake Nigerian names, emails, phone numbers, plates, prices, states, schools and more.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.Uint64Var(&a.seed, "seed", 0, "seed for reproducible output (env NAIJAFAKE_SEED)")
	flags.String("source", "", "dataset source: builtin, dir or s3 (env NAIJAFAKE_SOURCE)")
	flags.String("data-dir", "", "dataset directory for --source dir (env NAIJAFAKE_DATA_DIR)")
	flags.StringVar(&a.format, "format", formatText, "output format: text, json or yaml")
	flags.IntVarP(&a.count, "count", "n", 1, "number of values to generate")

	root.AddCommand(
		a.nameCmd(),
		a.emailCmd(),
		a.phoneCmd(),
		a.plateCmd(),
		a.priceCmd(),
		a.stateCmd(),
		a.schoolCmd(),
		a.courseCmd(),
		a.degreeCmd(),
		a.facultyCmd(),
		a.maritalCmd(),
		a.religionCmd(),
		a.listCmd(),
	)
	return root
}

// setup merges env settings with flags and builds the Faker.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.Load(&a.settings); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("source") {
		a.settings.Source, _ = flags.GetString("source")
	}
	if flags.Changed("data-dir") {
		a.settings.DataDir, _ = flags.GetString("data-dir")
		if !flags.Changed("source") {
			a.settings.Source = sourceDir
		}
	}
	if !flags.Changed("seed") {
		a.seed = a.settings.Seed
	}

	if err := validator.Apply(
		validator.Range("count", a.count, 1, maxCount),
		validator.OneOf("format", a.format, formats...),
	); err != nil {
		return err
	}
	if err := a.settings.validate(); err != nil {
		return err
	}
	a.format = strings.ToLower(strings.TrimSpace(a.format))

	a.log = logger.New(
		logger.WithEnvironment(a.settings.AppEnv, "naijafake"),
		logger.WithLevelName(a.settings.LogLevel),
		logger.WithFormat(logger.Format(strings.ToLower(strings.TrimSpace(a.settings.LogFormat)))),
		logger.WithOutput(a.stderr),
		logger.WithContextExtractors(logger.DatasetExtractor),
	)

	ctx := cmd.Context()
	src, err := a.settings.openSource(ctx)
	if err != nil {
		return err
	}

	opts := []naijafake.Option{
		naijafake.WithSource(src),
		naijafake.WithLogger(a.log),
	}
	if a.seed != 0 {
		opts = append(opts, naijafake.WithSeed(a.seed))
	}

	a.faker, err = naijafake.New(ctx, opts...)
	return err
}

// repeat prints the result of gen a.count times. The output is closed even
// when gen fails, so values printed before the failure are complete.
func (a *app) repeat(gen func() (any, error)) error {
	p := newPrinter(a.stdout, a.format)
	err := a.emit(p, gen)
	if cerr := p.close(); err == nil {
		err = cerr
	}
	return err
}

func (a *app) emit(p *printer, gen func() (any, error)) error {
	for range a.count {
		v, err := gen()
		if err != nil {
			return err
		}
		if err := p.print(v); err != nil {
			return err
		}
	}
	return nil
}
