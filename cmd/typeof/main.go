package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"
	"github.com/vito/typeof/pkg/cli"
	"github.com/vito/typeof/pkg/ioctx"
	"github.com/vito/typeof/pkg/typeof"
	"github.com/vito/typeof/pkg/zapctx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Stdout = colorable.NewColorableStdout()
var Stderr = colorable.NewColorableStderr()

var flags = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)

var asJSON bool
var check string
var format string
var color string
var jobs int
var debug bool
var showVersion bool
var runRepl bool

func init() {
	flags.SetOutput(Stderr)
	flags.SortFlags = false

	flags.BoolVar(&asJSON, "json", false, "read inputs as JSON documents instead of literals")
	flags.StringVarP(&check, "check", "c", "", "exit 1 unless every value satisfies the named predicate")
	flags.StringVarP(&format, "format", "f", "", "report format: text or json")
	flags.StringVar(&color, "color", "", "colorize output: auto, always, or never")
	flags.IntVarP(&jobs, "jobs", "j", 0, "classify at most this many values at once")
	flags.BoolVar(&debug, "debug", false, "log classification verdicts")
	flags.BoolVarP(&showVersion, "version", "v", false, "print the version and exit")
	flags.BoolVarP(&runRepl, "repl", "i", false, "start an interactive session")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx = ioctx.StdoutToContext(ctx, Stdout)
	ctx = ioctx.StderrToContext(ctx, Stderr)

	err := flags.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}

		cli.WriteError(ctx, cli.FlagError{Err: err, Flags: flags})
		os.Exit(2)
	}

	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	logger := typeof.LoggerTo(Stderr, level)
	defer logger.Sync()

	ctx = zapctx.ToContext(ctx, logger)

	if showVersion {
		printVersion(ctx)
		return
	}

	err = root(ctx)
	if err != nil {
		var failed checkFailedError
		if !errors.As(err, &failed) {
			cli.WriteError(ctx, err)
		}

		os.Exit(1)
	}
}

type checkFailedError struct {
	count int
}

func (err checkFailedError) Error() string {
	return fmt.Sprintf("%d values failed the check", err.count)
}

func root(ctx context.Context) error {
	logger := zapctx.FromContext(ctx)

	config, err := typeof.LoadConfig(typeof.DefaultConfig)
	if err != nil {
		return err
	}

	if format != "" {
		config.Format = format
	}

	if color != "" {
		config.Color = color
	}

	if jobs != 0 {
		config.Jobs = jobs
	}

	if err := config.Validate(); err != nil {
		return cli.FlagError{Err: err, Flags: flags}
	}

	preds, err := config.SelectedPredicates()
	if err != nil {
		return err
	}

	renderer := cli.NewRenderer(config.Format, useColor(config.Color))

	var checkPred typeof.Predicate
	if check != "" {
		checkPred, err = typeof.LookupPredicate(check)
		if err != nil {
			return err
		}
	}

	stdinTTY := isatty.IsTerminal(os.Stdin.Fd())
	if runRepl || (flags.NArg() == 0 && stdinTTY) {
		return cli.Repl(ctx, preds, renderer)
	}

	var vals []typeof.Value
	switch {
	case flags.NArg() > 0 && asJSON:
		vals, err = cli.ReadJSONArgs(flags.Args())
	case flags.NArg() > 0:
		vals, err = cli.ReadLiterals(flags.Args())
	default:
		vals, err = cli.ReadStream(os.Stdin, "(stdin)", asJSON)
	}
	if err != nil {
		return err
	}

	logger.Debug("read values", zap.Int("count", len(vals)))

	if check != "" {
		failed := cli.Check(vals, checkPred)
		for _, val := range failed {
			logger.Debug("check failed", zap.String("predicate", check), zap.Stringer("value", val))
		}

		if len(failed) > 0 {
			return checkFailedError{len(failed)}
		}

		return nil
	}

	reports, err := cli.Classify(ctx, vals, preds, config.Jobs)
	if err != nil {
		return err
	}

	return renderer.RenderAll(ioctx.StdoutFromContext(ctx), reports)
}

func useColor(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
