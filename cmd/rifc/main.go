// Command rifc stores symbol sequences as single complex coordinates and
// loads them back.
//
//	rifc store --save --label note C0DE
//	rifc load --label note
//	rifc demo --bits 34
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/rifc/internal/config"
	"github.com/katalvlaran/rifc/internal/logging"
	"github.com/katalvlaran/rifc/rifc"
)

// handler runs one command and returns the process exit code.
type handler func(e *env) int

// command registers itself on app.
type command func(app *kingpin.Application) (*kingpin.CmdClause, handler)

var commands = []command{
	storeCommand,
	loadCommand,
	demoCommand,
	listCommand,
	showCommand,
	deleteCommand,
	configCommand,
}

// env is what every handler gets after global flags are applied.
type env struct {
	cfg     config.Config
	log     *zap.Logger
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("rifc", "Reverse-iteration fractal codec: fold symbols into one complex coordinate.")
	app.HelpFlag.Short('h')
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)

	configPath := app.Flag("config", "TOML configuration file").String()
	var keyVal, originVal complexFlag
	app.Flag("key", "secret Julia-set key, e.g. -0.75+0.09i").SetValue(&keyVal)
	app.Flag("origin", "secret origin coordinate").SetValue(&originVal)
	epsilonVal := app.Flag("epsilon", "branch-search tolerance").Float64()
	alphabetVal := app.Flag("alphabet", "symbol alphabet, in index order").String()
	vaultVal := app.Flag("vault", "sqlite file holding saved ciphertexts").String()
	verboseVal := app.Flag("verbose", "debug logging with per-step trace").Short('v').Bool()

	handlers := map[string]handler{}
	for _, register := range commands {
		cmd, h := register(app)
		handlers[cmd.FullCommand()] = h
	}

	input, err := app.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "rifc: %v\n", err)
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintf(stderr, "rifc: %v\n", err)
			return 2
		}
	}
	if err = applyFlags(&cfg, keyVal, originVal, *epsilonVal, *alphabetVal, *vaultVal); err != nil {
		fmt.Fprintf(stderr, "rifc: %v\n", err)
		return 2
	}

	logger, err := logging.New(cfg.LogLevel, *verboseVal)
	if err != nil {
		fmt.Fprintf(stderr, "rifc: %v\n", err)
		return 2
	}
	defer func() { _ = logger.Sync() }()

	h, ok := handlers[input]
	if !ok {
		fmt.Fprintf(stderr, "rifc: unknown command %q\n", input)
		return 2
	}

	return h(&env{cfg: cfg, log: logger, verbose: *verboseVal, out: stdout, errOut: stderr})
}

// complexFlag records whether a complex flag was given, so that only
// explicit flags override the configuration file.
type complexFlag struct {
	config.Complex
	set bool
}

// Set implements kingpin.Value.
func (f *complexFlag) Set(s string) error {
	if err := f.Complex.Set(s); err != nil {
		return err
	}
	f.set = true

	return nil
}

// applyFlags overrides cfg with every flag the user set.
func applyFlags(cfg *config.Config, key, origin complexFlag, epsilon float64, alpha, vault string) error {
	if key.set {
		cfg.Key = key.Complex
	}
	if origin.set {
		cfg.Origin = origin.Complex
	}
	if epsilon != 0 {
		cfg.Epsilon = epsilon
	}
	if alpha != "" {
		cfg.Alphabet = alpha
	}
	if vault != "" {
		cfg.Vault = vault
	}

	return cfg.Validate()
}

// options builds codec options; the step trace is only wired in verbose mode.
func (e *env) options() *rifc.Options {
	opts := rifc.DefaultOptions()
	opts.Epsilon = e.cfg.Epsilon
	if e.verbose {
		opts.Trace = rifc.ZapTrace(e.log.Named("codec"))
	}

	return &opts
}

// fail reports err and returns exit code 1.
func (e *env) fail(err error) int {
	e.log.Debug("command failed", zap.Error(err))
	fmt.Fprintf(e.errOut, "rifc: %v\n", err)

	return 1
}
