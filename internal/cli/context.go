package cli

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/artisanexperiences/vetter/internal/config"
	"github.com/artisanexperiences/vetter/internal/fs"
	"github.com/artisanexperiences/vetter/internal/ui"
	"github.com/artisanexperiences/vetter/pkg/rules"
	"github.com/artisanexperiences/vetter/pkg/validation"
)

// appFS is the filesystem commands read rulesets and values from.
var appFS fs.FS = fs.Default

// RunContext carries what a command needs to validate: the loaded config,
// the logger built from it and the filesystem.
type RunContext struct {
	CWD    string
	Config *config.Config
	Logger *log.Logger
	FS     fs.FS

	validator     *validation.Validator
	validatorOnce sync.Once
}

func OpenRunContext(cmd *cobra.Command) (*RunContext, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd, mustGetString(cmd, "config"))
	if err != nil {
		return nil, configurationError(err)
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return nil, configurationError(err)
	}

	return &RunContext{
		CWD:    cwd,
		Config: cfg,
		Logger: logger,
		FS:     appFS,
	}, nil
}

// newLogger builds the command logger. --verbose and --quiet take
// precedence over the configured level.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	if mustGetBool(cmd, "verbose") {
		level = log.DebugLevel
	}
	if mustGetBool(cmd, "quiet") {
		level = log.ErrorLevel
	}

	opts := log.Options{
		Level:  level,
		Prefix: "vetter",
	}
	if noColor {
		opts.Formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(ui.Stderr, opts), nil
}

// Validator returns a validator over the built-in rules, with default
// messages replaced by any configured in vetter.yaml.
func (c *RunContext) Validator() *validation.Validator {
	c.validatorOnce.Do(func() {
		registry := rules.Registry().WithMessages(c.Config.RuleMessages())
		c.validator = validation.New(registry, validation.WithLogger(c.Logger))
	})
	return c.validator
}
