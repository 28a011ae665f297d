package di

import (
	"context"
	"fmt"
	"io"

	"predeploy.dev/cli/internal/application/services"
	"predeploy.dev/cli/internal/core/domain"
	"predeploy.dev/cli/internal/core/drift"
	"predeploy.dev/cli/internal/core/fixtures"
	"predeploy.dev/cli/internal/core/ports"
	"predeploy.dev/cli/internal/infrastructure/config"
	"predeploy.dev/cli/internal/infrastructure/git"
	"predeploy.dev/cli/internal/interfaces/cli"
	"predeploy.dev/cli/internal/logging"
)

// Container holds all application dependencies
type Container struct {
	// Configuration
	config     domain.Config
	configPath string

	// Core services
	Comparator drift.Comparator
	Snapshots  services.Snapshots
	Validation *services.ValidationService

	// Infrastructure
	Repository ports.RepositoryInfoProvider

	// CLI
	CLIContainer *cli.CLIContainer

	Logger *logging.Logger

	logOutput io.Writer
	environ   map[string]string
}

// Option customizes a Container
type Option func(*Container)

// WithConfigPath sets the default config file. An empty path disables the file layer.
func WithConfigPath(path string) Option {
	return func(c *Container) { c.configPath = path }
}

// WithLogOutput redirects diagnostics, which go to stderr otherwise
func WithLogOutput(w io.Writer) Option {
	return func(c *Container) { c.logOutput = w }
}

// WithEnvironment replaces the process environment as the env config layer
func WithEnvironment(environ map[string]string) Option {
	return func(c *Container) { c.environ = environ }
}

// NewContainer creates the container wired with the default configuration.
// The configuration is loaded by Configure, which the CLI calls before
// running a command.
func NewContainer(opts ...Option) (*Container, error) {
	c := &Container{
		config: domain.DefaultConfig(),
		Snapshots: services.Snapshots{
			Prod:        fixtures.ProdConfig(),
			Dev:         fixtures.DevConfig(),
			QA:          fixtures.QAConfig(),
			MainProd:    fixtures.MainProdConfig(),
			FeatureProd: fixtures.FeatureBranchProdConfig(),
		},
	}

	if path, err := domain.DefaultConfigPath(); err == nil {
		c.configPath = path
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.initializeComponents(c.config); err != nil {
		return nil, fmt.Errorf("failed to initialize components: %w", err)
	}

	c.CLIContainer = &cli.CLIContainer{App: c}
	return c, nil
}

// Configure loads the layered configuration, applies the command line
// overrides, validates the result and rewires every component.
func (c *Container) Configure(ctx context.Context, overrides cli.Overrides) error {
	path := c.configPath
	if overrides.ConfigPath != "" {
		path = config.ExpandPath(overrides.ConfigPath)
	}

	loader := config.NewUnifiedLoader(config.NewConfigValidator(), config.NewFileLoader(path), c.envLoader())

	cfg, err := loader.Load(ctx)
	if err != nil {
		return err
	}
	if err := applyOverrides(&cfg, overrides); err != nil {
		return err
	}
	if err := loader.Validate(cfg); err != nil {
		return err
	}

	if err := c.initializeComponents(cfg); err != nil {
		return err
	}

	c.config = cfg
	c.configPath = path
	c.Logger.Debug().Str("config_path", path).Msg("configuration loaded")
	return nil
}

// initializeComponents builds every component for cfg
func (c *Container) initializeComponents(cfg domain.Config) error {
	logger, err := logging.New("predeploy", logging.Options{
		Level:   cfg.LogLevel,
		Console: true,
		NoColor: cfg.NoColor,
		Writer:  c.logOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	c.Logger = logger
	c.Comparator = drift.NewStructuralComparator()
	c.Repository = git.NewOriginProvider(config.ExpandPath(cfg.RepoPath), cfg.Remote, logger)
	c.Validation = services.NewValidationService(c.Comparator, c.Repository, c.Snapshots, logger)
	return nil
}

func (c *Container) envLoader() *config.EnvLoader {
	if c.environ != nil {
		return config.NewEnvLoaderFrom(c.environ)
	}
	return config.NewEnvLoader()
}

// applyOverrides layers the flag values on top of the loaded config
func applyOverrides(cfg *domain.Config, o cli.Overrides) error {
	if err := config.Merge(cfg, domain.Config{
		LogLevel: o.LogLevel,
		RepoPath: o.RepoPath,
		Remote:   o.Remote,
	}); err != nil {
		return fmt.Errorf("failed to merge flag overrides: %w", err)
	}

	// Booleans are applied directly so that --flag=false can switch off a
	// value enabled by a lower layer.
	if o.NoColor != nil {
		cfg.NoColor = *o.NoColor
	}
	if o.Panel != nil {
		cfg.Panel = *o.Panel
	}
	return nil
}

// Config implements cli.Application
func (c *Container) Config() domain.Config {
	return c.config
}

// ConfigPath implements cli.Application
func (c *Container) ConfigPath() string {
	return c.configPath
}

// ValidationService implements cli.Application
func (c *Container) ValidationService() *services.ValidationService {
	return c.Validation
}

// GetCLIContainer returns the CLI container for command execution
func (c *Container) GetCLIContainer() *cli.CLIContainer {
	return c.CLIContainer
}

var _ cli.Application = (*Container)(nil)
