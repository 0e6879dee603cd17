package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tasks-api/internal/config"
	"tasks-api/internal/logging"
	"tasks-api/internal/server"
	"tasks-api/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "tasksapi",
		Short: "An in-memory task CRUD service",
		Long: `tasksapi serves a small collection of tasks over HTTP.

ROUTES:
  GET    /api/tasks          List all tasks
  GET    /api/tasks/{id}     Get one task
  POST   /api/tasks          Create a task
  PUT    /api/tasks/{id}     Replace a task's name and completed flag
  PATCH  /api/tasks/{id}     Rename a task, optionally marking it completed
  DELETE /api/tasks/{id}     Delete a task

EXAMPLES:
  tasksapi serve                           # Listen on port 3000
  tasksapi serve --port 8080 --debug       # Listen on 8080 with debug logging
  tasksapi serve --store sqlite            # Keep tasks in an in-memory SQLite database
  tasksapi routes                          # Print the route table

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > config file > defaults

  Server Configuration:
    PORT, TASKS_PORT                       Listening port (default: 3000)
    TASKS_HOST                             Listening host (default: all interfaces)
    TASKS_READ_TIMEOUT                     Read timeout (default: 10s)
    TASKS_WRITE_TIMEOUT                    Write timeout (default: 10s)
    TASKS_SHUTDOWN_TIMEOUT                 Graceful shutdown timeout (default: 5s)

  Store Configuration:
    TASKS_STORE                            memory or sqlite (default: memory)
    TASKS_ID_STRATEGY                      length or sequence (default: length)
    TASKS_SEED                             Start with three example tasks (default: true)

  Validation Configuration:
    TASKS_NAME_MIN_LENGTH                  Min task name length (default: 3)

  Application Configuration:
    TASKS_DEBUG                            Enable debug logging (default: false)
    TASKS_LOG_FORMAT                       text, json or logfmt (default: text)
    TASKS_CONFIG                           TOML config file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.loadConfig()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the configuration loaded for the last run
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("config", "", "TOML config file (overrides TASKS_CONFIG)")

	// Server configuration
	flags.String("host", "", "Listening host (overrides TASKS_HOST)")
	flags.Int("port", 0, "Listening port (overrides PORT and TASKS_PORT)")

	// Store configuration
	flags.String("store", "", "Store backend: memory or sqlite (overrides TASKS_STORE)")
	flags.String("id-strategy", "", "Id strategy: length or sequence (overrides TASKS_ID_STRATEGY)")
	flags.Bool("seed", true, "Seed the store with example tasks (overrides TASKS_SEED)")

	// Application configuration
	flags.Bool("debug", false, "Enable debug logging (overrides TASKS_DEBUG)")
	flags.String("log-format", "", "Log format: text, json or logfmt (overrides TASKS_LOG_FORMAT)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  "Start serving the task routes until interrupted. The store starts fresh on every run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.serve(cmd)
		},
	}

	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.WriteRouteTable(cmd.OutOrStdout())
		},
	}

	r.cmd.AddCommand(serveCmd, routesCmd)
}

// serve wires the store, service and HTTP server and blocks until the
// command context is cancelled
func (r *RootCommand) serve(cmd *cobra.Command) error {
	ctx := cmd.Context()
	logger := logging.New(cmd.ErrOrStderr(), logging.OptionsFromConfig(r.config))

	// The store outlives a shutdown signal that arrives during startup
	repo, err := config.CreateRepository(context.WithoutCancel(ctx), r.config)
	if err != nil {
		return fmt.Errorf("failed to create %s store: %w", r.config.Store.Backend, err)
	}
	defer repo.Close()

	service, err := services.NewTaskServiceWithConfig(repo, r.config)
	if err != nil {
		return err
	}

	logger.Debug("configuration loaded",
		"store", r.config.Store.Backend,
		"id_strategy", r.config.Store.IDStrategy,
		"seed", r.config.Store.Seed,
	)
	return server.New(service, logger, r.config).ListenAndServe(ctx)
}

// loadConfig builds the configuration from defaults, file, environment and
// the flags the user actually set
func (r *RootCommand) loadConfig() error {
	flags := r.cmd.PersistentFlags()
	overrides := &config.ConfigOverrides{}

	if flags.Changed("host") {
		host, _ := flags.GetString("host")
		overrides.Host = &host
	}
	if flags.Changed("port") {
		port, _ := flags.GetInt("port")
		overrides.Port = &port
	}
	if flags.Changed("store") {
		backend, _ := flags.GetString("store")
		overrides.Backend = &backend
	}
	if flags.Changed("id-strategy") {
		strategy, _ := flags.GetString("id-strategy")
		overrides.IDStrategy = &strategy
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetBool("seed")
		overrides.Seed = &seed
	}
	if flags.Changed("debug") {
		debug, _ := flags.GetBool("debug")
		overrides.Debug = &debug
	}
	if flags.Changed("log-format") {
		format, _ := flags.GetString("log-format")
		overrides.LogFormat = &format
	}

	configFile, _ := flags.GetString("config")
	cfg, err := config.NewLoader().WithConfigFile(configFile).LoadWithOverrides(overrides)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	r.config = cfg
	return nil
}
