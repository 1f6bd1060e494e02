package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"biodex/internal/config"
	"biodex/internal/debug"
	appErrors "biodex/internal/errors"
	"biodex/internal/store"
	"biodex/internal/ui"
	"biodex/internal/ui/theme"
)

type rootFlags struct {
	driver       string
	dbPath       string
	dsn          string
	restURL      string
	outputFormat string
	author       string
	debug        bool
}

// cli carries the I/O and collaborators shared by every command. Tests swap
// the client constructor, the program factory and the confirmation prompt.
type cli struct {
	flags rootFlags

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	newClient  func(ctx context.Context, opts store.Options) (store.Client, error)
	newProgram programFactory
	confirm    func(c *cli, title, description string) (bool, error)
	isTTY      func(r io.Reader) bool
}

func newCLI() *cli {
	return &cli{
		in:        os.Stdin,
		out:       os.Stdout,
		errOut:    os.Stderr,
		newClient: store.NewClient,
		newProgram: func(app *ui.App) programRunner {
			return tea.NewProgram(app, tea.WithAltScreen())
		},
		confirm: confirmPrompt,
		isTTY:   readerIsTerminal,
	}
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "biodex",
		Short:         "Species and user catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Browse and edit the catalog interactively
  biodex

  # Scriptable commands
  biodex species list
  biodex species add --scientific-name "Cavia porcellus" --population 300000
  biodex users show ada@example.com
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return c.runTUI(cmd.Context())
		},
	}
	cmd.SetIn(c.in)
	cmd.SetOut(c.out)
	cmd.SetErr(c.errOut)

	f := cmd.PersistentFlags()
	f.StringVar(&c.flags.driver, "driver", "", "Database driver ("+strings.Join(config.Drivers, ", ")+")")
	f.StringVar(&c.flags.dbPath, "db-path", "", "Path to the SQLite database file")
	f.StringVar(&c.flags.dsn, "dsn", "", "Postgres or MySQL connection string")
	f.StringVar(&c.flags.restURL, "rest-url", "", "Base URL of a PostgREST service")
	f.StringVar(&c.flags.outputFormat, "output-format", "", "Markdown style for descriptions (rich, light, plain)")
	f.StringVar(&c.flags.author, "author", "", "User id recorded on created species")
	f.BoolVar(&c.flags.debug, "debug", false, "Write a debug log to ~/.biodex/debug.log")

	cmd.AddCommand(newSpeciesCmd(c))
	cmd.AddCommand(newUsersCmd(c))
	cmd.AddCommand(newVersionCmd(c))
	return cmd
}

// setup loads configuration and applies flag overrides before any command
// runs.
func (c *cli) setup() error {
	if err := config.Initialize(); err != nil {
		return fmt.Errorf("initialize config: %w", err)
	}
	overrides := map[string]any{
		config.KeyDatabaseDriver: c.flags.driver,
		config.KeyDatabasePath:   c.flags.dbPath,
		config.KeyDatabaseDSN:    c.flags.dsn,
		config.KeyRestURL:        c.flags.restURL,
		config.KeyOutputFormat:   c.flags.outputFormat,
		config.KeyAuthorID:       c.flags.author,
	}
	if c.flags.debug {
		overrides[config.KeyDebug] = true
	}
	if err := config.ApplyOverrides(overrides); err != nil {
		return fmt.Errorf("apply flags: %w", err)
	}
	if err := config.Validate(); err != nil {
		return appErrors.New(appErrors.CodeConfigurationError, err.Error(), err)
	}
	if err := debug.Init(config.GetBool(config.KeyDebug)); err != nil {
		fmt.Fprintf(c.errOut, "warning: debug log disabled: %v\n", err)
	}
	if debug.Enabled() {
		if path, err := debug.LogPath(); err == nil {
			fmt.Fprintf(c.errOut, "debug log: %s\n", path)
		}
	}
	if name := config.GetString(config.KeyTheme); !theme.SetTheme(name) {
		fmt.Fprintf(c.errOut, "warning: unknown theme %q (available: %s)\n", name, strings.Join(theme.Available(), ", "))
		debug.Logf("unknown theme %q, keeping %s", name, theme.CurrentName())
	}
	return nil
}

func (c *cli) storeOptions() store.Options {
	return store.Options{
		Driver: config.GetString(config.KeyDatabaseDriver),
		Path:   config.GetString(config.KeyDatabasePath),
		DSN:    config.GetString(config.KeyDatabaseDSN),
		URL:    config.GetString(config.KeyRestURL),
		APIKey: config.GetString(config.KeyRestAPIKey),
	}
}

func (c *cli) openClient(ctx context.Context) (store.Client, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := c.newClient(ctx, c.storeOptions())
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", c.storeOptions().Driver, err)
	}
	return client, nil
}

// author returns the configured user id. An unset id is uuid.Nil.
func (c *cli) author() (uuid.UUID, error) {
	raw := strings.TrimSpace(config.GetString(config.KeyAuthorID))
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, appErrors.New(appErrors.CodeConfigurationError,
			fmt.Sprintf("invalid %s %q", config.KeyAuthorID, raw), err)
	}
	return id, nil
}

// sourceLabel names the backend for the footer.
func (c *cli) sourceLabel() string {
	opts := c.storeOptions()
	switch opts.Driver {
	case "rest":
		return "rest " + opts.URL
	case "postgres", "mysql":
		return opts.Driver
	default:
		return "sqlite " + opts.Path
	}
}
