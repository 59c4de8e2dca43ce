package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/folioadmin/internal/client/inbox"
	"github.com/iudanet/folioadmin/internal/client/iocli"
	"github.com/iudanet/folioadmin/internal/client/resource"
	"github.com/iudanet/folioadmin/internal/config"
	"github.com/iudanet/folioadmin/internal/logging"
)

// BuildInfo is set via ldflags in main.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

type rootOptions struct {
	configPath string
	envFile    string
	apiURL     string
	dbPath     string
	logLevel   string
	yes        bool
}

// NewRootCommand builds the folioadmin command tree on top of io.
func NewRootCommand(info BuildInfo, io iocli.IO) *cobra.Command {
	opts := &rootOptions{}
	var cfg *config.Config

	// withCli открывает CLI на время одной команды и всегда закрывает базу
	withCli := func(fn func(ctx context.Context, c *Cli) error) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c := New(cfg, io)
			c.term.AssumeYes = opts.yes
			if err := c.Open(cmd.Context()); err != nil {
				return err
			}
			defer func() {
				if err := c.Close(); err != nil {
					c.logger.Error("failed to close database", "error", err)
				}
			}()
			return fn(cmd.Context(), c)
		}
	}
	// session оборачивает команды, которым нужна сохраненная сессия
	session := func(fn func(ctx context.Context, c *Cli, args []string) error) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return withCli(func(ctx context.Context, c *Cli) error {
				return c.run(ctx, func(ctx context.Context) error {
					return fn(ctx, c, args)
				})
			})(cmd, args)
		}
	}

	root := &cobra.Command{
		Use:           "folioadmin",
		Short:         "Portfolio administration client",
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(opts.configPath, opts.envFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			flags := cmd.Flags()
			if flags.Changed("api") {
				loaded.APIBaseURL = opts.apiURL
			}
			if flags.Changed("db") {
				loaded.DBPath = opts.dbPath
			}
			if flags.Changed("log-level") {
				loaded.LogLevel = opts.logLevel
			}
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			logging.Setup(loaded.LogLevel, nil)
			cfg = loaded
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("folioadmin %s (built %s, commit %s)\n", info.Version, info.BuildDate, info.GitCommit))

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Path to TOML config file")
	pf.StringVar(&opts.envFile, "env-file", ".env", "Path to .env file")
	pf.StringVar(&opts.apiURL, "api", config.DefaultAPIBaseURL, "Backend base URL")
	pf.StringVar(&opts.dbPath, "db", config.DefaultDBPath, "Path to local database")
	pf.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "Log level (DEBUG, INFO, WARN, ERROR)")
	pf.BoolVarP(&opts.yes, "yes", "y", false, "Answer yes to every confirmation")

	kinds := strings.Join(resource.Names(), "|")

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
	}
	var username string
	loginCmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	loginCmd.RunE = withCli(func(ctx context.Context, c *Cli) error {
		return c.Login(ctx, username)
	})

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the session",
		Args:  cobra.NoArgs,
		RunE: withCli(func(ctx context.Context, c *Cli) error {
			return c.Logout(ctx)
		}),
	}

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show session state and counts",
		Args:  cobra.NoArgs,
		RunE: withCli(func(ctx context.Context, c *Cli) error {
			return c.Status(ctx)
		}),
	}

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Load every section like the dashboard page",
		Args:  cobra.NoArgs,
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.Dashboard(ctx)
		}),
	}

	listCmd := &cobra.Command{
		Use:   "list <" + kinds + "|messages>",
		Short: "List a collection",
		Args:  cobra.ExactArgs(1),
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.List(ctx, args[0])
		}),
	}

	var addOpts FormOptions
	addCmd := &cobra.Command{
		Use:   "add <" + kinds + ">",
		Short: "Add a record",
		Args:  cobra.ExactArgs(1),
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.Add(ctx, args[0], addOpts)
		}),
	}
	addFormFlags(addCmd, &addOpts)

	var editOpts FormOptions
	editCmd := &cobra.Command{
		Use:   "edit <" + kinds + "> <id>",
		Short: "Edit a record",
		Args:  cobra.ExactArgs(2),
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.Edit(ctx, args[0], args[1], editOpts)
		}),
	}
	addFormFlags(editCmd, &editOpts)

	deleteCmd := &cobra.Command{
		Use:   "delete <" + kinds + "|messages> <id>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(2),
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.Delete(ctx, args[0], args[1])
		}),
	}

	root.AddCommand(loginCmd, logoutCmd, statusCmd, dashboardCmd, listCmd, addCmd, editCmd, deleteCmd)
	root.AddCommand(newMessagesCommand(session), newProfileCommand(session))

	root.AddCommand(&cobra.Command{
		Use:   "shell",
		Short: "Interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.Shell(ctx)
		}),
	})
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			io.Printf("folioadmin\n")
			io.Printf("Version:    %s\n", info.Version)
			io.Printf("Build Date: %s\n", info.BuildDate)
			io.Printf("Git Commit: %s\n", info.GitCommit)
		},
	})
	return root
}

type sessionRunner func(fn func(ctx context.Context, c *Cli, args []string) error) func(cmd *cobra.Command, args []string) error

func newMessagesCommand(session sessionRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Read and manage contact messages",
	}

	list := &cobra.Command{
		Use:     "list",
		Aliases: []string{"refresh"},
		Short:   "List messages",
		Args:    cobra.NoArgs,
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.List(ctx, inbox.Collection)
		}),
	}

	var toggle bool
	view := &cobra.Command{
		Use:   "view <id>",
		Short: "Read a message; unread messages are marked read",
		Args:  cobra.ExactArgs(1),
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.ViewMessage(ctx, args[0], toggle)
		}),
	}
	view.Flags().BoolVar(&toggle, "toggle", false, "Flip the read state after viewing")

	toggleCmd := &cobra.Command{
		Use:   "toggle <id>",
		Short: "Mark a message read or unread",
		Args:  cobra.ExactArgs(1),
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.ToggleMessage(ctx, args[0])
		}),
	}

	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a message",
		Args:  cobra.ExactArgs(1),
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.Delete(ctx, inbox.Collection, args[0])
		}),
	}

	cmd.AddCommand(list, view, toggleCmd, del)
	return cmd
}

func newProfileCommand(session sessionRunner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show and edit the profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		Args:  cobra.NoArgs,
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.ShowProfile(ctx)
		}),
	}

	var editOpts FormOptions
	edit := &cobra.Command{
		Use:   "edit",
		Short: "Edit the profile",
		Args:  cobra.NoArgs,
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.EditProfile(ctx, editOpts)
		}),
	}
	addFormFlags(edit, &editOpts)

	image := &cobra.Command{
		Use:   "upload-image <path>",
		Short: "Replace the profile image",
		Args:  cobra.ExactArgs(1),
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.UploadImage(ctx, args[0])
		}),
	}

	resume := &cobra.Command{
		Use:   "upload-resume <path>",
		Short: "Replace the resume",
		Args:  cobra.ExactArgs(1),
		RunE: session(func(ctx context.Context, c *Cli, args []string) error {
			return c.UploadResume(ctx, args[0])
		}),
	}

	cmd.AddCommand(show, edit, image, resume)
	return cmd
}

func addFormFlags(cmd *cobra.Command, opts *FormOptions) {
	cmd.Flags().StringArrayVar(&opts.Set, "set", nil, "Set a field: name=value (repeatable)")
	cmd.Flags().BoolVar(&opts.NoPrompt, "no-prompt", false, "Do not prompt, use --set values only")
}
