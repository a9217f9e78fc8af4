// Package commands implements the CLI commands for cram.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cram/internal/app"
	"go.trai.ch/cram/internal/build"
	"go.trai.ch/cram/internal/core/domain"
)

// CLI represents the command line interface for cram.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.Options) error

	Dashboard(ctx context.Context, opts app.DashboardOptions) error

	Login(ctx context.Context, name string) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	SetProfile(ctx context.Context, name string) error
	AssignRole(ctx context.Context, user, role string) error

	ListFlashcards(ctx context.Context, f app.FlashcardFilter) error
	CreateFlashcard(ctx context.Context, in domain.FlashcardInput) error
	EditFlashcard(ctx context.Context, id string, in domain.FlashcardInput) error
	DeleteFlashcard(ctx context.Context, id string) error
	Study(ctx context.Context, topic string) error

	ListNotes(ctx context.Context, f app.NoteFilter) error
	ShowNote(ctx context.Context, id string) error
	CreateNote(ctx context.Context, in domain.NoteInput) error
	DeleteNote(ctx context.Context, id string) error

	ListQuizzes(ctx context.Context, topic string) error
	ImportQuiz(ctx context.Context, path string) error
	TakeQuiz(ctx context.Context, id string) error
	Attempts(ctx context.Context) error

	ListFiles(ctx context.Context, mine bool) error
	UploadFiles(ctx context.Context, paths []string, watchDir string) error
	DeleteFile(ctx context.Context, id string) error

	Search(ctx context.Context, term string) error
	Serve(ctx context.Context, opts app.ServeOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cram",
		Short:         "Study notes, flashcards and quizzes from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} {{.Version}} (commit %s, built %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "Path to configuration file (default ~/.config/cram/config.yaml)")
	flags.StringP("output-mode", "o", "auto", "Output mode: auto, tui, or linear")
	flags.Bool("json-log", false, "Write logs as JSON")
	flags.BoolP("verbose", "v", false, "Log debug messages and show backend calls")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newDashboardCmd())
	rootCmd.AddCommand(c.newLoginCmd())
	rootCmd.AddCommand(c.newLogoutCmd())
	rootCmd.AddCommand(c.newWhoAmICmd())
	rootCmd.AddCommand(c.newProfileCmd())
	rootCmd.AddCommand(c.newFlashcardsCmd())
	rootCmd.AddCommand(c.newNotesCmd())
	rootCmd.AddCommand(c.newQuizzesCmd())
	rootCmd.AddCommand(c.newFilesCmd())
	rootCmd.AddCommand(c.newSearchCmd())
	rootCmd.AddCommand(c.newServeCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// configure hands the global flags to the application before any command runs.
func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	configPath, _ := flags.GetString("config")
	outputMode, _ := flags.GetString("output-mode")
	jsonLog, _ := flags.GetBool("json-log")
	verbose, _ := flags.GetBool("verbose")

	return c.app.Configure(app.Options{
		ConfigPath: configPath,
		OutputMode: outputMode,
		JSONLog:    jsonLog,
		Verbose:    verbose,
	})
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// SetInput sets the input stream for the root command. Used for testing.
func (c *CLI) SetInput(in io.Reader) {
	c.rootCmd.SetIn(in)
}
