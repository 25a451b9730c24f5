package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/haytac/devmoji/internal/commit"
	"github.com/haytac/devmoji/internal/config"
	"github.com/haytac/devmoji/internal/gitrepo"
	"github.com/haytac/devmoji/internal/logging"
	"github.com/haytac/devmoji/internal/moji"
)

var (
	cfgFile    string
	logLevel   string
	textFlag   string
	formatName string
	editMode   bool
	logMode    bool
	lintMode   bool
	commitMode bool
	noCommit   bool
	colorMode  bool
	noColor    bool

	// AppCfg is populated in PersistentPreRunE and shared by all
	// commands for the duration of one invocation.
	AppCfg *config.Config
)

var RootCmd = &cobra.Command{
	Use:   "devmoji",
	Short: "Emojify conventional commits",
	Long: `devmoji rewrites conventional-commit headers (type(scope)!: description)
with emoji from a configurable vocabulary, and converts text between
unicode, shortcode, devmoji and stripped encodings.

Reads from --text, --edit (.git/COMMIT_EDITMSG) or stdin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(logging.Config{Level: logLevel, TimeFormat: "15:04:05"})
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		AppCfg = loaded
		return nil
	},
	RunE: runRoot,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "location of the devmoji.config file")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	RootCmd.Flags().StringVarP(&textFlag, "text", "t", "", "text to format (reads from stdin when omitted)")
	RootCmd.Flags().StringVarP(&formatName, "format", "f", "unicode", "output format: unicode, shortcode, devmoji, strip")
	RootCmd.Flags().BoolVarP(&editMode, "edit", "e", false, "rewrite the last commit message in .git/COMMIT_EDITMSG")
	RootCmd.Flags().BoolVar(&logMode, "log", false, "format conventional commits in git log output")
	RootCmd.Flags().BoolVar(&lintMode, "lint", false, "lint the conventional commit header")
	RootCmd.Flags().BoolVar(&commitMode, "commit", true, "process conventional commit headers")
	RootCmd.Flags().BoolVar(&noCommit, "no-commit", false, "do not process conventional commit headers")
	RootCmd.Flags().BoolVar(&colorMode, "color", false, "use colors for terminal output")
	RootCmd.Flags().BoolVar(&noColor, "no-color", false, "do not use colors")

	RootCmd.AddCommand(NewListCmd())
}

func runRoot(cmd *cobra.Command, args []string) error {
	enc, err := moji.ParseEncoding(formatName)
	if err != nil {
		return err
	}

	resolver := moji.NewResolver(AppCfg.Devmojis)
	formatter := commit.NewFormatter(resolver)
	linter := commit.NewLinter(AppCfg.Types)

	commitEnabled := commitMode && !noCommit
	useColor := resolveColor(cmd)
	color.NoColor = !useColor

	if editMode {
		return runEdit(cmd, resolver, formatter, enc, commitEnabled, useColor)
	}

	if cmd.Flags().Changed("text") {
		out, err := processText(resolver, formatter, linter, textFlag, options{
			commit: commitEnabled,
			log:    logMode,
			lint:   lintMode,
			color:  useColor,
			enc:    enc,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	}

	if stdinPiped() {
		return runStdin(cmd, resolver, formatter, linter, commitEnabled, enc, useColor)
	}

	return errors.New("no input provided: use --text, --edit, or pipe input via stdin")
}

type options struct {
	commit bool
	log    bool
	lint   bool
	color  bool
	enc    moji.Encoding
}

// processText converts one chunk of input. Lint diagnostics surface
// as an error whose message is the joined diagnostic list.
func processText(resolver *moji.Resolver, formatter *commit.Formatter, linter *commit.Linter, text string, opts options) (string, error) {
	if opts.lint && opts.commit && !opts.log {
		if diags := linter.Lint(text); len(diags) > 0 {
			return "", errors.New(strings.Join(diags, "\n"))
		}
	}

	var result string
	switch {
	case opts.log:
		result = formatter.FormatLog(text, opts.color)
	case opts.commit:
		result = formatter.FormatCommit(text, opts.color)
	default:
		return opts.enc.Apply(resolver, text), nil
	}
	return opts.enc.Apply(resolver, result), nil
}

// runStdin processes piped input line by line. Only the first line is
// treated as a commit header unless --log is set.
func runStdin(cmd *cobra.Command, resolver *moji.Resolver, formatter *commit.Formatter, linter *commit.Linter, commitEnabled bool, enc moji.Encoding, useColor bool) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	first := true
	for scanner.Scan() {
		opts := options{commit: false, log: logMode, lint: false, color: useColor, enc: enc}
		if first {
			opts.commit = commitEnabled
			opts.lint = lintMode
		}
		out, err := processText(resolver, formatter, linter, scanner.Text(), opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		first = false
	}
	return scanner.Err()
}

// runEdit rewrites .git/COMMIT_EDITMSG in place and echoes the first
// line of the result, colored for the terminal.
func runEdit(cmd *cobra.Command, resolver *moji.Resolver, formatter *commit.Formatter, enc moji.Encoding, commitEnabled, useColor bool) error {
	gitDir, err := gitrepo.FindGitDir()
	if err != nil {
		return err
	}
	text, err := gitrepo.ReadCommitMessage(gitDir)
	if err != nil {
		return err
	}

	var formatted string
	if commitEnabled {
		formatted = enc.Apply(resolver, formatter.FormatCommit(text, false))
	} else {
		formatted = enc.Apply(resolver, text)
	}
	if err := gitrepo.WriteCommitMessage(gitDir, formatted); err != nil {
		return err
	}

	display := formatted
	if commitEnabled && useColor {
		display = enc.Apply(resolver, formatter.FormatCommit(text, true))
	}
	firstLine, _, _ := strings.Cut(display, "\n")
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.GreenString("✔"), firstLine)
	return nil
}

// resolveColor implements the --color/--no-color pair with a tty
// default, so hook output stays plain when redirected.
func resolveColor(cmd *cobra.Command) bool {
	if noColor {
		return false
	}
	if cmd.Flags().Changed("color") {
		return colorMode
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func stdinPiped() bool {
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}
