package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jharland/commit-pilot/internal/app"
	"github.com/jharland/commit-pilot/internal/config"
	"github.com/jharland/commit-pilot/internal/gitexec"
	"github.com/jharland/commit-pilot/internal/llm/openai"
	"github.com/jharland/commit-pilot/internal/observability"
	"github.com/jharland/commit-pilot/internal/prompt"
	"github.com/jharland/commit-pilot/internal/security"
	"github.com/jharland/commit-pilot/internal/ui"
)

var (
	setupFlag bool
	gpgSign   bool
)

var rootCmd = &cobra.Command{
	Use:   "commit-pilot",
	Short: "AI-assisted commit messages for staged changes",
	Long: `commit-pilot reads your staged changes, asks a generation service for a
commit message, shows it for review, and commits on your approval.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if setupFlag {
			return runSetup()
		}
		return runCommit(cmd.Context(), gpgSign)
	},
}

func init() {
	rootCmd.Flags().BoolVar(&setupFlag, "setup", false, "run the interactive setup wizard")
	rootCmd.Flags().BoolVarP(&gpgSign, "gpg-sign", "S", false, "GPG-sign the commit")
}

// Execute runs the root command, printing any error as a single status line.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗ %v", err))
		observability.Logger().Printf("run failed: %v", observability.RedactForLog(err.Error()))
		return err
	}
	return nil
}

// runSetup drives the wizard and persists the record only after the final
// confirmation. Aborting mid-way writes nothing.
func runSetup() error {
	p := tea.NewProgram(ui.NewSetup())
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("setup: %w", err)
	}

	sm, ok := finalModel.(*ui.SetupModel)
	if !ok {
		return fmt.Errorf("setup: unexpected model type")
	}

	cfg, confirmed := sm.Result()
	if !confirmed {
		fmt.Println(color.YellowString("Setup cancelled — nothing saved."))
		return nil
	}

	path, err := config.Save(cfg)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Printf("%s Saved config to %s\n", color.GreenString("✓"), path)
	return nil
}

// runCommit is the main flow: load config → collect staged changes → build
// prompt → generate → review → commit. Every failure aborts with one
// message; nothing is retried.
func runCommit(ctx context.Context, sign bool) error {
	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissing) {
			fmt.Println(color.YellowString("No configuration found — run `commit-pilot --setup` first."))
			return nil
		}
		return err
	}

	if cfg.Provider != config.ProviderOpenAI {
		return fmt.Errorf("unsupported provider %q (only %q is supported; re-run `commit-pilot --setup`)", cfg.Provider, config.ProviderOpenAI)
	}

	git := gitexec.New()
	collector := app.NewCollector(git, ".")
	changes, err := collector.Collect(ctx)
	if err != nil {
		if errors.Is(err, app.ErrNothingStaged) {
			fmt.Println(color.YellowString("Nothing staged — stage changes with `git add` first."))
			return nil
		}
		return err
	}

	gen, err := openai.NewClient(cfg.APIKey)
	if err != nil {
		return err
	}

	// Secrets are scrubbed before any content leaves the machine.
	red := security.NewRedactor()
	promptText := prompt.Build(red.Redact(changes.FileContents), red.Redact(changes.Diff), cfg.CommitTypes)

	p := tea.NewProgram(ui.NewFlow(gen, git, promptText, sign))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("review: %w", err)
	}

	flow, ok := finalModel.(*ui.Flow)
	if !ok {
		return fmt.Errorf("review: unexpected model type")
	}

	res := flow.Result()
	switch {
	case res.Err != nil:
		return res.Err
	case !res.Approved:
		fmt.Println(color.YellowString("Cancelled — no commit made."))
		return nil
	default:
		if res.Warning != "" {
			// git spoke on stderr but the commit went through (hook
			// output and the like); surface it without failing.
			fmt.Println(color.YellowString("git: %s", res.Warning))
			observability.Logger().Printf("commit warning: %s", observability.Snip(observability.RedactForLog(res.Warning), 600))
		}
		fmt.Println(color.GreenString("✓ Committed."))
		return nil
	}
}
