// Package cli wires the passforge command line: flag parsing, defaults from
// config, and rendering of generated passwords.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/config"
	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/service"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

type rootOptions struct {
	length         int
	count          int
	noUpper        bool
	noLower        bool
	noDigits       bool
	noSymbols      bool
	allowAmbiguous bool
	verbose        bool
	copyFirst      bool
}

// NewRootCommand builds the passforge command tree with defaults from cfg.
func NewRootCommand(cfg config.Config) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "passforge",
		Short: "Generate cryptographically strong passwords",
		Long: `passforge generates cryptographically strong passwords with configurable
character classes, ambiguous-character exclusion and entropy estimation.
Every password is guaranteed to contain at least one character from each
active category.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.length, "length", "l", cfg.Length, "password length")
	f.IntVarP(&opts.count, "count", "c", cfg.Count, "how many passwords to generate")
	f.BoolVar(&opts.noUpper, "no-upper", !cfg.Uppercase, "exclude uppercase letters")
	f.BoolVar(&opts.noLower, "no-lower", !cfg.Lowercase, "exclude lowercase letters")
	f.BoolVar(&opts.noDigits, "no-digits", !cfg.Digits, "exclude digits")
	f.BoolVar(&opts.noSymbols, "no-symbols", !cfg.Symbols, "exclude symbols")
	f.BoolVar(&opts.allowAmbiguous, "allow-ambiguous", cfg.AllowAmbiguous, "allow ambiguous characters (O/0, l/1, ...)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging and per-password entropy annotations")
	f.BoolVar(&opts.copyFirst, "copy", false, "copy the first password to the clipboard")

	cmd.AddCommand(newVersionCommand())
	return cmd
}

func runGenerate(cmd *cobra.Command, opts rootOptions) error {
	// Zero means "unset" to the service, but a flag the user typed is
	// never unset: reject explicit non-positive values here.
	if cmd.Flags().Changed("length") && opts.length < 1 {
		return crypto.ErrLengthTooShort
	}
	if cmd.Flags().Changed("count") && opts.count < 1 {
		return service.ErrCountTooSmall
	}

	req := model.GenerateRequest{
		Length:         opts.length,
		Count:          opts.count,
		Uppercase:      boolPtr(!opts.noUpper),
		Lowercase:      boolPtr(!opts.noLower),
		Digits:         boolPtr(!opts.noDigits),
		Symbols:        boolPtr(!opts.noSymbols),
		AllowAmbiguous: opts.allowAmbiguous,
	}

	svc := service.NewGeneratorService(crypto.New())
	passwords, err := svc.Generate(req)
	if err != nil {
		return err
	}

	slog.Info("generated passwords", "count", len(passwords), "length", len(passwords[0].Value))

	out := cmd.OutOrStdout()
	styled := isTerminal(out)
	for _, p := range passwords {
		if opts.verbose {
			fmt.Fprintln(out, annotateLine(p, styled))
		} else {
			fmt.Fprintln(out, p.Value)
		}
	}

	if opts.copyFirst {
		if err := clipboard.WriteAll(passwords[0].Value); err != nil {
			slog.Warn("clipboard unavailable", "error", err)
		} else {
			slog.Info("first password copied to clipboard")
		}
	}
	return nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the passforge version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "passforge "+Version)
		},
	}
}

// Execute loads defaults, runs the CLI and returns its error, if any.
func Execute() error {
	cfg := config.Load()
	cmd := NewRootCommand(cfg)
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)
	return cmd.Execute()
}

func boolPtr(b bool) *bool { return &b }
