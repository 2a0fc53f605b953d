// Command atomdump scans JavaScript-flavored source units and prints the
// atom table each one interns to.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type config struct {
	format   string
	output   string
	merge    bool
	userOnly bool
	trace    bool
	jobs     int
	timeout  time.Duration
}

func bindFlags(flags *pflag.FlagSet) *config {
	var cfg config
	flags.StringVarP(&cfg.format, "format", "f", "text", "output format: text or yaml")
	flags.StringVarP(&cfg.output, "output", "o", "-", "write output to this file instead of stdout")
	flags.BoolVar(&cfg.merge, "merge", false, "also print one table merged from every unit")
	flags.BoolVar(&cfg.userOnly, "user-only", false, "omit the common atoms from output")
	flags.BoolVar(&cfg.trace, "trace", false, "log every atom as it is interned")
	flags.IntVarP(&cfg.jobs, "jobs", "j", 4, "number of units to scan at once")
	flags.DurationVar(&cfg.timeout, "timeout", 0, "specify a time limit")
	return &cfg
}

func (cfg *config) validate(args []string) error {
	switch cfg.format {
	case "text", "yaml":
	default:
		return fmt.Errorf("unknown format %q", cfg.format)
	}
	if cfg.jobs < 1 {
		return fmt.Errorf("--jobs must be positive, got %d", cfg.jobs)
	}
	stdins := 0
	for _, arg := range args {
		if arg == "-" {
			stdins++
		}
	}
	if stdins > 1 {
		return errors.New("stdin (-) may only be named once")
	}
	return nil
}

func newRootCmd() *cobra.Command {
	var cfg *config
	cmd := &cobra.Command{
		Use:   "atomdump [flags] [file...]",
		Short: "atomdump prints the interned atom table of source units.",
		Long: `atomdump scans each named source unit (or stdin) for identifiers and string
literals, interns them into a per-unit atom set that starts out holding the
common atoms, and prints each unit's exported atom table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(args); err != nil {
				return err
			}
			ctx := cmd.Context()
			if cfg.timeout != 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
				defer cancel()
			}
			return run(ctx, cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cfg = bindFlags(cmd.Flags())
	return cmd
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var exit exitCode
		if errors.As(err, &exit) {
			return int(exit)
		}
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
