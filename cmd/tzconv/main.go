// Package main provides the CLI for tzconv.
// tzconv reads a naive timestamp as wall-clock time in one IANA timezone and
// prints the wall-clock time of the same instant in another.
//
// Usage:
//
//	tzconv "2019/12/07 19:31:28" -f Asia/Tokyo -t Europe/London   # 2019/12/07 10:31:28
//	cat times.txt | tzconv -f Asia/Tokyo -t Europe/London         # one per line
//	tzconv - -f Asia/Tokyo -t Europe/London < times.txt           # explicit stdin
//	tzconv zones [filter]                                         # list timezones
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hlop3z/tzconv/internal/batch"
	"github.com/hlop3z/tzconv/internal/cli"
	"github.com/hlop3z/tzconv/internal/convert"
)

// version is set via ldflags during build: -ldflags="-X main.version=v1.0.0"
var version = "dev"

// stdinMarker as the TIME argument requests reading timestamps from stdin.
const stdinMarker = "-"

// env carries the process environment the commands read and write, so tests
// can run the CLI without touching the real terminal.
type env struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	piped  bool // stdin is not an interactive terminal
}

// rootFlags holds the values of the root command's flags.
type rootFlags struct {
	configFile string
	from       string
	to         string
	ambiguous  convert.Policy
	jobs       int
	verbose    bool
}

func main() {
	e := env{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		piped:  cli.StdinIsPiped(),
	}
	os.Exit(run(context.Background(), e, os.Args[1:]))
}

// run executes the CLI with args and returns the exit code.
func run(ctx context.Context, e env, args []string) int {
	rootCmd := newRootCmd(e)
	rootCmd.SetArgs(args)
	return handleError(e.stderr, rootCmd.ExecuteContext(ctx))
}

func newRootCmd(e env) *cobra.Command {
	flags := &rootFlags{}
	var cfg *Config

	rootCmd := &cobra.Command{
		Use:           "tzconv [TIME]",
		Short:         "Convert timestamps between timezones",
		Long:          `tzconv reads a YYYY/MM/DD HH:MM:SS timestamp as wall-clock time in one IANA timezone and prints the same instant as wall-clock time in another.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(flags.configFile)
			if err != nil {
				return err
			}
			cfg = loaded
			applyFlags(cmd, cfg, flags)
			setupLogging(e.stderr, cfg.LogLevel, flags.verbose)
			slog.Debug("config loaded", "file", flags.configFile, "from", cfg.From, "to", cfg.To, "ambiguous", cfg.Ambiguous)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.Context(), e, cfg, args)
		},
	}

	rootCmd.SetIn(e.stdin)
	rootCmd.SetOut(e.stdout)
	rootCmd.SetErr(e.stderr)

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != cmd.Root() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n%s", cmd.Long, cmd.UsageString())
			return
		}
		renderUsage(cmd.OutOrStdout())
	})

	rootCmd.PersistentFlags().StringVarP(&flags.configFile, "config", "c", "tzconv.yaml", "Path to config file")
	rootCmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "Log debug information to stderr")

	rootCmd.Flags().StringVarP(&flags.from, "fromtz", "f", "", "Timezone the input is written in")
	rootCmd.Flags().StringVarP(&flags.to, "totz", "t", "", "Timezone to convert to")
	rootCmd.Flags().Var(&flags.ambiguous, "ambiguous", "Repeated local times: reject, earlier or later")
	rootCmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "Lines converted in parallel when reading stdin")

	rootCmd.AddCommand(zonesCmd(e))

	return rootCmd
}

// applyFlags overrides cfg with the flags set on the command line.
func applyFlags(cmd *cobra.Command, cfg *Config, flags *rootFlags) {
	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}

	if changed("fromtz") {
		cfg.From = flags.from
	}
	if changed("totz") {
		cfg.To = flags.to
	}
	if changed("ambiguous") {
		cfg.Ambiguous = string(flags.ambiguous)
	}
	if changed("jobs") {
		cfg.Jobs = flags.jobs
	}
}

// runConvert converts a single TIME argument, or every line of stdin when TIME
// is "-" or absent with piped stdin.
func runConvert(ctx context.Context, e env, cfg *Config, args []string) error {
	fromStdin := (len(args) == 1 && args[0] == stdinMarker) || (len(args) == 0 && e.piped)

	if len(args) == 0 && !fromStdin {
		renderUsage(e.stderr)
		return usageError(e.stderr, "missing_time")
	}
	if cfg.From == "" || cfg.To == "" {
		return usageError(e.stderr, "missing_zone")
	}

	policy, err := convert.ParsePolicy(cfg.Ambiguous)
	if err != nil {
		return err
	}
	opts := []convert.Option{convert.WithPolicy(policy)}

	if fromStdin {
		slog.Debug("reading timestamps from stdin", "from", cfg.From, "to", cfg.To, "jobs", cfg.Jobs)
		_, err := batch.Run(ctx, e.stdin, e.stdout, batch.Config{
			From:        cfg.From,
			To:          cfg.To,
			Concurrency: cfg.Jobs,
			Options:     opts,
		})
		return err
	}

	out, err := convert.Convert(args[0], cfg.From, cfg.To, opts...)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.stdout, out+"\n")
	return err
}
