package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/f1scraper/internal/config"
	"github.com/nao1215/f1scraper/internal/model"
	"github.com/nao1215/f1scraper/internal/report"
)

// NewRootCmd creates the root command for f1scraper.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "f1scraper",
		Short: "Scrape the Formula 1 results archive",
		Long: `f1scraper reads the results archive of formula1.com and prints the rows
of its season tables: race calendars and classifications, the drivers' and
constructors' championships and the fastest lap awards.

Pages are fetched one at a time. Any failure aborts the run.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	flags := cmd.PersistentFlags()
	flags.CountP("verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	flags.Bool("log-json", false, "Write logs as JSON")
	flags.StringP("config", "c", "",
		"Configuration file path (default: .f1scraper in current or home directory)")
	flags.String("base-url", config.DefaultBaseURL, "Origin of the results archive")
	flags.Duration("timeout", config.DefaultTimeout, "Timeout for each page request")
	flags.String("user-agent", config.DefaultUserAgent, "User-Agent header sent with requests")
	flags.Int64("max-body-size", config.DefaultMaxBodySize, "Largest accepted page in bytes")
	flags.StringP("format", "f", config.DefaultFormat, "Output format (text, json, markdown, table)")
	flags.Bool("links", false, "Append entity links to summary rows of text output")
	flags.String("table-style", report.DefaultTableStyle,
		"Border style of table output ("+strings.Join(report.TableStyles, ", ")+")")
	flags.StringP("output", "o", "", "Write output to the given file instead of stdout")
	flags.Bool("save", false, "Also store every decoded table in the record database")
	flags.String("db-dir", "", "Record database directory (default: XDG data directory)")
	flags.Bool("skip-unresolved", false, "Skip summary rows whose entity link cannot be resolved")

	// Add subcommands
	cmd.AddCommand(NewKindCmd(model.KindRace, "Race calendar and race classifications"))
	cmd.AddCommand(NewKindCmd(model.KindDriver, "Drivers' championship and driver seasons"))
	cmd.AddCommand(NewKindCmd(model.KindTeam, "Constructors' championship and team seasons"))
	cmd.AddCommand(NewKindCmd(model.KindFastestLap, "Fastest lap awards"))
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and returns the process exit code.
// SIGINT and SIGTERM cancel the run.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, NewRootCmd(), os.Args[1:])
}

func execute(ctx context.Context, root *cobra.Command, args []string) int {
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "process command %q: %v\n", cmd.CommandPath(), err)
		return 1
	}
	return 0
}
