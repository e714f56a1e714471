package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nao1215/f1scraper/internal/config"
	"github.com/nao1215/f1scraper/internal/model"
)

// NewKindCmd creates the command of one results section with its summary
// subcommand and, for kinds with detail pages, its result subcommand.
func NewKindCmd(kind model.Kind, short string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: short,
	}

	cmd.AddCommand(newSummaryCmd(kind))
	if kind.HasResultPage() {
		cmd.AddCommand(newResultCmd(kind))
	}

	return cmd
}

func newSummaryCmd(kind model.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary [year]",
		Short: fmt.Sprintf("Print the %s summary table of each season", kind),
		Long: fmt.Sprintf(`Print the %[1]s summary table of each selected season.

A year argument is the same as --year.

Examples:
  # One season
  f1scraper %[1]s summary 1950

  # A range of seasons as JSON lines
  f1scraper %[1]s summary --year-min 1960 --year-max 1969 -f json`, kind),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyYearFlags(cmd, cfg); err != nil {
				return err
			}
			if len(args) == 1 {
				if cfg.Year, err = parseYear(args[0]); err != nil {
					return err
				}
			}

			s, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			return s.scraper.Summaries(cmd.Context(), kind, s.years(), s.emit)
		},
	}

	addYearFlags(cmd)
	return cmd
}

func newResultCmd(kind model.Kind) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result [name]",
		Short: fmt.Sprintf("Print the %s detail tables of each season", kind),
		Long: fmt.Sprintf(`Print the detail table of every %[1]s of each selected season.

The entities are taken from the season's summary page. A name argument
restricts the run to the entity whose slug or display name matches it,
ignoring case; a season without a match fails the run.

Examples:
  # Every %[1]s of 1950
  f1scraper %[1]s result --year 1950

  # A single %[1]s, by slug or by display name
  f1scraper %[1]s result %[2]s --year 1950`, kind, exampleName(kind)),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyYearFlags(cmd, cfg); err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			}

			s, err := newSession(cmd, cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			return s.scraper.Results(cmd.Context(), kind, s.years(), name, s.emit)
		},
	}

	addYearFlags(cmd)
	return cmd
}

func exampleName(kind model.Kind) string {
	switch kind {
	case model.KindDriver:
		return `"Nino Farina"`
	case model.KindTeam:
		return "ferrari"
	default:
		return "italy"
	}
}

func addYearFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("year", "y", 0, "Single season; takes precedence over the range")
	cmd.Flags().Int("year-min", config.DefaultYearMin, "First season of the range")
	cmd.Flags().Int("year-max", config.DefaultYearMax, "Last season of the range")
}

// applyYearFlags copies the year flags that were set into cfg.
func applyYearFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error
	if cmd.Flags().Changed("year") {
		if cfg.Year, err = cmd.Flags().GetInt("year"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("year-min") {
		if cfg.YearMin, err = cmd.Flags().GetInt("year-min"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("year-max") {
		if cfg.YearMax, err = cmd.Flags().GetInt("year-max"); err != nil {
			return err
		}
	}
	return nil
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", config.ErrInvalidYear, s)
	}
	return year, nil
}
