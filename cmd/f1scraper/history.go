package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/f1scraper/internal/config"
	"github.com/nao1215/f1scraper/internal/database"
	"github.com/nao1215/f1scraper/internal/report"
)

// NewHistoryCmd creates the history command.
// This command reads back the tables stored with --save.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [table-id]",
		Short: "List or print tables stored with --save",
		Long: `History reads the record database written by --save.

Without an argument it lists the stored tables, newest first. With a table
ID it prints that table again in the selected --format.

Examples:
  # List every stored table
  f1scraper history

  # List the stored 1950 race tables
  f1scraper history --year 1950 --kind race

  # Print a stored table as Markdown
  f1scraper history 12 -f markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("year", "y", 0, "Only list tables of this season")
	cmd.Flags().StringP("kind", "k", "", "Only list tables of this kind (race, driver, team, fastest-lap)")
	cmd.Flags().StringP("entity", "e", "", "Only list result tables of this entity slug or display name")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	// Validate arguments before opening database
	var id int64
	if len(args) == 1 {
		var err error
		id, err = strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid table id %q", args[0])
		}
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.DBDir == "" {
		return fmt.Errorf("configuration error: %w", config.ErrNoDBDir)
	}

	db, err := database.Open(cfg.DBDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if id != 0 {
		table, err := db.GetTable(cmd.Context(), id)
		if err != nil {
			return err
		}
		w, err := report.New(cfg.Format, cmd.OutOrStdout(), cfg.ReportOptions())
		if err != nil {
			return err
		}
		_, err = w.Write(table)
		return err
	}

	var filter database.Filter
	if filter.Year, err = cmd.Flags().GetInt("year"); err != nil {
		return err
	}
	if filter.Kind, err = cmd.Flags().GetString("kind"); err != nil {
		return err
	}
	if filter.Entity, err = cmd.Flags().GetString("entity"); err != nil {
		return err
	}

	metas, err := db.ListTables(cmd.Context(), filter)
	if err != nil {
		return err
	}

	return listTables(cmd.OutOrStdout(), metas)
}

// listTables prints one line per stored table.
func listTables(w io.Writer, metas []database.TableMetadata) error {
	if len(metas) == 0 {
		_, err := fmt.Fprintln(w, "No stored tables found.\n\nRun a summary or result command with --save to store tables.")
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Stored tables (%d):\n\n", len(metas))
	fmt.Fprintf(&b, "  %-6s  %-20s  %-5s  %s\n", "ID", "Scraped", "Rows", "Title")
	b.WriteString("  " + strings.Repeat("-", 60) + "\n")
	for _, m := range metas {
		fmt.Fprintf(&b, "  %-6d  %-20s  %-5d  %s\n",
			m.ID, m.ScrapedAt.Format("2006-01-02 15:04:05"), m.Rows, m.Title)
	}
	b.WriteString("\nUse 'f1scraper history <id>' to print a table.\n")

	_, err := io.WriteString(w, b.String())
	return err
}
