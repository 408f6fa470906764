package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubsync/internal/archive"
	"github.com/pdiddy/pubsync/internal/snapshot"
	"github.com/pdiddy/pubsync/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index [snapshot]",
	Short: "Load a snapshot into a SQLite database and query it",
	Long: `index loads a snapshot written by pubsync (default: the --out path) into a
local SQLite database, replacing any earlier load for the same ORCID iD.
With --query, --type, or --year it searches the database instead of loading.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().String("db", "publications.db", "SQLite database file")
	indexCmd.Flags().String("query", "", "case-insensitive title or DOI substring")
	indexCmd.Flags().String("type", "", "filter by work type")
	indexCmd.Flags().Int("year", 0, "filter by publication year")
	indexCmd.Flags().Int("max-results", 20, "maximum number of query results")

	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	store, err := archive.Open(types.IndexConfig{DBPath: dbPath, MaxResults: maxResults})
	if err != nil {
		return err
	}
	defer store.Close()

	query, _ := cmd.Flags().GetString("query")
	workType, _ := cmd.Flags().GetString("type")
	year, _ := cmd.Flags().GetInt("year")
	out := cmd.OutOrStdout()

	if query != "" || workType != "" || year != 0 {
		pubs, err := store.Query(cmd.Context(), archive.QueryOptions{
			Text: query,
			Type: workType,
			Year: year,
		})
		if err != nil {
			return err
		}
		archive.FormatTable(pubs, out)
		return nil
	}

	path := viper.GetString("out")
	if len(args) == 1 {
		path = args[0]
	}
	snap, err := snapshot.Read(path)
	if err != nil {
		return err
	}
	if err := store.Load(cmd.Context(), snap); err != nil {
		return err
	}
	fmt.Fprintf(out, "Indexed %d items from %s into %s.\n", snap.Count, path, dbPath)
	return nil
}
