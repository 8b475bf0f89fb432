// Copyright Wells Wood Research Group, 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wells-wood-research/protein-design-archive/internal/store"
	"github.com/wells-wood-research/protein-design-archive/pkg/types"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Manage the local search index (ingest, search, stats)",
	Long: `Index maintains a local SQLite search index over the collected design
catalogue. Use subcommands to load a catalogue file, search it, or
report counts.`,
}

// --- ingest subcommand ---

var indexIngestCmd = &cobra.Command{
	Use:   "ingest [catalogue]",
	Short: "Load a collected catalogue into the search index",
	Long: `Ingest reads a catalogue JSON file produced by collect and upserts every
design into the SQLite index with FTS5 full-text search over subtitles,
abstracts, tags, and keywords. Designs already indexed are updated.`,
	RunE: runIndexIngest,
}

func runIndexIngest(cmd *cobra.Command, args []string) error {
	dataPath := "data/data.json"
	if len(args) > 0 {
		dataPath = args[0]
	}

	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	summary, err := s.Ingest(context.Background(), dataPath, os.Stdout)
	if err != nil {
		return err
	}
	if summary.Failed > 0 {
		return fmt.Errorf("%d design(s) failed indexing", summary.Failed)
	}
	return nil
}

// --- search subcommand ---

var indexSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the index with full-text search and filters",
	Long: `Search queries the index using FTS5 full-text search over subtitles,
abstracts, tags, and keywords, structured filters, or a combination of
both.`,
	RunE: runIndexSearch,
}

func runIndexSearch(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := queryOptsFromFlags(cmd, args)
	if opts.IsEmpty() {
		return fmt.Errorf("query or filter required: provide a search query, --classification, --tag, or --review")
	}

	results, err := s.Search(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func formatSearchOutput(results []store.SearchResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-50s  %-12s  %-10s  %s\n",
		"PDB", "Subtitle", "Class", "Released", "Review")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 92))

	for _, r := range results {
		subtitle := r.Subtitle
		if len(subtitle) > 50 {
			subtitle = subtitle[:47] + "..."
		}
		class := r.Classification
		if len(class) > 12 {
			class = class[:9] + "..."
		}
		review := ""
		if r.Review {
			review = "yes"
		}
		fmt.Fprintf(os.Stdout, "%-6s  %-50s  %-12s  %-10s  %s\n",
			r.PDB, subtitle, class, r.ReleaseDate, review)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

// --- stats subcommand ---

var indexStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report catalogue-level counts from the index",
	RunE:  runIndexStats,
}

func runIndexStats(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	stats, err := s.ReadStats(context.Background())
	if err != nil {
		return err
	}

	fmt.Printf("designs:      %d\n", stats.Designs)
	fmt.Printf("under review: %d\n", stats.UnderReview)
	for label, n := range stats.Classifications {
		fmt.Printf("  %-20s %d\n", label, n)
	}
	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	maxResults, _ := cmd.Flags().GetInt("max-results")

	cfg := types.StoreConfig{
		DBPath:     dbPath,
		MaxResults: maxResults,
	}
	return store.Open(cfg)
}

func queryOptsFromFlags(cmd *cobra.Command, args []string) store.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	classification, _ := cmd.Flags().GetString("classification")
	tag, _ := cmd.Flags().GetString("tag")
	reviewOnly, _ := cmd.Flags().GetBool("review")
	limit, _ := cmd.Flags().GetInt("limit")

	return store.QueryOptions{
		Query:          queryText,
		Classification: classification,
		Tag:            tag,
		ReviewOnly:     reviewOnly,
		MaxResults:     limit,
	}
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	indexCmd.PersistentFlags().String("db", "data/archive.db", "SQLite index database file")
	indexCmd.PersistentFlags().Int("max-results", 20, "maximum number of search results")

	// Search flags.
	indexSearchCmd.Flags().String("query", "", "full-text search query")
	indexSearchCmd.Flags().String("classification", "", "filter by classification label")
	indexSearchCmd.Flags().String("tag", "", "filter by tag")
	indexSearchCmd.Flags().Bool("review", false, "only designs awaiting review")
	indexSearchCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	indexSearchCmd.Flags().Bool("json", false, "output results as JSON")

	// Wire subcommands.
	indexCmd.AddCommand(indexIngestCmd)
	indexCmd.AddCommand(indexSearchCmd)
	indexCmd.AddCommand(indexStatsCmd)

	rootCmd.AddCommand(indexCmd)
}
