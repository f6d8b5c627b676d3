package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagDB     string
)

var rootCmd = &cobra.Command{
	Use:   "lumina",
	Short: "Offline news analytics CLI",
	Long: `lumina runs local analytics over a categorized news corpus: keyword
extraction, lexicon sentiment, headline ranking, extractive summaries and
per-category trend series. All computation happens in memory against the
imported articles; no network access is involved.`,
	RunE: runOverview,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "path to the article database")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(keywordsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sentimentCmd)
	rootCmd.AddCommand(headlinesCmd)
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(summarizeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lumina %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// runOverview prints one summary line per category, the default view.
func runOverview(cmd *cobra.Command, args []string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	cats := e.analyzer.Categories()
	if len(cats) == 0 {
		fmt.Println("No articles. Run 'lumina import --demo' to load the demo corpus.")
		return nil
	}

	for _, cat := range cats {
		st := e.analyzer.CategorySummary(cat)
		fmt.Printf("%-12s  articles=%-3d  sentiment=%+.3f  importance=%.2f  terms=%s\n",
			cat, len(e.corpus.Articles(cat)), st.AvgSentiment, st.AvgImportance,
			joinTerms(st.TopTerms, 5))
	}
	return nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
