package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/okneenlol123-ops/Lumina-News/internal/sentiment"
)

var keywordsCmd = &cobra.Command{
	Use:   "keywords [category]",
	Short: "Show the most frequent keywords",
	Long: `Without arguments, prints the most frequent tokens across the whole
corpus. With a category, prints that category's term ranking instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}

		var terms []string
		if len(args) == 1 {
			if err := e.requireCategory(args[0]); err != nil {
				return err
			}
			terms = e.analyzer.TopTerms(args[0], e.cfg.GetTopTerms())
		} else {
			terms = e.analyzer.TopKeywords(e.cfg.GetTopKeywords())
		}

		if len(terms) == 0 {
			fmt.Println("No keywords. The corpus is empty.")
			return nil
		}
		for i, term := range terms {
			fmt.Printf("%2d. %s\n", i+1, term)
		}
		return nil
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary [category]",
	Short: "Show per-category aggregate stats",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}

		cats := e.analyzer.Categories()
		if len(args) == 1 {
			if err := e.requireCategory(args[0]); err != nil {
				return err
			}
			cats = args[:1]
		}

		for _, cat := range cats {
			st := e.analyzer.CategorySummary(cat)
			fmt.Printf("%s\n", cat)
			fmt.Printf("  articles:       %d\n", len(e.corpus.Articles(cat)))
			fmt.Printf("  avg sentiment:  %+.3f (%s)\n", st.AvgSentiment, sentiment.Classify(st.AvgSentiment))
			fmt.Printf("  avg importance: %.2f\n", st.AvgImportance)
			fmt.Printf("  top terms:      %s\n", joinTerms(st.TopTerms, e.cfg.GetTopTerms()))
		}
		return nil
	},
}

var sentimentCmd = &cobra.Command{
	Use:   "sentiment [category]",
	Short: "Show the sentiment distribution",
	Long: `Counts articles per sentiment band. Without arguments the whole
corpus is counted, with a category only its articles.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}

		category := ""
		if len(args) == 1 {
			if err := e.requireCategory(args[0]); err != nil {
				return err
			}
			category = args[0]
		}

		dist := e.analyzer.SentimentDistribution(category)
		for _, label := range sentiment.Labels() {
			fmt.Printf("%-9s %d\n", label, dist[label])
		}
		return nil
	},
}

var trendsCmd = &cobra.Command{
	Use:   "trends <category>",
	Short: "Show monthly article counts for a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		if err := e.requireCategory(args[0]); err != nil {
			return err
		}

		series := e.analyzer.TrendSeries(args[0])
		if len(series) == 0 {
			fmt.Println("No dated articles in this category.")
			return nil
		}
		for _, point := range series {
			fmt.Printf("%s  %d\n", point.Month, point.Count)
		}
		return nil
	},
}

var flagSentences int

var summarizeCmd = &cobra.Command{
	Use:   "summarize <category>",
	Short: "Build an extractive summary of a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		if err := e.requireCategory(args[0]); err != nil {
			return err
		}

		n := flagSentences
		if n <= 0 {
			n = e.cfg.GetSummarySentences()
		}
		text := e.analyzer.SummarizeCategory(args[0], n)
		if text == "" {
			fmt.Println("Nothing to summarize: no article descriptions.")
			return nil
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	summarizeCmd.Flags().IntVar(&flagSentences, "sentences", 0, "number of summary sentences")
}
