package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagTop int

var headlinesCmd = &cobra.Command{
	Use:   "headlines <category>",
	Short: "Rank the headlines of a category",
	Long: `Scores every article of a category on importance, sentiment, title
length, token rarity and important-term hits, then prints the best ones
with their 0-100 score.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		if err := e.requireCategory(args[0]); err != nil {
			return err
		}

		n := flagTop
		if n <= 0 {
			n = e.cfg.GetHeadlines()
		}
		for i, sh := range e.analyzer.TopHeadlines(args[0], n) {
			fmt.Printf("%2d. %5.1f  %s\n", i+1, sh.Score, sh.Article.Title)
		}
		return nil
	},
}

func init() {
	headlinesCmd.Flags().IntVar(&flagTop, "top", 0, "number of headlines to show")
}
