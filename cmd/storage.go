package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
	"github.com/okneenlol123-ops/Lumina-News/internal/dataset"
)

var (
	flagDemo    bool
	flagReplace bool
	flagOut     string
)

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Import articles from a JSON file or the demo dataset",
	Long: `Reads a JSON article list and upserts it into the local store.
Articles are keyed by link (or category and title), so importing the same
file twice updates instead of duplicating. With --replace the store is
cleared first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var articles []corpus.Article
		switch {
		case flagDemo:
			c, err := dataset.Demo()
			if err != nil {
				return err
			}
			articles = c.All()
		case len(args) == 1:
			var err error
			articles, err = dataset.Load(args[0])
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("either a file argument or --demo is required")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		if flagReplace {
			if err := s.Clear(); err != nil {
				return fmt.Errorf("clearing store: %w", err)
			}
		}
		if err := s.UpsertArticles(articles); err != nil {
			return fmt.Errorf("importing articles: %w", err)
		}

		log.Info("imported articles", "count", len(articles), "db", dbPath())
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [category]",
	Short: "Export stored articles as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		c, err := s.LoadCorpus()
		if err != nil {
			return err
		}

		articles := c.All()
		if len(args) == 1 {
			if !c.Has(args[0]) {
				return fmt.Errorf("unknown category %q", args[0])
			}
			articles = c.Articles(args[0])
		}

		data, err := dataset.Marshal(articles)
		if err != nil {
			return fmt.Errorf("encoding articles: %w", err)
		}

		if flagOut == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(flagOut, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", flagOut, err)
		}
		log.Info("exported articles", "count", len(articles), "file", flagOut)
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()

		count, size, err := s.Stats(dbPath())
		if err != nil {
			return err
		}
		fmt.Printf("database:  %s\n", dbPath())
		fmt.Printf("articles:  %d\n", count)
		fmt.Printf("file size: %s\n", formatBytes(size))
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&flagDemo, "demo", false, "import the embedded demo dataset")
	importCmd.Flags().BoolVar(&flagReplace, "replace", false, "clear the store before importing")
	exportCmd.Flags().StringVar(&flagOut, "out", "", "write to file instead of stdout")
}
