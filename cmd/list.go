package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okneenlol123-ops/Lumina-News/internal/config"
	"github.com/okneenlol123-ops/Lumina-News/internal/corpus"
)

var flagSort string

var listCmd = &cobra.Command{
	Use:   "list <category>",
	Short: "List the articles of a category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}
		if err := e.requireCategory(args[0]); err != nil {
			return err
		}

		mode := flagSort
		switch mode {
		case "":
			mode = e.cfg.GetSortMode()
		case config.SortNewest, config.SortImportant:
		default:
			return fmt.Errorf("unknown sort mode %q (valid: %s, %s)", mode, config.SortNewest, config.SortImportant)
		}
		for _, a := range sortArticles(e.corpus.Articles(args[0]), mode) {
			fmt.Printf("[%d] %-10s  %s\n", a.Rating(), a.Date, a.Title)
			if a.Description != "" {
				fmt.Printf("    %s\n", truncate(a.Description, 100))
			}
		}
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search stored articles by title and description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		var matches []corpus.Article
		if e.demo {
			// Store is empty; search the same demo corpus the other
			// commands fell back to.
			matches = searchCorpus(e.corpus, query)
		} else {
			s, err := openStore()
			if err != nil {
				return err
			}
			defer s.Close()
			if matches, err = s.Search(query, 0); err != nil {
				return err
			}
		}
		if len(matches) == 0 {
			fmt.Println("No matches.")
			return nil
		}
		for _, a := range matches {
			fmt.Printf("%5.1f  %-12s  %s\n", e.analyzer.HeadlineScore(a), a.Category, a.Title)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&flagSort, "sort", "", "sort mode: newest | important")
}
