package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budjb/things-we-make/internal/catalog"
	"github.com/budjb/things-we-make/internal/database"
	"github.com/budjb/things-we-make/internal/domain"
)

func categoriesCmd() *cobra.Command {
	var fromContent bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories shown in the navigation panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var provider catalog.Provider
			if cfg.DatabaseURL != "" && !fromContent {
				db, err := database.New(ctx, cfg.DatabaseURL)
				if err != nil {
					return fmt.Errorf("failed to connect to database: %w", err)
				}
				defer db.Close()
				provider = catalog.NewPostgresProvider(db.Pool)
			} else {
				idx, err := catalog.LoadIndex(cfg.ContentIndex)
				if err != nil {
					return err
				}
				provider = idx
			}

			categories, err := provider.Categories(ctx)
			if err != nil {
				return err
			}
			for _, c := range categories {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.FieldValue, domain.FormatCategorySlug(c.FieldValue))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fromContent, "content", false, "read from the content index even when DATABASE_URL is set")
	return cmd
}
