package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/diniz2025/nadjair-diniz-barbosa/internal/dashboard"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/model"
	"github.com/diniz2025/nadjair-diniz-barbosa/internal/view"
	"github.com/diniz2025/nadjair-diniz-barbosa/pkg/llm"
	"github.com/spf13/cobra"
)

// GatewayFactory builds the gateway lazily so that --help works without
// credentials.
type GatewayFactory func(ctx context.Context) (dashboard.Gateway, error)

// NewRootCommand creates the fetcher command tree.
func NewRootCommand(newGateway GatewayFactory) *cobra.Command {
	var outPath string
	out := func(cmd *cobra.Command, content string) error {
		return write(cmd, outPath, content)
	}

	rootCmd := &cobra.Command{
		Use:          "fetcher",
		Short:        "One-shot fetches of the health market dashboard",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outPath, "out", "o", "", "write output to this file instead of stdout")

	rootCmd.AddCommand(newNewsCommand(newGateway, out))
	rootCmd.AddCommand(newMapCommand(newGateway, out))
	rootCmd.AddCommand(newTickerCommand(newGateway, out))
	rootCmd.AddCommand(newCategoriesCommand(out))

	return rootCmd
}

func newNewsCommand(newGateway GatewayFactory, out writeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "news <category> [query...]",
		Short: "Fetch the news briefing for a category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, ok := model.FindCategory(args[0])
			if !ok || category.IsNetworkMap() {
				return fmt.Errorf("%w: %q", dashboard.ErrUnknownCategory, args[0])
			}

			gateway, err := newGateway(cmd.Context())
			if err != nil {
				return err
			}

			query := strings.Join(args[1:], " ")
			result, err := gateway.FetchNews(cmd.Context(), category.Keywords, category.Sources, query)
			if err != nil {
				return err
			}

			return out(cmd, newsReport(result))
		},
	}
}

func newMapCommand(newGateway GatewayFactory, out writeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "map [query...]",
		Short: "Fetch the provider network report",
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, err := newGateway(cmd.Context())
			if err != nil {
				return err
			}

			query := strings.TrimSpace(strings.Join(args, " "))
			if query == "" {
				query = dashboard.DefaultMapQuery
			}

			result, err := gateway.FetchLocations(cmd.Context(), query)
			if err != nil {
				return err
			}

			return out(cmd, mapReport(result))
		},
	}
}

func newTickerCommand(newGateway GatewayFactory, out writeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "ticker",
		Short: "Fetch the ticker headlines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gateway, err := newGateway(cmd.Context())
			if err != nil {
				return err
			}

			headlines := gateway.FetchTicker(cmd.Context())
			return out(cmd, strings.Join(headlines, "\n")+"\n")
		},
	}
}

func newCategoriesCommand(out writeFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List category ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var b strings.Builder
			for _, c := range append([]model.Category{model.NetworkMap}, model.Categories()...) {
				fmt.Fprintf(&b, "%-16s %s\n", c.ID, c.Label)
			}
			return out(cmd, b.String())
		},
	}
}

func newsReport(result llm.QueryResult) string {
	var b strings.Builder
	b.WriteString(result.Markdown)
	b.WriteString("\n")

	sources := view.WebSources(result.Chunks)
	if len(sources) > 0 {
		b.WriteString("\n## Fontes Citadas\n")
		for _, s := range sources {
			fmt.Fprintf(&b, "- [%s](%s)\n", s.Title, s.URI)
		}
	}
	return b.String()
}

func mapReport(result llm.QueryResult) string {
	var b strings.Builder
	b.WriteString(result.Markdown)
	b.WriteString("\n")

	cards := view.MapCards(result.Chunks)
	if len(cards) > 0 {
		b.WriteString("\n## Locais no Google Maps\n")
		for _, card := range cards {
			fmt.Fprintf(&b, "- %s: %s\n", card.Title, card.URI)
			if card.Snippet != "" {
				fmt.Fprintf(&b, "  > %s\n", card.Snippet)
			}
		}
	}
	return b.String()
}

type writeFunc func(cmd *cobra.Command, content string) error

func write(cmd *cobra.Command, outPath, content string) error {
	if outPath == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
	return nil
}
