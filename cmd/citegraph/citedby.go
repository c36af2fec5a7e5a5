package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citegraph/internal/citations"
	"github.com/pdiddy/citegraph/internal/idconv"
	"github.com/pdiddy/citegraph/internal/store"
	"github.com/pdiddy/citegraph/pkg/types"
)

var citedbyCmd = &cobra.Command{
	Use:   "citedby [id]",
	Short: "Enumerate the articles citing a document",
	Long: `Citedby resolves the document id, then walks every page of its PMC
cited-by listing and prints the citing PMC ids in page order, along with
the total citation count. Pages are fetched sequentially; the crawl
aborts on the first transport error.`,
	Args: cobra.ExactArgs(1),
	RunE: runCitedby,
}

func init() {
	citedbyCmd.Flags().String("type", "pmc", "id namespace: pmid, pmc, or doi")
	citedbyCmd.Flags().String("format", "json", "output format: json or yaml")
	citedbyCmd.Flags().Bool("save", false, "also save the citer list to the SQLite database")

	rootCmd.AddCommand(citedbyCmd)
}

func runCitedby(cmd *cobra.Command, args []string) error {
	nsName, _ := cmd.Flags().GetString("type")
	ns := idconv.ParseNamespace(nsName)
	if ns == idconv.NamespaceUnknown {
		return fmt.Errorf("unknown id namespace %q (use pmid, pmc, or doi)", nsName)
	}
	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")

	cfg := fetchConfig(cmd)
	client := newFetchClient(cfg)
	crawler := &citations.Crawler{
		Fetch:    client,
		Resolver: newResolver(client, cfg),
		Progress: os.Stderr,
	}

	ctx := cmd.Context()
	result, err := crawler.CrawlCitedBy(ctx, args[0], ns)
	if err != nil {
		return err
	}

	if save {
		db, err := store.Open(types.StoreConfig{DBPath: dbPath(cmd)})
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.SaveCitedBy(ctx, result); err != nil {
			return err
		}
	}

	return printResult(os.Stdout, result, format)
}
