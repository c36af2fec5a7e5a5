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

var outgoingCmd = &cobra.Command{
	Use:   "outgoing [id]",
	Short: "Enumerate the articles a document cites",
	Long: `Outgoing queries the eutils link graph for the articles a document
cites and prints their PMIDs. Only the pmid and pmc namespaces have a
link graph. A document with zero linked ids prints nothing and exits
non-zero: in practice that means the input id was invalid rather than
the article citing nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutgoing,
}

func init() {
	outgoingCmd.Flags().String("type", "pmc", "id namespace: pmid or pmc")
	outgoingCmd.Flags().String("format", "json", "output format: json or yaml")
	outgoingCmd.Flags().Bool("save", false, "also save the reference list to the SQLite database")

	rootCmd.AddCommand(outgoingCmd)
}

func runOutgoing(cmd *cobra.Command, args []string) error {
	nsName, _ := cmd.Flags().GetString("type")
	ns := idconv.ParseNamespace(nsName)
	if ns == idconv.NamespaceUnknown {
		return fmt.Errorf("unknown id namespace %q (use pmid or pmc)", nsName)
	}
	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")

	cfg := fetchConfig(cmd)
	crawler := &citations.Crawler{Fetch: newFetchClient(cfg)}

	ctx := cmd.Context()
	result, err := crawler.CrawlOutgoing(ctx, args[0], ns)
	if err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("no outgoing links for %s %s: the id is likely invalid", nsName, args[0])
	}

	if save {
		db, err := store.Open(types.StoreConfig{DBPath: dbPath(cmd)})
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.SaveOutgoing(ctx, *result); err != nil {
			return err
		}
	}

	return printResult(os.Stdout, result, format)
}
