package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citegraph/internal/record"
	"github.com/pdiddy/citegraph/internal/store"
	"github.com/pdiddy/citegraph/pkg/types"
)

var recordCmd = &cobra.Command{
	Use:   "record [pmids...]",
	Short: "Fetch and extract PubMed article metadata",
	Long: `Record fetches the efetch XML record for each PMID and extracts its
metadata: title, abstract, journal, year, affiliations, and authors.
Missing or malformed fields come back empty; extraction never fails a
whole record over one bad field.`,
	RunE: runRecord,
}

func init() {
	recordCmd.Flags().String("format", "json", "output format: json or yaml")
	recordCmd.Flags().Bool("save", false, "also save extracted records to the SQLite database")

	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more PMIDs")
	}

	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")

	cfg := fetchConfig(cmd)
	client := newFetchClient(cfg)

	var db *store.Store
	if save {
		var err error
		db, err = store.Open(types.StoreConfig{DBPath: dbPath(cmd)})
		if err != nil {
			return err
		}
		defer db.Close()
	}

	ctx := cmd.Context()
	for _, pmid := range args {
		rec, err := record.FetchArticle(ctx, client, pmid)
		if err != nil {
			return fmt.Errorf("fetching PMID %s: %w", pmid, err)
		}
		if err := printResult(os.Stdout, rec, format); err != nil {
			return err
		}
		if db != nil {
			if err := db.SaveArticle(ctx, rec); err != nil {
				return err
			}
		}
	}
	return nil
}
