package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citegraph/internal/store"
	"github.com/pdiddy/citegraph/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Query records and citation edges saved with --save",
	Long: `Store reads back data cached in the local SQLite database: an article
record by PMID, the citers of a PMC id, or the outgoing references of a
document.`,
	RunE: runStore,
}

func init() {
	storeCmd.Flags().String("article", "", "print the saved record for a PMID")
	storeCmd.Flags().String("citers", "", "print the saved citers of a bare PMC id")
	storeCmd.Flags().String("refs", "", "print the saved outgoing references of a document id")
	storeCmd.Flags().String("refs-type", "pmc", "namespace of the --refs document id: pmid or pmc")
	storeCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(storeCmd)
}

func runStore(cmd *cobra.Command, args []string) error {
	pmid, _ := cmd.Flags().GetString("article")
	pmc, _ := cmd.Flags().GetString("citers")
	refsID, _ := cmd.Flags().GetString("refs")
	refsNS, _ := cmd.Flags().GetString("refs-type")
	format, _ := cmd.Flags().GetString("format")

	if pmid == "" && pmc == "" && refsID == "" {
		return fmt.Errorf("provide one of --article, --citers, or --refs")
	}

	db, err := store.Open(types.StoreConfig{DBPath: dbPath(cmd)})
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := cmd.Context()

	if pmid != "" {
		rec, err := db.Article(ctx, pmid)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("no saved record for PMID %s", pmid)
		}
		if err != nil {
			return err
		}
		if err := printResult(os.Stdout, rec, format); err != nil {
			return err
		}
	}

	if pmc != "" {
		citers, err := db.Citers(ctx, pmc)
		if err != nil {
			return err
		}
		if err := printResult(os.Stdout, citers, format); err != nil {
			return err
		}
	}

	if refsID != "" {
		refs, err := db.References(ctx, refsID, refsNS)
		if err != nil {
			return err
		}
		if err := printResult(os.Stdout, refs, format); err != nil {
			return err
		}
	}
	return nil
}
