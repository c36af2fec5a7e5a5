package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/citegraph/internal/idconv"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [id]",
	Short: "Translate a document id into its PMID/PMC/DOI triple",
	Long: `Resolve queries the PMC ID-converter service and prints every
identifier known for the document. The input namespace is set with
--type: pmid, pmc, or doi.`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().String("type", "pmc", "id namespace: pmid, pmc, or doi")
	resolveCmd.Flags().String("format", "json", "output format: json or yaml")

	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	nsName, _ := cmd.Flags().GetString("type")
	ns := idconv.ParseNamespace(nsName)
	if ns == idconv.NamespaceUnknown {
		return fmt.Errorf("unknown id namespace %q (use pmid, pmc, or doi)", nsName)
	}
	format, _ := cmd.Flags().GetString("format")

	cfg := fetchConfig(cmd)
	resolver := newResolver(newFetchClient(cfg), cfg)

	triple, err := resolver.Resolve(cmd.Context(), args[0], ns)
	if err != nil {
		return err
	}
	return printResult(os.Stdout, triple, format)
}
