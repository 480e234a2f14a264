package main

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yumyai/homoindex/logger"
	homodb "github.com/yumyai/homoindex/pkg/db"
)

const VERSION = "0.1.0"

func main() {

	// Load config before the logger so HOMOINDEX_LOG from .env applies.
	dotenvErr := godotenv.Load()

	if err := logger.InitFromEnv(); err != nil {
		panic(err)
	}

	if dotenvErr != nil {
		logger.Warn("No .env found, using local environment")
	}

	exitCode := run()

	logger.Sync() // Make sure that the buffered is flushed.
	os.Exit(exitCode)
}

func run() int {
	exitCode := 0

	rootCmd := newRootCmd(&exitCode)
	rootCmd.AddCommand(newGenusCmd(&exitCode))
	rootCmd.AddCommand(newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return exitCode
}

func newRootCmd(exitCode *int) *cobra.Command {
	var opt batchOptions

	cmd := &cobra.Command{
		Use:   "homoindex",
		Short: "Look up gene orthogroups across a genus",
		Long: `homoindex finds which orthogroup a gene belongs to by scanning the
Orthogroups.tsv table of a genus, writes one text report per queried
gene, and collects the hits into summary.tsv.`,
		Run: func(cmd *cobra.Command, args []string) {
			opt.DataRoot = dataRoot()
			*exitCode = runBatch(opt, os.Stdout)
		},
	}

	cmd.Flags().StringVarP(&opt.Genus, "genus", "G", "", "genus name (folder under genus/)")
	cmd.Flags().StringVarP(&opt.Gene, "gene", "g", "", "single gene ID to query")
	cmd.Flags().StringVarP(&opt.GeneList, "gene_list", "l", "", "text file with one gene ID per line")
	cmd.Flags().StringVarP(&opt.Outdir, "outdir", "o", "results", "output directory for reports")
	cmd.MarkFlagRequired("genus")

	return cmd
}

func newGenusCmd(exitCode *int) *cobra.Command {
	return &cobra.Command{
		Use:   "genus",
		Short: "List available genus names",
		Run: func(cmd *cobra.Command, args []string) {
			*exitCode = runGenusList(dataRoot(), os.Stdout)
		},
	}
}

func runGenusList(data_root string, out io.Writer) int {
	gdb := homodb.NewGenusDB(data_root)

	names, err := gdb.ListGenus()
	if err != nil {
		fmt.Fprintln(out, "[ERROR] Directory 'genus/' not found in current path.")
		return 1
	}

	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return 0
}

// dataRoot resolves HOMOINDEX_DATA, falling back to the working
// directory so genus/ is looked up right where the command runs.
func dataRoot() string {
	root := os.Getenv("HOMOINDEX_DATA")
	if root == "" {
		return "."
	}
	return root
}
