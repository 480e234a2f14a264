package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/yumyai/homoindex/logger"
	homodb "github.com/yumyai/homoindex/pkg/db"
	"github.com/yumyai/homoindex/pkg/model"
	"github.com/yumyai/homoindex/pkg/render"
)

// batchOptions carries the command line of one batch run.
type batchOptions struct {
	Genus    string
	Gene     string
	GeneList string
	Outdir   string
	DataRoot string
}

// runBatch drives one locate, query and report cycle. User-facing
// [ERROR]/[INFO]/[OK] lines go to out, operational logging goes to
// the zap logger, and the return value is the process exit code.
func runBatch(opt batchOptions, out io.Writer) int {

	if (opt.Gene == "") == (opt.GeneList == "") {
		if opt.Gene == "" {
			fmt.Fprintln(out, "[ERROR] Please provide either --gene or --gene_list")
		} else {
			fmt.Fprintln(out, "[ERROR] --gene and --gene_list are mutually exclusive")
		}
		return 1
	}

	run_id := "run-" + uuid.New().String()
	logger.Info("Batch run starting",
		zap.String("run_id", run_id),
		zap.String("genus", opt.Genus))

	gdb := homodb.NewGenusDB(opt.DataRoot)

	entry, resolve_err := gdb.Resolve(opt.Genus)
	if resolve_err != nil {
		reportResolveError(out, gdb, entry, resolve_err)
		return 1
	}

	if mkdir_err := os.MkdirAll(opt.Outdir, 0755); mkdir_err != nil {
		fmt.Fprintf(out, "[ERROR] Cannot create output directory: %v\n", mkdir_err)
		return 1
	}

	genes, gene_err := collectGenes(opt)
	if gene_err != nil {
		fmt.Fprintf(out, "[ERROR] Cannot read gene list: %v\n", gene_err)
		return 1
	}

	var hits []*model.QueryResult

	for _, gene_id := range genes {
		result, query_err := queryAndReport(entry.TablePath, gene_id, opt.Outdir, out)
		if query_err != nil {
			fmt.Fprintf(out, "[ERROR] %v\n", query_err)
			return 1
		}
		if result != nil {
			hits = append(hits, result)
		}
	}

	// No summary on an all-miss run.
	if len(hits) > 0 {
		summary_path := filepath.Join(opt.Outdir, "summary.tsv")
		if sum_err := writeSummary(summary_path, hits); sum_err != nil {
			fmt.Fprintf(out, "[ERROR] %v\n", sum_err)
			return 1
		}
		fmt.Fprintf(out, "[OK] Summary table saved to: %s\n", summary_path)
	}

	logger.Info("Batch run finished",
		zap.String("run_id", run_id),
		zap.Int("queried", len(genes)),
		zap.Int("found", len(hits)))

	return 0
}

// reportResolveError prints the diagnostics for a genus that could not
// be resolved, suggesting the available names when the folder exists.
func reportResolveError(out io.Writer, gdb *homodb.GenusDB, entry homodb.GenusEntry, resolve_err error) {

	switch {
	case errors.Is(resolve_err, homodb.GenusNotExists):
		fmt.Fprintf(out, "[ERROR] Genus '%s' directory not found!\n", entry.Genus)
		fmt.Fprintln(out, "Available genus names:")

		names, list_err := gdb.ListGenus()
		if list_err != nil {
			fmt.Fprintln(out, "[ERROR] Directory 'genus/' not found in current path.")
			return
		}
		for _, name := range names {
			fmt.Fprintf(out, "  - %s\n", name)
		}

	case errors.Is(resolve_err, homodb.TableNotExists):
		fmt.Fprintf(out, "[ERROR] Missing file: %s\n", entry.TablePath)
		fmt.Fprintln(out, "Make sure Orthogroups.tsv exists in this genus folder.")

	default:
		fmt.Fprintf(out, "[ERROR] %v\n", resolve_err)
	}
}

// collectGenes resolves the query flags into a gene ID list. Blank
// lines in a gene list file are skipped.
func collectGenes(opt batchOptions) ([]string, error) {

	if opt.Gene != "" {
		return []string{opt.Gene}, nil
	}

	fh, err := os.Open(opt.GeneList)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	var genes []string
	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		gene_id := strings.TrimSpace(scanner.Text())
		if gene_id == "" {
			continue
		}
		genes = append(genes, gene_id)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return genes, nil
}

// queryAndReport reads the table fresh, queries one gene and writes
// its report file. A miss returns a nil result with no error.
func queryAndReport(table_path, gene_id, outdir string, out io.Writer) (*model.QueryResult, error) {

	table, err := model.LoadOrthogroupTable(table_path)
	if err != nil {
		return nil, err
	}

	result, found := model.QueryGene(table, gene_id)

	report_path := filepath.Join(outdir, gene_id+".txt")
	fh, err := os.Create(report_path)
	if err != nil {
		return nil, fmt.Errorf("create report %s: %w", report_path, err)
	}

	render_err := render.RenderGeneReport(fh, table, gene_id, result)
	close_err := fh.Close()
	if render_err != nil {
		return nil, fmt.Errorf("write report %s: %w", report_path, render_err)
	}
	if close_err != nil {
		return nil, fmt.Errorf("close report %s: %w", report_path, close_err)
	}

	if !found {
		fmt.Fprintf(out, "[INFO] Gene '%s' not found.\n", gene_id)
		return nil, nil
	}

	fmt.Fprintf(out, "[OK] Result written to: %s\n", report_path)
	return result, nil
}

func writeSummary(path string, hits []*model.QueryResult) error {

	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary %s: %w", path, err)
	}

	render_err := render.RenderSummaryTSV(fh, hits)
	close_err := fh.Close()
	if render_err != nil {
		return fmt.Errorf("write summary %s: %w", path, render_err)
	}
	if close_err != nil {
		return fmt.Errorf("close summary %s: %w", path, close_err)
	}
	return nil
}
