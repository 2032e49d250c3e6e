package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/export"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parsing"
)

var (
	batchOutDir      string
	batchConcurrency int
	batchFromPDF     bool
)

var batchCmd = &cobra.Command{
	Use:   "batch <file>...",
	Short: "Recognize many resumes concurrently",
	Long: `Parse several resume files concurrently and write one JSON document per
input into the output directory.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "parsed", "Directory for the JSON documents")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum parses in flight")
	batchCmd.Flags().BoolVar(&batchFromPDF, "pdf", false, "Treat inputs as PDF-extracted text")
	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, args []string) error {
	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var g errgroup.Group
	g.SetLimit(batchConcurrency)

	for _, path := range args {
		g.Go(func() error {
			// One parser per file: parser state is per-call, so nothing is
			// shared between goroutines.
			if err := parseOne(path); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	fmt.Printf("Parsed %d files into %s\n", len(args), batchOutDir)
	return nil
}

func parseOne(path string) error {
	text, _, err := ingestion.IngestFromFile(path)
	if err != nil {
		return err
	}

	doc := parsing.New(parsing.Options{FromPDF: batchFromPDF}).Parse(text)
	out, err := export.ToJSON(doc)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return os.WriteFile(filepath.Join(batchOutDir, base+".json"), out, 0644)
}
