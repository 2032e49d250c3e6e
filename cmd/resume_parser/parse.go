package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/export"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/schemas"
)

var (
	parseOut      string
	parseFromPDF  bool
	parseVerbose  bool
	parseAsText   bool
	parseValidate bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Recognize the structure of one resume",
	Long: `Parse a resume text or HTML file (or stdin when no file is given) into a
structured document and print it as JSON or formatted text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseOut, "out", "o", "", "Write output to file instead of stdout")
	parseCmd.Flags().BoolVar(&parseFromPDF, "pdf", false, "Treat input as PDF-extracted text (strips page artifacts)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a parse summary to stderr")
	parseCmd.Flags().BoolVar(&parseAsText, "text", false, "Output formatted plain text instead of JSON")
	parseCmd.Flags().BoolVar(&parseValidate, "validate", false, "Validate the JSON output against the document schema")
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	text, err := readInput(args)
	if err != nil {
		return err
	}

	doc := parsing.New(parsing.Options{FromPDF: parseFromPDF}).Parse(text)

	if parseVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintDocumentSummary(doc)
		printer.PrintContact(doc.Contact())
		printer.PrintExperience(doc.ExperienceItems())
	}

	var out []byte
	if parseAsText {
		out = []byte(export.ToText(doc))
	} else {
		out, err = export.ToJSON(doc)
		if err != nil {
			return err
		}
		if parseValidate {
			if err := schemas.ValidateDocumentBytes(out); err != nil {
				return fmt.Errorf("document failed schema validation: %w", err)
			}
		}
	}

	if parseOut != "" {
		if err := os.WriteFile(parseOut, out, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = os.Stdout.Write(append(out, '\n'))
	return err
}

// readInput loads the resume text from the file argument or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 1 {
		text, _, err := ingestion.IngestFromFile(args[0])
		return text, err
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return ingestion.CleanText(string(raw)), nil
}
