package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dhakago/jobdesc-cli/internal/api"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a job description as PDF or DOCX",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportFormat string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "pdf", "Export format: pdf or docx")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file path (required)")

	_ = exportCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	client, _, err := clientFromFlags()
	if err != nil {
		return err
	}

	format := api.ExportFormat(exportFormat)
	switch format {
	case api.ExportPDF, api.ExportDOCX:
	default:
		return fmt.Errorf("unsupported format %q (use pdf or docx)", exportFormat)
	}

	out, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	if err := client.Export(context.Background(), args[0], format, out); err != nil {
		// Leave no partial document behind.
		_ = out.Close()
		_ = os.Remove(exportOut)
		return err
	}

	fmt.Fprintf(os.Stdout, "Exported to %s\n", exportOut)
	return nil
}
