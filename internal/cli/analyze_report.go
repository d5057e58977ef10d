package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/benkyo-app/benkyo/internal/pdf"
	"github.com/benkyo-app/benkyo/internal/statistics"
)

// RunAnalyzeReport renders a per-month review report for the user. When
// pdfPath is non-empty the report is additionally written as a PDF file.
func RunAnalyzeReport(ctx context.Context, service StudyService, userID string, year, month int, pdfPath string, output io.Writer) error {
	logs, err := service.GetReviewLogs(ctx, userID)
	if err != nil {
		return fmt.Errorf("service.GetReviewLogs() > %w", err)
	}

	result := statistics.CalculateStatistics(logs, year, month)
	if len(result.Periods) == 0 {
		fmt.Fprintln(output, "No review records found for the specified period.")
		return nil
	}

	markdown := statistics.RenderMarkdown(result)
	fmt.Fprint(output, markdown)

	if pdfPath != "" {
		if err := pdf.WriteReport([]byte(markdown), pdfPath); err != nil {
			return fmt.Errorf("pdf.WriteReport() > %w", err)
		}
		fmt.Fprintf(output, "\nReport written to %s\n", pdfPath)
	}
	return nil
}
