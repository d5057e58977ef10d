package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benkyo-app/benkyo/internal/cli"
	"github.com/benkyo-app/benkyo/internal/flashcard"
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze review history and statistics",
	}
	cmd.AddCommand(newAnalyzeReportCommand())
	return cmd
}

func newAnalyzeReportCommand() *cobra.Command {
	var user, pdfPath string
	var year, month int

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show monthly/yearly report of review statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if month != 0 && year == 0 {
				return fmt.Errorf("--month requires --year to be specified")
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("--month must be between 1 and 12")
			}

			return withService(cmd.Context(), func(service *flashcard.Service) error {
				return cli.RunAnalyzeReport(cmd.Context(), service, user, year, month, pdfPath, os.Stdout)
			})
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "User to report on")
	cmd.Flags().IntVar(&year, "year", 0, "Filter by year (e.g., 2025)")
	cmd.Flags().IntVar(&month, "month", 0, "Filter by month (1-12), requires --year")
	cmd.Flags().StringVar(&pdfPath, "pdf", "", "Also write the report as a PDF file")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
