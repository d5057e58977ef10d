// Package pdf renders markdown reports as PDF files.
package pdf

import (
	"fmt"

	"github.com/mandolyte/mdtopdf"
)

// WriteReport renders markdown content to a PDF file at pdfPath.
func WriteReport(markdown []byte, pdfPath string) error {
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}
