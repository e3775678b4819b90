package pdf

import (
	"fmt"
	"io"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/go-pdf/fpdf"
)

// RenderStatement writes the account statement as an A4 PDF document to w.
func RenderStatement(st *domain.AccountStatement, w io.Writer) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetTitle("Account Statement "+formatPeriod(st.Period), true)
	doc.SetAuthor(st.CondominiumName, true)
	doc.SetAutoPageBreak(true, 20)
	doc.AddPage()

	for _, line := range BuildStatementLines(st) {
		switch line.Kind {
		case LineTitle:
			doc.SetFont("Helvetica", "B", 18)
			doc.CellFormat(0, 12, line.Text, "", 1, "C", false, 0, "")
		case LineSubtitle:
			doc.SetFont("Helvetica", "", 11)
			doc.CellFormat(0, 6, line.Text, "", 1, "C", false, 0, "")
		case LineSection:
			doc.Ln(4)
			doc.SetFont("Helvetica", "B", 13)
			doc.CellFormat(0, 8, line.Text, "B", 1, "L", false, 0, "")
		case LineRow:
			doc.SetFont("Helvetica", "", 10)
			doc.CellFormat(0, 6, line.Text, "", 1, "L", false, 0, "")
		case LineTotal:
			doc.SetFont("Helvetica", "B", 11)
			doc.CellFormat(0, 6, line.Text, "", 1, "R", false, 0, "")
		case LineFooter:
			doc.Ln(6)
			doc.SetFont("Helvetica", "I", 9)
			doc.CellFormat(0, 5, line.Text, "", 1, "C", false, 0, "")
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("failed to render statement pdf: %w", err)
	}
	return nil
}
