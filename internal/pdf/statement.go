// Package pdf renders account statements as PDF documents.
package pdf

import (
	"fmt"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/CondoSphere/condo_management_app/internal/utils"
)

// LineKind selects the typography of a statement line.
type LineKind int

const (
	LineTitle LineKind = iota
	LineSubtitle
	LineSection
	LineRow
	LineTotal
	LineFooter
)

// Line is one rendered line of the statement document. Keeping the document
// as a flat line list makes the layout testable without touching the PDF
// engine.
type Line struct {
	Kind LineKind
	Text string
}

// BuildStatementLines lays out the account statement document as an ordered
// list of lines.
func BuildStatementLines(st *domain.AccountStatement) []Line {
	lines := []Line{
		{Kind: LineTitle, Text: "Account Statement"},
		{Kind: LineSubtitle, Text: st.CondominiumName},
		{Kind: LineSubtitle, Text: "Period " + formatPeriod(st.Period) + " | Generated on " + st.GeneratedAt.Format("2006-01-02")},
	}

	lines = append(lines, Line{Kind: LineSection, Text: "Maintenance Fees"})
	if st.Fee != nil {
		lines = append(lines, Line{
			Kind: LineRow,
			Text: fmt.Sprintf("%s | %s %s | due %s",
				st.Fee.Detail,
				utils.FormatAmount(st.Fee.Amount),
				st.Fee.Currency,
				st.Fee.PaymentDeadline.Format("2006-01-02")),
		})
	} else {
		lines = append(lines, Line{Kind: LineRow, Text: "No maintenance fee recorded for this period."})
	}

	lines = append(lines, Line{Kind: LineSection, Text: "Payments"})
	if len(st.Payments) > 0 {
		for _, p := range st.Payments {
			lines = append(lines, Line{
				Kind: LineRow,
				Text: fmt.Sprintf("%s | %s | %s | %s | %s",
					p.ApartmentName,
					utils.FormatAmount(p.Amount),
					p.PaymentDate.Format("2006-01-02"),
					p.PaymentMethod,
					p.PaymentStatus),
			})
		}
	} else {
		lines = append(lines, Line{Kind: LineRow, Text: "No payments recorded for this period."})
	}

	lines = append(lines,
		Line{Kind: LineTotal, Text: "Grand Total: " + utils.FormatAmount(st.Totals.Grand)},
		Line{Kind: LineTotal, Text: "Total Pending: " + utils.FormatAmount(st.Totals.Pending)},
		Line{Kind: LineTotal, Text: "Total Confirmed: " + utils.FormatAmount(st.Totals.Confirmed)},
		Line{Kind: LineFooter, Text: "End of statement."},
	)

	return lines
}

func formatPeriod(p domain.StatementPeriod) string {
	return time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
