package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/CondoSphere/condo_management_app/internal/core/domain"
	"github.com/CondoSphere/condo_management_app/internal/pdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleStatement() *domain.AccountStatement {
	return &domain.AccountStatement{
		CondominiumID:   "condo-1",
		CondominiumName: "Torre Norte",
		Period:          domain.StatementPeriod{Year: 2025, Month: 4},
		GeneratedAt:     time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC),
		Fee: &domain.MaintenanceFee{
			Detail:          "Maintenance fee April 2025",
			Amount:          decimal.NewFromInt(1500),
			Currency:        "MXN",
			PaymentDeadline: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		},
		Payments: []domain.StatementPaymentLine{
			{
				PaymentID:     "pay-1",
				ApartmentName: "A-101",
				Amount:        decimal.NewFromInt(1500),
				PaymentDate:   time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
				PaymentMethod: "transfer",
				PaymentStatus: domain.PaymentConfirmed,
			},
			{
				PaymentID:     "pay-2",
				ApartmentName: "A-102",
				Amount:        decimal.NewFromInt(750),
				PaymentDate:   time.Date(2025, 4, 8, 0, 0, 0, 0, time.UTC),
				PaymentMethod: "cash",
				PaymentStatus: domain.PaymentPending,
			},
		},
		Totals: domain.StatementTotals{
			Confirmed: decimal.NewFromInt(1500),
			Pending:   decimal.NewFromInt(750),
			Canceled:  decimal.Zero,
			Refunded:  decimal.Zero,
			Grand:     decimal.NewFromInt(2250),
		},
	}
}

func lineTexts(lines []pdf.Line) []string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return texts
}

func TestBuildStatementLines_Layout(t *testing.T) {
	lines := pdf.BuildStatementLines(sampleStatement())
	require.NotEmpty(t, lines)

	assert.Equal(t, pdf.LineTitle, lines[0].Kind)
	assert.Equal(t, "Account Statement", lines[0].Text)
	assert.Equal(t, "Torre Norte", lines[1].Text)
	assert.Contains(t, lines[2].Text, "April 2025")
	assert.Contains(t, lines[2].Text, "2025-05-02")

	texts := lineTexts(lines)
	assert.Contains(t, texts, "Maintenance Fees")
	assert.Contains(t, texts, "Payments")
	assert.Contains(t, texts, "Maintenance fee April 2025 | 1500.00 MXN | due 2025-04-10")
	assert.Contains(t, texts, "A-101 | 1500.00 | 2025-04-05 | transfer | CONFIRMED")
	assert.Contains(t, texts, "A-102 | 750.00 | 2025-04-08 | cash | PENDING")
	assert.Contains(t, texts, "Grand Total: 2250.00")
	assert.Contains(t, texts, "Total Pending: 750.00")
	assert.Contains(t, texts, "Total Confirmed: 1500.00")

	// Totals come after all payment rows, footer closes the document.
	assert.Equal(t, pdf.LineFooter, lines[len(lines)-1].Kind)
	assert.Equal(t, "End of statement.", lines[len(lines)-1].Text)
}

func TestBuildStatementLines_EmptyMonth(t *testing.T) {
	st := sampleStatement()
	st.Fee = nil
	st.Payments = nil
	st.Totals = domain.StatementTotals{
		Confirmed: decimal.Zero,
		Pending:   decimal.Zero,
		Canceled:  decimal.Zero,
		Refunded:  decimal.Zero,
		Grand:     decimal.Zero,
	}

	texts := lineTexts(pdf.BuildStatementLines(st))

	assert.Contains(t, texts, "No maintenance fee recorded for this period.")
	assert.Contains(t, texts, "No payments recorded for this period.")
	assert.Contains(t, texts, "Grand Total: 0.00")
}

func TestRenderStatement_ProducesPDF(t *testing.T) {
	var buf bytes.Buffer

	err := pdf.RenderStatement(sampleStatement(), &buf)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")), "output should start with the PDF magic bytes")
	assert.Greater(t, buf.Len(), 500, "document should not be empty")
}
