// Package report renders a user's latest measurement into a PDF document.
package report

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-pdf/fpdf"

	"bmistation/internal/domain"
)

// PDFRenderer produces the downloadable BMI report.
type PDFRenderer struct{}

var _ domain.ReportRenderer = (*PDFRenderer)(nil)

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render writes a one-page report carrying the user's profile and
// measurement values. Content is deterministic for identical inputs.
func (r *PDFRenderer) Render(user *domain.User, m *domain.Measurement) ([]byte, error) {
	if user == nil {
		return nil, fmt.Errorf("%w: user is required", domain.ErrReport)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: no measurement to render", domain.ErrReport)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 12, "BMI Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 12)
	rows := [][2]string{
		{"Name", user.Name},
		{"Age", fmt.Sprintf("%d", user.Age)},
		{"Gender", user.Gender},
		{"Height (cm)", formatNumber(m.HeightCm)},
		{"Weight (kg)", formatNumber(m.WeightKg)},
		{"BMI", fmt.Sprintf("%.2f", m.Bmi)},
		{"Category", m.Category},
		{"Measured at", m.CreatedAt.UTC().Format("2006-01-02 15:04:05 UTC")},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(50, 10, row[0], "1", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 10, row[1], "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrReport, err)
	}
	return buf.Bytes(), nil
}

// formatNumber renders 165.0 as "165" and 72.4 as "72.4".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
