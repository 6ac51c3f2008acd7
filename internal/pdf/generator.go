package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/brightwave-agency/proposals-service/internal/model"
)

type Generator struct {
	fontName string
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica"}
}

// Generate renders the signed service agreement for a proposal.
func (g *Generator) Generate(doc model.AgreementDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 16)
	pdf.CellFormat(0, 10, tr("Marketing Service Agreement"), "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Prepared for %s", doc.Proposal.ClientName)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(doc.Proposal.HeroTitle), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Engagement", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	headers := []string{"Plan", "Monthly fee", "Terms"}
	colWidths := []float64{55, 35, 80}
	drawTableRow(pdf, g.fontName, headers, colWidths, true)
	drawTableRow(pdf, g.fontName, []string{
		tr(doc.Proposal.PricingOption1Name),
		formatMoney(doc.Proposal.PricingOption1Price),
		tr(doc.Proposal.PricingOption1Desc),
	}, colWidths, false)
	drawTableRow(pdf, g.fontName, []string{
		tr(doc.Proposal.PricingOption2Name),
		formatMoney(doc.Proposal.PricingOption2Price),
		tr(doc.Proposal.PricingOption2Desc),
	}, colWidths, false)
	pdf.Ln(6)

	if doc.Proposal.CustomNote != nil && *doc.Proposal.CustomNote != "" {
		pdf.SetFont(g.fontName, "B", 12)
		pdf.CellFormat(0, 8, "Notes", "", 1, "L", false, 0, "")
		pdf.SetFont(g.fontName, "", 10)
		pdf.MultiCell(0, 5, tr(*doc.Proposal.CustomNote), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 8, "Accepted by", "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 10)

	addSignatureLine(pdf, "Name", tr(doc.Acceptance.ClientName))
	addSignatureLine(pdf, "Title", tr(doc.Acceptance.Title))
	addSignatureLine(pdf, "Email", tr(doc.Acceptance.Email))
	addSignatureLine(pdf, "Signature", tr(doc.Acceptance.Signature))
	addSignatureLine(pdf, "Date", tr(doc.Acceptance.Date))
	pdf.Ln(4)

	pdf.SetFont(g.fontName, "I", 9)
	pdf.CellFormat(0, 5, tr(fmt.Sprintf("Recorded %s", formatTimestamp(doc.AcceptedAt))), "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func addSignatureLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(35, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, value, "B", 1, "L", false, 0, "")
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, cells []string, widths []float64, header bool) {
	if header {
		pdf.SetFont(fontName, "B", 10)
		pdf.SetFillColor(235, 235, 235)
	} else {
		pdf.SetFont(fontName, "", 10)
		pdf.SetFillColor(255, 255, 255)
	}
	for i, cell := range cells {
		pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", header, 0, "")
	}
	pdf.Ln(-1)
}

func formatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04 MST")
}
