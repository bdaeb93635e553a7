package export

import (
	"io"

	"github.com/go-pdf/fpdf"

	"github.com/andrewmaci/KebabManager/internal/order"
)

// Column labels of the order report, in table order.
var reportColumns = []string{"Imie", "Typ", "Rozmiar", "Sos", "Mieso"}

const (
	reportTitle    = "Kebab Order Report"
	colWidth       = 36.0
	rowHeight      = 8.0
	tableLeft      = 14.0
	titleFontSize  = 20.0
	headerFontSize = 10.0
	bodyFontSize   = 10.0
)

// OrderReportPDF renders a tabular report of the given orders and writes the
// PDF to w. The optional date appears in the subtitle. Long order lists flow
// onto additional pages.
func OrderReportPDF(w io.Writer, orders []order.Data, date string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleFontSize)
	pdf.SetXY(tableLeft, 14)
	pdf.Cell(0, 10, reportTitle)

	if date != "" {
		pdf.SetFont("Helvetica", "", headerFontSize)
		pdf.SetXY(tableLeft, 26)
		pdf.Cell(0, 5, "Orders for: "+date)
	}

	pdf.SetY(33)
	writeHeaderRow(pdf)

	pdf.SetFont("Helvetica", "", bodyFontSize)
	pdf.SetFillColor(255, 255, 255)
	pdf.SetTextColor(0, 0, 0)
	for _, o := range orders {
		if pdf.GetY()+rowHeight > 282 {
			pdf.AddPage()
			writeHeaderRow(pdf)
			pdf.SetFont("Helvetica", "", bodyFontSize)
			pdf.SetFillColor(255, 255, 255)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.SetX(tableLeft)
		for _, cell := range []string{o.CustomerName, o.KebabType, o.Size, o.Sauce, o.MeatType} {
			pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}

	return pdf.Output(w)
}

// writeHeaderRow draws the amber column header matching the storefront's
// report styling.
func writeHeaderRow(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", headerFontSize)
	pdf.SetFillColor(217, 119, 6)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetX(tableLeft)
	for _, label := range reportColumns {
		pdf.CellFormat(colWidth, rowHeight, label, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(rowHeight)
}
