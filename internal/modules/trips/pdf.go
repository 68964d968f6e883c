package trips

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

// RenderPDF lays out a shared trip as a one-column A4 document: header, day-by-day plan,
// then the booking summary when one is attached.
func RenderPDF(t *Trip) ([]byte, error) {
	if t == nil || t.Itinerary == nil {
		return nil, ErrInvalid
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(170, 10, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(20, 18)
	meta := t.Itinerary.Meta
	pdf.CellFormat(170, 6, tr(fmt.Sprintf("%s | %s to %s", meta.Destination, meta.StartDate, meta.EndDate)), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetY(35)

	section := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+tr(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(40, 6, tr(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.MultiCell(130, 6, tr(value), "", "L", false)
	}

	if t.Itinerary.Degraded {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(130, 90, 20)
		pdf.MultiCell(170, 5, "Live suggestions were unavailable; this is a general plan.", "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	for _, d := range t.Itinerary.Days {
		section(fmt.Sprintf("Day %d", d.Day))
		row("Activities", strings.Join(d.Activities, ", "))
		row("Weather", d.Weather)
		row("Hospital", d.Hospital)
		row("Pharmacy", d.Pharmacy)
		row("Tip", d.Tip)
		pdf.Ln(3)
	}

	if b := t.Booking; b != nil {
		section("Booking " + b.BookingID)
		for _, f := range b.Flights {
			row("Flight", fmt.Sprintf("%s %s-%s %s (%s) %d %s", f.Vendor, f.From, f.To, f.Date, f.Class, f.Price, b.Currency))
		}
		row("Hotel", fmt.Sprintf("%s, %d nights, %d %s", b.Hotel.Name, b.Hotel.Nights, b.Hotel.Price, b.Currency))
		for _, tp := range b.Transport {
			row(tp.Type, fmt.Sprintf("%s %d %s", tp.Vendor, tp.Price, b.Currency))
		}
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(40, 8, "Total", "", 0, "L", false, 0, "")
		pdf.CellFormat(130, 8, fmt.Sprintf("%d %s", b.Totals.GrandTotal, b.Currency), "", 1, "L", false, 0, "")
		row("Order", fmt.Sprintf("%s (%s)", b.Order.OrderID, b.Order.Status))
	}

	pdf.SetY(-22)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8, "Shared "+t.CreatedAt.UTC().Format(time.RFC1123), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "render pdf")
	}
	return buf.Bytes(), nil
}
