// Package export renders a filtered propose list as a downloadable file.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/mtlprog/proposedesk/internal/domain"
)

// Format is an export file format.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatPDF:
		return f, nil
	case "":
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, s)
	}
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == FormatPDF {
		return "application/pdf"
	}
	return "text/csv; charset=utf-8"
}

// Filename returns an attachment name for the format.
func (f Format) Filename(at time.Time) string {
	return "proposes-" + at.UTC().Format("20060102-150405") + "." + string(f)
}

// Labeler resolves status codes to display labels.
type Labeler interface {
	ProposeLabel(code string) string
	InspectionLabel(code string) string
}

// Report is the content of one export.
type Report struct {
	Title       string
	Filters     []string
	Proposes    []domain.Propose
	GeneratedAt time.Time
}

// Exporter renders reports.
type Exporter struct {
	labels Labeler
}

// NewExporter creates an Exporter using labels for status columns.
func NewExporter(labels Labeler) *Exporter {
	return &Exporter{labels: labels}
}

var header = []string{
	"id", "number", "title", "client", "city", "uf", "address",
	"status", "inspection", "scheduled", "delivery", "supplier",
}

// Write renders report in format to w.
func (e *Exporter) Write(w io.Writer, format Format, report Report) error {
	switch format {
	case FormatCSV:
		return e.writeCSV(w, report)
	case FormatPDF:
		return e.writePDF(w, report)
	default:
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
}

func (e *Exporter) writeCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range report.Proposes {
		if err := cw.Write(e.row(&report.Proposes[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func (e *Exporter) writePDF(w io.Writer, report Report) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr(report.Title), false)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 8, fmt.Sprintf("%d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr(report.Title))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 6, "Generated "+report.GeneratedAt.UTC().Format(time.RFC3339))
	pdf.Ln(6)
	for _, f := range report.Filters {
		pdf.Cell(0, 5, tr(f))
		pdf.Ln(5)
	}
	pdf.Ln(3)

	widths := []float64{12, 18, 50, 40, 28, 10, 0, 26, 26, 20, 20, 0}
	visible := []int{0, 1, 2, 3, 4, 5, 7, 8, 9, 10}

	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, i := range visible {
		pdf.CellFormat(widths[i], 6, header[i], "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i := range report.Proposes {
		row := e.row(&report.Proposes[i])
		for _, c := range visible {
			pdf.CellFormat(widths[c], 6, tr(truncate(row[c], widths[c])), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "I", 8)
	pdf.Cell(0, 5, fmt.Sprintf("%d proposes", len(report.Proposes)))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func (e *Exporter) row(p *domain.Propose) []string {
	var number, city, uf string
	if p.AdditionalInfo != nil {
		number = p.AdditionalInfo.ProposeNumber
		city = p.AdditionalInfo.City
		uf = p.AdditionalInfo.UF
	}

	var delivery string
	if p.Inspection != nil {
		delivery = formatDate(p.Inspection.Date)
	}

	var supplier string
	if p.UserSupplier != nil {
		supplier = p.UserSupplier.Username
	}

	inspection := ""
	if code := p.InspectionStatusCode(); code != "" {
		inspection = e.labels.InspectionLabel(string(code))
	}

	return []string{
		strconv.FormatInt(p.ID, 10),
		number,
		p.Title,
		p.ClientName(),
		city,
		uf,
		p.Address,
		e.labels.ProposeLabel(string(p.Status)),
		inspection,
		formatDate(p.Date),
		delivery,
		supplier,
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// truncate keeps a cell on one line; at 8pt about 1.6mm fits one character.
func truncate(s string, width float64) string {
	limit := int(width / 1.6)
	r := []rune(s)
	if limit <= 3 || len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
