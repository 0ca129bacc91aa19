package devapi

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/models"
	"github.com/gin-gonic/gin"
	"github.com/phpdave11/gofpdf"
)

const (
	contentTypeCSV = "text/csv; charset=utf-8"
	contentTypePDF = "application/pdf"
	exportStamp    = "20060102-150405"
)

var reportColumns = []string{"ID", "Reporter", "Type", "Reported", "Reason", "Status", "Created"}

// exportRows returns every report matching the request filters, unpaged.
func (s *Server) exportRows(c *gin.Context) []models.Report {
	ctx := c.Request.Context()
	q := models.QueryFromValues(c.Request.URL.Query())
	q.Page = 1
	q.Limit = max(len(s.store.Reports.All(ctx)), 1)

	env, _ := s.store.Reports.List(ctx, q)
	return env.Data
}

func reportRow(r models.Report) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.ReporterName,
		r.ReportType,
		r.ReportedName,
		r.Reason,
		r.Status,
		r.CreatedAt.Format(time.DateTime),
	}
}

func attach(c *gin.Context, contentType, name string, data []byte) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	c.Data(http.StatusOK, contentType, data)
}

// exportExcel serves the reports as CSV, which spreadsheet tools open
// directly.
func (s *Server) exportExcel(c *gin.Context) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write(reportColumns)
	for _, r := range s.exportRows(c) {
		_ = w.Write(reportRow(r))
	}
	w.Flush()
	if err := w.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, models.Failure[any]("", err.Error()))
		return
	}

	attach(c, contentTypeCSV, "reports-"+s.now().Format(exportStamp)+".csv", buf.Bytes())
}

func (s *Server) exportPDF(c *gin.Context) {
	data, err := buildReportsPDF(s.exportRows(c), s.now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.Failure[any]("", err.Error()))
		return
	}

	attach(c, contentTypePDF, "reports-"+s.now().Format(exportStamp)+".pdf", data)
}

var pdfWidths = []float64{12, 38, 22, 45, 80, 25, 35}

func buildReportsPDF(rows []models.Report, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Reports", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Reports")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s, %d record(s)", now.Format(time.DateTime), len(rows)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range reportColumns {
		pdf.CellFormat(pdfWidths[i], 7, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	for _, r := range rows {
		for i, v := range reportRow(r) {
			pdf.CellFormat(pdfWidths[i], 6, truncate(tr(v), pdfWidths[i]), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// truncate shortens s to roughly fit a cell of width mm at 9pt.
func truncate(s string, width float64) string {
	n := int(width / 1.8)
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "~"
}
