package export

import (
	"bytes"
	"math"
	"strings"

	gospreadsheet "github.com/VantageDataChat/GoExcel"

	"integrationdeck/deck"
	"integrationdeck/sizing"
)

// GoExcelExportService writes the companion workbook using GoExcel (pure Go)
type GoExcelExportService struct{}

// NewGoExcelExportService creates a new GoExcel export service
func NewGoExcelExportService() *GoExcelExportService {
	return &GoExcelExportService{}
}

const (
	outlineSheet = "Outline"
	sizingSheet  = "Sizing"
)

var (
	outlineHeaders = []string{"#", "Type", "Heading", "Items"}
	sizingHeaders  = []string{"Per stream (msg/min)", "Total (msg/min)", "Protocol", "Message (B)", "Overhead (%)", "MB/min", "GB/hr", "Mbps"}
)

// ExportDeckToExcel writes an outline sheet (one row per slide) and a sizing
// sheet computed from the throughput formula.
func (s *GoExcelExportService) ExportDeckToExcel(slides []deck.Slide, rows []sizing.Row, md Metadata) ([]byte, error) {
	wb := gospreadsheet.New()

	ws := wb.GetActiveSheet()
	ws.SetTitle(outlineSheet)
	writeHeader(ws, outlineHeaders)
	for i, sl := range slides {
		r := i + 1
		setCell(ws, r, 0, i+1)
		setCell(ws, r, 1, string(sl.Kind()))
		setCell(ws, r, 2, deck.Heading(sl))
		setCell(ws, r, 3, strings.Join(slideItems(sl), "\n"))
		ws.SetRowHeight(r, 20)
	}
	ws.FreezePane("A2")

	sz, err := wb.AddSheet(sizingSheet)
	if err != nil {
		return nil, wrapOperationError("create sheet "+sizingSheet, err)
	}
	writeHeader(sz, sizingHeaders)
	overhead := map[string]float64{}
	for _, p := range sizing.Protocols() {
		overhead[p.Name] = p.OverheadPercent()
	}
	for i, row := range rows {
		r := i + 1
		setCell(sz, r, 0, row.PerStream)
		setCell(sz, r, 1, row.TotalPerMin)
		setCell(sz, r, 2, row.Protocol)
		setCell(sz, r, 3, row.MessageBytes)
		setCell(sz, r, 4, round2(overhead[row.Protocol]))
		setCell(sz, r, 5, round2(row.MBPerMin))
		setCell(sz, r, 6, round2(row.GBPerHour))
		setCell(sz, r, 7, round2(row.Mbps))
		sz.SetRowHeight(r, 20)
	}
	sz.FreezePane("A2")

	wb.Properties.Title = md.Title
	wb.Properties.Creator = md.Author
	wb.Properties.Subject = md.Subject
	wb.Properties.Description = "Slide outline and protocol sizing"
	wb.Properties.LastModifiedBy = md.Author

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, wrapOperationError("write Excel file", err)
	}
	return buf.Bytes(), nil
}

func writeHeader(ws *gospreadsheet.Worksheet, headers []string) {
	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: "0F172A",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		})

	for i, h := range headers {
		cellName, _ := gospreadsheet.CellName(0, i)
		ws.SetCellValue(cellName, h)
		ws.SetCellStyle(cellName, headerStyle)

		width := float64(len(h)) * 1.4
		if width < 12 {
			width = 12
		}
		ws.SetColumnWidth(i, width)
	}
	ws.SetRowHeight(0, 25)
}

func setCell(ws *gospreadsheet.Worksheet, row, col int, v interface{}) {
	cellName, _ := gospreadsheet.CellName(row, col)
	ws.SetCellValue(cellName, v)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// slideItems lists the secondary lines of a slide for outline views.
func slideItems(sl deck.Slide) []string {
	switch v := sl.(type) {
	case deck.TitleSlide:
		return append(nonEmpty(v.Author, v.Date), v.Tags...)
	case deck.ContentSlide:
		return append(nonEmpty(v.Body), v.BulletPoints...)
	case deck.CodeSlide:
		return strings.Split(v.Code, "\n")
	case deck.ConclusionSlide:
		return append(append([]string{}, v.Takeaways...), nonEmpty(v.CTA)...)
	}
	return nil
}
