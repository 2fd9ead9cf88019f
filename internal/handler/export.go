package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/oapi-codegen/runtime"
	"github.com/xuri/excelize/v2"

	"github.com/pkordes/fyyur/internal/domain"
)

// Export formats accepted by ?format=.
const (
	formatCSV  = "csv"
	formatXLSX = "xlsx"
)

const exportSheet = "Shows"

// exportHeaders defines the column names written as the first row of any export.
var exportHeaders = []string{
	"show_id", "start_time", "status",
	"venue_id", "venue_name",
	"artist_id", "artist_name",
}

// GetExport implements GET /shows/export.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	var format *string
	if err := runtime.BindQueryParameter("form", true, false, "format", r.URL.Query(), &format); err != nil {
		s.renderError(w, r, http.StatusBadRequest, "Invalid export format.")
		return
	}
	want := formatCSV
	if format != nil {
		want = *format
	}
	if want != formatCSV && want != formatXLSX {
		s.renderError(w, r, http.StatusBadRequest, "Unknown export format "+strconv.Quote(want)+".")
		return
	}

	rows, err := s.export.Export(r.Context())
	if err != nil {
		s.serverError(w, r, err, "The export could not be built.")
		return
	}

	if want == formatXLSX {
		body, err := buildXLSX(rows)
		if err != nil {
			s.serverError(w, r, err, "The export could not be built.")
			return
		}
		writeDownload(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "shows.xlsx", body)
		return
	}
	writeDownload(w, "text/csv; charset=utf-8", "shows.csv", buildCSV(rows))
}

func writeDownload(w http.ResponseWriter, contentType, filename string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// buildCSV encodes domain rows as CSV with a header row.
func buildCSV(rows []domain.ExportRow) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	w.Write(exportHeaders)
	for _, r := range rows {
		//nolint:errcheck
		w.Write(exportRecord(r))
	}
	w.Flush()
	return buf.Bytes()
}

// buildXLSX writes the same table as buildCSV into a single-sheet workbook.
func buildXLSX(rows []domain.ExportRow) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if err := xl.SetSheetRow(exportSheet, "A1", &exportHeaders); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		record := exportRecord(r)
		if err := xl.SetSheetRow(exportSheet, cell, &record); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// exportRecord encodes a domain.ExportRow as a flat string slice.
func exportRecord(r domain.ExportRow) []string {
	return []string{
		strconv.FormatInt(r.ShowID, 10),
		r.StartTime,
		r.Status,
		strconv.FormatInt(r.VenueID, 10),
		r.VenueName,
		strconv.FormatInt(r.ArtistID, 10),
		r.ArtistName,
	}
}
