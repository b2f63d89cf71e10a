package appointment

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/BruksfildServices01/frontdesk/internal/httperr"
)

var csvHeader = []string{"Patient Name", "Email", "Phone", "Date", "Time", "Reason", "Status"}

var ErrNothingToExport = httperr.BusinessError{
	Code:    httperr.CodeNothingToExport,
	Message: "No appointments to export.",
}

// CSVField quotes s when it holds a comma, a double quote or a newline.
func CSVField(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func csvRecord(r Row) []string {
	return []string{
		r.PatientName,
		r.PatientEmail,
		r.PatientPhone,
		r.Date,
		r.Time,
		strings.ReplaceAll(r.Reason, "\n", " "),
		string(r.Status),
	}
}

// WriteCSV writes the header and one line per row, lines joined by "\n".
func WriteCSV(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return ErrNothingToExport
	}

	records := make([][]string, 0, len(rows)+1)
	records = append(records, csvHeader)
	for _, r := range rows {
		records = append(records, csvRecord(r))
	}

	for i, rec := range records {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		fields := make([]string, len(rec))
		for j, f := range rec {
			fields[j] = CSVField(f)
		}
		if _, err := io.WriteString(w, strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return nil
}

// BuildCSV renders the export of a derived page: filtered and sorted, never
// paginated.
func BuildCSV(page Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, page.Filtered); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ExportFileName(now time.Time) string {
	return "appointments_" + now.Format("2006-01-02") + ".csv"
}
