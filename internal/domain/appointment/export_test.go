package appointment

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVField(t *testing.T) {
	assert.Equal(t, "plain", CSVField("plain"))
	assert.Equal(t, `"a,b"`, CSVField("a,b"))
	assert.Equal(t, `"say ""hi"""`, CSVField(`say "hi"`))
	assert.Equal(t, "\"two\nlines\"", CSVField("two\nlines"))
	assert.Equal(t, "", CSVField(""))
}

func TestWriteCSVRoundTrip(t *testing.T) {
	r := row(`O'Brien, "Pat"`, "2024-01-05", "09:00", "line one\nline two, with comma", StatusPending)
	r.PatientEmail = "pat@example.com"
	r.PatientPhone = "+1 555 123 4567"

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, []Row{r}))

	records, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		`O'Brien, "Pat"`,
		"pat@example.com",
		"+1 555 123 4567",
		"2024-01-05",
		"09:00",
		"line one line two, with comma",
		"Pending",
	}, records[1])
}

func TestWriteCSVLayout(t *testing.T) {
	a := row("Ann", "2024-01-05", "09:00", "checkup", StatusPending)
	b := row("Ben", "2024-01-06", "10:00", "flu", StatusCompleted)

	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, []Row{a, b}))

	assert.Equal(t,
		"Patient Name,Email,Phone,Date,Time,Reason,Status\n"+
			"Ann,,,2024-01-05,09:00,checkup,Pending\n"+
			"Ben,,,2024-01-06,10:00,flu,Completed",
		sb.String())
}

func TestWriteCSVEmpty(t *testing.T) {
	var sb strings.Builder
	err := WriteCSV(&sb, nil)
	assert.ErrorIs(t, err, ErrNothingToExport)
	assert.Zero(t, sb.Len())
}

func TestBuildCSVIgnoresPagination(t *testing.T) {
	rows := randomRows(25, 6)
	page := Derive(rows, ViewParams{Status: StatusPending, PageSize: 10, Page: 2})

	out, err := BuildCSV(page)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, len(page.Filtered)+1)
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "appointments_2024-01-05.csv", ExportFileName(now))
}

func TestFormatTime12h(t *testing.T) {
	assert.Equal(t, "09:00 AM", FormatTime12h("09:00"))
	assert.Equal(t, "02:30 PM", FormatTime12h("14:30"))
	assert.Equal(t, "12:00 AM", FormatTime12h("00:00"))
	assert.Equal(t, "12:15 PM", FormatTime12h("12:15"))
	assert.Equal(t, "noon", FormatTime12h("noon"))
	assert.Equal(t, "", FormatTime12h(""))
	assert.Equal(t, "-", DisplayName(""))
	assert.Equal(t, "Ann", DisplayName("Ann"))
}
