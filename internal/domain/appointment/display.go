package appointment

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatTime12h renders "14:30" as "02:30 PM". Input it cannot read is
// returned unchanged.
func FormatTime12h(t string) string {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok {
		return t
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return t
	}
	m, err := strconv.Atoi(mm)
	if err != nil || m < 0 || m > 59 {
		return t
	}

	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, m, ampm)
}

func DisplayName(name string) string {
	if name == "" {
		return "-"
	}
	return name
}
