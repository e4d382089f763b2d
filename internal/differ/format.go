package differ

import (
	"math"
	"strconv"
	"strings"
	"time"
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a raw byte count with binary prefixes, rounded to two
// decimal places. Absent or unparseable values yield "".
func FormatSize(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return ""
	}

	size := math.Trunc(f)
	if size == 0 {
		// trunc of a negative fraction is -0
		size = 0
	}
	unit := 0
	for size >= 1024 && unit < len(sizeUnits)-1 {
		size /= 1024
		unit++
	}

	rounded := math.Round(size*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[unit]
}

// dateLayouts are tried in order when parsing a created timestamp
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// displayDateLayout renders e.g. "Jan 02, 2024, 03:04 PM"
const displayDateLayout = "Jan 02, 2006, 03:04 PM"

// FormatDate renders a timestamp as a human-readable UTC date. Values that do
// not parse are returned unchanged.
func FormatDate(raw string) string {
	if raw == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t.UTC().Format(displayDateLayout)
		}
	}
	return raw
}

func formatInstalled(installed bool) string {
	if installed {
		return "Installed"
	}
	return "Not Installed"
}
