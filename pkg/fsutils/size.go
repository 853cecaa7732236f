package fsutils

import "strconv"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// FormatSize renders a byte count for a narrow column: one decimal below 10 units,
// whole numbers above, binary multiples.
func FormatSize(size int64) string {
	if size < 1024 {
		return strconv.FormatInt(size, 10) + " B"
	}
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	if value < 10 {
		return strconv.FormatFloat(value, 'f', 1, 64) + " " + sizeUnits[unit]
	}
	return strconv.FormatFloat(value, 'f', 0, 64) + " " + sizeUnits[unit]
}
