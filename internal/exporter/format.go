package exporter

import (
	"fmt"
	"strconv"
	"time"
)

// formatCell renders one table cell as CSV text. A nil cell (missing key)
// renders as an empty string.
func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case time.Time:
		return c.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(c, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'g', -1, 32)
	case bool:
		return strconv.FormatBool(c)
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", c)
	default:
		return fmt.Sprint(c)
	}
}
