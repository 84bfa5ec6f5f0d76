package pdf

import (
	"strconv"
	"strings"
)

// FormatINR renders an amount with the rupee sign and Indian digit
// grouping: the last three digits form one group, every pair after
// that gets its own separator, e.g. ₹12,34,567.50.
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.FormatFloat(amount, 'f', 2, 64)
	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	grouped := intPart
	if len(intPart) > 3 {
		head := intPart[:len(intPart)-3]
		tail := intPart[len(intPart)-3:]

		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		grouped = strings.Join(groups, ",") + "," + tail
	}

	out := "₹" + grouped + "." + parts[1]
	if neg {
		return "-" + out
	}
	return out
}
