package goodmorning

import (
	"fmt"
	"strconv"
)

// FormatReport renders the one-line morning summary. The connective is
// "as" only for Same ("about the same as yesterday"), and the smiley
// replaces the period when the day's average sits in the 60–80°F comfort
// band, both ends inclusive.
func FormatReport(today Stats, diff TempDifference) string {
	than := "than"
	if diff == Same {
		than = "as"
	}

	end := "."
	if 60.0 <= today.Avg && today.Avg <= 80.0 {
		end = " :)"
	}

	return fmt.Sprintf(
		"Good morning! Today will be about %.2f°F (%s - %s°F); that's %s %s yesterday%s",
		today.Avg,
		formatTemp(today.Min),
		formatTemp(today.Max),
		diff,
		than,
		end,
	)
}

// formatTemp prints a temperature the short way: 55, not 55.000000.
func formatTemp(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
