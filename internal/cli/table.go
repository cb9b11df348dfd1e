package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const tablePadding = 2

// writeTable renders report rows as an aligned table. Headers are
// optional; rows keep their given order.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.Join(headers, "\t"))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// percent formats a 0-1 share for the accuracy tables.
func percent(share float64) string {
	return fmt.Sprintf("%.1f%%", share*100)
}

// ratio formats a part-of-whole count, correct/total style.
func ratio(part, whole int) string {
	return fmt.Sprintf("%d/%d", part, whole)
}
