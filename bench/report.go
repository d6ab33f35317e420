// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

// WriteTable renders results as a text table:
// algorithm, size, elements, operand memory, runs, total, average.
func WriteTable(w io.Writer, results []Result) {
	table := newTable(w, []string{"algorithm", "size", "elements", "operand", "runs", "total", "avg"})
	for _, r := range results {
		table.Append([]string{
			r.Algorithm.String(),
			fmt.Sprintf("%dx%d", r.Size, r.Size),
			humanize.Comma(int64(r.Size) * int64(r.Size)),
			operandBytes(r.Size),
			strconv.Itoa(r.Runs),
			r.Total.String(),
			r.Avg().String(),
		})
	}
	table.Render()
}

// WriteComparison renders compare-mode outcomes.
func WriteComparison(w io.Writer, cs []Comparison) {
	table := newTable(w, []string{"algorithm", "size", "operand", "elapsed", "equal"})
	for _, c := range cs {
		table.Append([]string{
			c.Algorithm.String(),
			fmt.Sprintf("%dx%d", c.Size, c.Size),
			operandBytes(c.Size),
			c.Elapsed.String(),
			strconv.FormatBool(c.Equal),
		})
	}
	table.Render()
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	table.SetHeader(header)

	return table
}

// operandBytes is the storage of one n×n int64 operand.
func operandBytes(n int) string {
	return humanize.IBytes(uint64(n) * uint64(n) * 8)
}
