package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/flatsql/internal/table"
)

// WriteSchema renders the columns of a table and their inferred types.
func WriteSchema(w io.Writer, columns []table.Column) {
	data := make([][]string, len(columns))
	for i, col := range columns {
		data[i] = []string{col.Name, col.Type.String()}
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"column", "type"})
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.AppendBulk(data)
	tw.Render()
}
