package commands

import (
	"os"

	"hyroxstats-backend/services/analysis"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newWriter() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func renderMatrix(m analysis.Table, csv bool) {
	w := newWriter()

	header := table.Row{""}
	for _, col := range m.Columns {
		header = append(header, col.Label)
	}
	w.AppendHeader(header)

	for i, label := range m.Index {
		row := table.Row{label}
		for _, col := range m.Columns {
			row = append(row, col.Cells[i].String())
		}
		w.AppendRow(row)
	}

	if csv {
		w.RenderCSV()
		return
	}
	w.Render()
}

func renderOverall(times []analysis.OverallTime, csv bool) {
	w := newWriter()
	w.AppendHeader(table.Row{"Athlete", "Overall Time"})
	for _, t := range times {
		w.AppendRow(table.Row{t.Name, t.Seconds.String()})
	}

	if csv {
		w.RenderCSV()
		return
	}
	w.Render()
}
