// Package analysis turns a set of scraped athlete records into
// comparison tables for rendering. Every view filters out unusable
// records before joining, so a failed parse shrinks a table instead of
// breaking it.
package analysis

import (
	"fmt"

	"hyroxstats-backend/lib/racetime"
	"hyroxstats-backend/lib/scrapers/hyrox"
	"hyroxstats-backend/lib/textutil"
)

// Table is a labeled duration matrix: one row per Index entry, one
// Column per athlete. Cells hold the invalid Duration where an athlete
// has no value for a row.
type Table struct {
	Index   []string
	Columns []Column
}

// Column is one athlete's cells, aligned to the table's Index. The
// label is a display concern only, two athletes may share one.
type Column struct {
	Label string
	Cells []racetime.Duration
}

// Transposed swaps rows and columns.
func (t Table) Transposed() Table {
	out := Table{Index: make([]string, len(t.Columns))}
	for i, col := range t.Columns {
		out.Index[i] = col.Label
	}

	out.Columns = make([]Column, len(t.Index))
	for r, label := range t.Index {
		cells := make([]racetime.Duration, len(t.Columns))
		for c, col := range t.Columns {
			cells[c] = col.Cells[r]
		}
		out.Columns[r] = Column{Label: label, Cells: cells}
	}
	return out
}

type labeledSeries struct {
	label string
	cells []hyrox.Exercise
}

// a split label may legitimately repeat within one athlete ("Running"
// appears once per segment), so join keys carry an occurrence number
type labelKey struct {
	label string
	n     int
}

// joinByLabel outer-joins the series on split label: the index is the
// union of labels in first-seen order, athletes missing a label get
// the invalid Duration in that cell.
func joinByLabel(series []labeledSeries) Table {
	var index []string
	var keys []labelKey
	pos := map[labelKey]int{}
	for _, s := range series {
		seen := map[string]int{}
		for _, cell := range s.cells {
			key := labelKey{label: cell.Label, n: seen[cell.Label]}
			seen[cell.Label]++
			if _, ok := pos[key]; !ok {
				pos[key] = len(index)
				index = append(index, cell.Label)
				keys = append(keys, key)
			}
		}
	}

	out := Table{Index: index, Columns: make([]Column, len(series))}
	for i, s := range series {
		cells := make([]racetime.Duration, len(index))
		seen := map[string]int{}
		for _, cell := range s.cells {
			key := labelKey{label: cell.Label, n: seen[cell.Label]}
			seen[cell.Label]++
			cells[pos[key]] = cell.Seconds
		}
		out.Columns[i] = Column{Label: s.label, Cells: cells}
	}
	return out
}

// Exercises returns every workout time of every athlete, one row per
// athlete, columns aligned by split label with outer-join semantics.
func Exercises(d hyrox.Details, withRank bool) Table {
	var series []labeledSeries
	for _, record := range d.Records() {
		series = append(series, labeledSeries{
			label: record.Name(withRank),
			cells: record.Exercises(),
		})
	}
	return joinByLabel(series).Transposed()
}

// OtherExercises returns the station times, one column per athlete,
// rows aligned by split label with outer-join semantics.
func OtherExercises(d hyrox.Details, withRank bool) Table {
	var series []labeledSeries
	for _, record := range d.Records() {
		series = append(series, labeledSeries{
			label: record.Name(withRank),
			cells: record.OtherExercises(),
		})
	}
	return joinByLabel(series)
}

// Runs returns the run-segment times, one column per athlete, aligned
// by run index. Athletes with fewer segments are padded with invalid
// Durations.
func Runs(d hyrox.Details, withRank bool) Table {
	records := d.Records()

	longest := 0
	columns := make([]Column, len(records))
	for i, record := range records {
		runs := record.Runs()
		if len(runs) > longest {
			longest = len(runs)
		}
		columns[i] = Column{Label: record.Name(withRank), Cells: runs}
	}

	index := make([]string, longest)
	for i := range index {
		index[i] = fmt.Sprintf("Run %d", i+1)
	}
	for i := range columns {
		for len(columns[i].Cells) < longest {
			columns[i].Cells = append(columns[i].Cells, racetime.Duration{})
		}
	}
	return Table{Index: index, Columns: columns}
}

// CumulativeSplits returns elapsed time at every checkpoint, one
// column per athlete, rows aligned by split label. Columns are labeled
// with position ordinals ("1st <name>" for the first record in the
// set), not rank ordinals.
func CumulativeSplits(d hyrox.Details) (Table, error) {
	var series []labeledSeries
	for i, record := range d.Records() {
		splits, err := record.CumulativeSplits()
		if err != nil {
			return Table{}, err
		}
		series = append(series, labeledSeries{
			label: textutil.Ordinal(i+1) + " " + record.Name(false),
			cells: splits,
		})
	}
	return joinByLabel(series), nil
}

// OverallTime pairs an athlete with their net finishing time.
type OverallTime struct {
	Name    string
	Seconds racetime.Duration
}

// OverallTimes returns each athlete's finishing time in result-set
// order.
func OverallTimes(d hyrox.Details) ([]OverallTime, error) {
	var out []OverallTime
	for _, record := range d.Records() {
		seconds, err := record.OverallSeconds()
		if err != nil {
			return nil, err
		}
		out = append(out, OverallTime{
			Name:    record.Name(false),
			Seconds: seconds,
		})
	}
	return out, nil
}
