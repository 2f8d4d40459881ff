package hyrox

import (
	"fmt"
	"strconv"
	"strings"

	"hyroxstats-backend/lib/htmlutil"
	"hyroxstats-backend/lib/racetime"
	"hyroxstats-backend/lib/textutil"
)

// StructureError reports a page whose markup does not match the layout
// the parser expects.
type StructureError struct {
	Reason string
}

func (e StructureError) Error() string {
	return fmt.Sprintf("unexpected result page structure: %s", e.Reason)
}

// an athlete result page carries exactly six tables, in this order
const resultTableCount = 6

// resultTables names the positional table layout of a result page so
// nothing past this adapter indexes tables by number.
type resultTables struct {
	participant   htmlutil.Table
	scoring       htmlutil.Table
	workoutResult htmlutil.Table
	judgeDecision htmlutil.Table
	overallTime   htmlutil.Table
	splits        htmlutil.Table
}

func splitResultTables(tables []htmlutil.Table) (resultTables, error) {
	if len(tables) != resultTableCount {
		return resultTables{}, StructureError{Reason: fmt.Sprintf(
			"got %d tables, want %d", len(tables), resultTableCount,
		)}
	}
	return resultTables{
		participant:   tables[0],
		scoring:       tables[1],
		workoutResult: tables[2],
		judgeDecision: tables[3],
		overallTime:   tables[4],
		splits:        tables[5],
	}, nil
}

// WorkoutRow is one segment of the workout-result table. Row order is
// course order.
type WorkoutRow struct {
	Split   string
	Time    string
	Seconds racetime.Duration
}

// SplitRow is one checkpoint of the cumulative splits table.
type SplitRow struct {
	Split string
	Time  string
}

// Exercise pairs a split label with its elapsed time.
type Exercise struct {
	Label   string
	Seconds racetime.Duration
}

// AthleteRecord is the parsed result of one athlete page. It is built
// once by ParseRecord and never mutated afterwards.
type AthleteRecord struct {
	Participant   map[string]string
	Scoring       htmlutil.Table
	WorkoutResult []WorkoutRow
	JudgeDecision htmlutil.Table
	OverallTime   htmlutil.Table
	Splits        []SplitRow

	rank int
}

const nameAttribute = "Name"
const roxzoneLabel = "Roxzone Time"
const overallTimeLabel = "Overall Time"

// ParseRecord builds an AthleteRecord from the six raw tables of a
// result page. A missing table, column or row fails the whole record
// with a StructureError, it never partially populates fields.
func ParseRecord(tables []htmlutil.Table) (*AthleteRecord, error) {
	t, err := splitResultTables(tables)
	if err != nil {
		return nil, err
	}

	participant := make(map[string]string, len(t.participant.Rows))
	for _, row := range t.participant.Rows {
		if len(row) < 2 {
			continue
		}
		if _, ok := participant[row[0]]; !ok {
			participant[row[0]] = row[1]
		}
	}
	if participant[nameAttribute] == "" {
		return nil, StructureError{Reason: "participant table has no name attribute"}
	}

	workout, err := parseWorkoutRows(t.workoutResult)
	if err != nil {
		return nil, err
	}

	rank, err := parseRank(t.overallTime)
	if err != nil {
		return nil, err
	}
	if !hasRow(t.overallTime, overallTimeLabel) {
		return nil, StructureError{Reason: "overall table has no overall time row"}
	}

	splits, err := parseSplitRows(t.splits)
	if err != nil {
		return nil, err
	}

	return &AthleteRecord{
		Participant:   participant,
		Scoring:       t.scoring,
		WorkoutResult: workout,
		JudgeDecision: t.judgeDecision,
		OverallTime:   t.overallTime,
		Splits:        splits,
		rank:          rank,
	}, nil
}

func parseWorkoutRows(table htmlutil.Table) ([]WorkoutRow, error) {
	splitCol := table.Column("Split")
	timeCol := table.Column("Time")
	if splitCol < 0 || timeCol < 0 {
		return nil, StructureError{Reason: "workout table is missing its split or time column"}
	}

	rows := make([]WorkoutRow, len(table.Rows))
	texts := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		if len(row) <= splitCol || len(row) <= timeCol {
			return nil, StructureError{Reason: "workout row is shorter than its header"}
		}
		rows[i] = WorkoutRow{Split: row[splitCol], Time: row[timeCol]}
		texts[i] = row[timeCol]
	}

	seconds, err := racetime.ParseSeries(texts)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Seconds = seconds[i]
	}
	return rows, nil
}

// the overall table has no header, its first row carries the rank in
// the second cell
func parseRank(table htmlutil.Table) (int, error) {
	if len(table.Rows) == 0 || len(table.Rows[0]) < 2 {
		return 0, StructureError{Reason: "overall table has no rank cell"}
	}
	rank, err := strconv.Atoi(table.Rows[0][1])
	if err != nil || rank < 1 {
		return 0, StructureError{Reason: fmt.Sprintf(
			"overall rank %q is not a positive integer", table.Rows[0][1],
		)}
	}
	return rank, nil
}

func parseSplitRows(table htmlutil.Table) ([]SplitRow, error) {
	splitCol := table.Column("Split")
	timeCol := table.Column("Time")
	if splitCol < 0 || timeCol < 0 {
		return nil, StructureError{Reason: "splits table is missing its split or time column"}
	}

	rows := make([]SplitRow, len(table.Rows))
	for i, row := range table.Rows {
		if len(row) <= splitCol || len(row) <= timeCol {
			return nil, StructureError{Reason: "splits row is shorter than its header"}
		}
		rows[i] = SplitRow{Split: row[splitCol], Time: row[timeCol]}
	}
	return rows, nil
}

func hasRow(table htmlutil.Table, label string) bool {
	for _, row := range table.Rows {
		if len(row) >= 2 && row[0] == label {
			return true
		}
	}
	return false
}

func (r *AthleteRecord) Rank() int {
	return r.rank
}

func (r *AthleteRecord) Name(withRank bool) string {
	name := r.Participant[nameAttribute]
	if withRank {
		name = textutil.Ordinal(r.rank) + " " + name
	}
	return name
}

// Exercises returns every workout row's time, in course order.
func (r *AthleteRecord) Exercises() []Exercise {
	out := make([]Exercise, len(r.WorkoutResult))
	for i, row := range r.WorkoutResult {
		out[i] = Exercise{Label: row.Split, Seconds: row.Seconds}
	}
	return out
}

// runningRows selects workout rows by label. The number of run
// segments varies by event, so this never assumes a count.
func runningRows(rows []WorkoutRow) []WorkoutRow {
	var out []WorkoutRow
	for _, row := range rows {
		if strings.Contains(row.Split, "Running") {
			out = append(out, row)
		}
	}
	return out
}

// strideRows selects every second workout row starting at index 1 and
// stopping before the two trailing summary rows. This mirrors the
// fixed run/station alternation of the course layout and will pick the
// wrong rows if an event reorders the workout table; keep it separate
// from runningRows so fixing one cannot silently change the other.
func strideRows(rows []WorkoutRow) []WorkoutRow {
	var out []WorkoutRow
	for i := 1; i < len(rows)-2; i += 2 {
		out = append(out, rows[i])
	}
	return out
}

// Runs returns the run-segment times re-indexed 1..K in course order.
func (r *AthleteRecord) Runs() []racetime.Duration {
	rows := runningRows(r.WorkoutResult)
	out := make([]racetime.Duration, len(rows))
	for i, row := range rows {
		out[i] = row.Seconds
	}
	return out
}

// OtherExercises returns the station times, selected by position.
func (r *AthleteRecord) OtherExercises() []Exercise {
	rows := strideRows(r.WorkoutResult)
	out := make([]Exercise, len(rows))
	for i, row := range rows {
		out[i] = Exercise{Label: row.Split, Seconds: row.Seconds}
	}
	return out
}

// RoxzoneTime returns the transition-zone time, or the invalid
// Duration when the row is absent.
func (r *AthleteRecord) RoxzoneTime() racetime.Duration {
	for _, row := range r.WorkoutResult {
		if row.Split == roxzoneLabel {
			return row.Seconds
		}
	}
	return racetime.Duration{}
}

// OverallSeconds parses the athlete's net finishing time.
func (r *AthleteRecord) OverallSeconds() (racetime.Duration, error) {
	for _, row := range r.OverallTime.Rows {
		if len(row) >= 2 && row[0] == overallTimeLabel {
			return racetime.Parse(row[1])
		}
	}
	// unreachable for records built by ParseRecord
	return racetime.Duration{}, StructureError{Reason: "overall table has no overall time row"}
}

// CumulativeSplits parses the checkpoint table into elapsed time per
// split label, preserving row order.
func (r *AthleteRecord) CumulativeSplits() ([]Exercise, error) {
	out := make([]Exercise, len(r.Splits))
	for i, s := range r.Splits {
		d, err := racetime.Parse(s.Time)
		if err != nil {
			return nil, err
		}
		out[i] = Exercise{Label: s.Split, Seconds: d}
	}
	return out, nil
}
