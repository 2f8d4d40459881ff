package hyrox

import (
	"errors"
	"testing"

	"hyroxstats-backend/lib/htmlutil"
	"hyroxstats-backend/lib/racetime"

	"github.com/stretchr/testify/require"
)

// athleteTables builds the six-table layout of a result page. The
// workout rows follow the run/station alternation the stride selector
// expects: Roxzone first, then station/run pairs, then two summary
// rows.
func athleteTables(name string, rank string) []htmlutil.Table {
	return []htmlutil.Table{
		{
			Rows: [][]string{
				{"Name", name},
				{"Nation", "USA"},
				{"Age Class", "30-34"},
			},
		},
		{
			Header: []string{"Category", "Points"},
			Rows: [][]string{
				{"Overall", "100"},
			},
		},
		{
			Header: []string{"Split", "Time"},
			Rows: [][]string{
				{"Roxzone Time", "0:06:30"},
				{"1000m SkiErg", "0:04:35"},
				{"Running 1", "0:04:17"},
				{"50m Sled Push", "0:02:55"},
				{"Running 2", "0:04:25"},
				{"1000m Row", "0:04:50"},
				{"Running 3", "0:04:40"},
				{"100 Wall Balls", "0:07:10"},
				{"Best Lap", "0:04:17"},
				{"Total", "0:39:22"},
			},
		},
		{
			Header: []string{"Station", "Decision"},
			Rows: [][]string{
				{"100 Wall Balls", "None"},
			},
		},
		{
			Rows: [][]string{
				{"Rank", rank},
				{"Overall Time", "0:39:22"},
			},
		},
		{
			Header: []string{"Split", "Time"},
			Rows: [][]string{
				{"Running 1", "0:04:17"},
				{"1000m SkiErg", "0:08:52"},
				{"Running 2", "0:13:17"},
			},
		},
	}
}

func TestParseRecord(t *testing.T) {
	record, err := ParseRecord(athleteTables("Hunter McIntyre", "1"))
	require.NoError(t, err)

	require.Equal(t, 1, record.Rank())
	require.Equal(t, "Hunter McIntyre", record.Name(false))
	require.Equal(t, "1st Hunter McIntyre", record.Name(true))
	require.Equal(t, "USA", record.Participant["Nation"])

	require.Len(t, record.WorkoutResult, 10)
	require.Equal(t, racetime.FromSeconds(390), record.RoxzoneTime())

	overall, err := record.OverallSeconds()
	require.NoError(t, err)
	require.Equal(t, racetime.FromSeconds(39*60+22), overall)
}

func TestParseRecordRowOrder(t *testing.T) {
	tables := athleteTables("Hunter McIntyre", "1")
	record, err := ParseRecord(tables)
	require.NoError(t, err)

	workoutTable := tables[2]
	require.Len(t, record.WorkoutResult, len(workoutTable.Rows))
	for i, row := range record.WorkoutResult {
		require.Equal(t, workoutTable.Rows[i][0], row.Split)
		require.Equal(t, workoutTable.Rows[i][1], row.Time)

		expected, err := racetime.Parse(row.Time)
		require.NoError(t, err)
		require.Equal(t, expected, row.Seconds)
	}
}

func TestRuns(t *testing.T) {
	record, err := ParseRecord(athleteTables("Hunter McIntyre", "1"))
	require.NoError(t, err)

	runs := record.Runs()
	require.Equal(t, []racetime.Duration{
		racetime.FromSeconds(4*60 + 17),
		racetime.FromSeconds(4*60 + 25),
		racetime.FromSeconds(4*60 + 40),
	}, runs)

	// the run count must match the label predicate, not a constant
	count := 0
	for _, row := range record.WorkoutResult {
		if len(runningRows([]WorkoutRow{row})) > 0 {
			count++
		}
	}
	require.Equal(t, count, len(runs))
}

func TestOtherExercises(t *testing.T) {
	record, err := ParseRecord(athleteTables("Hunter McIntyre", "1"))
	require.NoError(t, err)

	exercises := record.OtherExercises()
	require.Equal(t, []Exercise{
		{Label: "1000m SkiErg", Seconds: racetime.FromSeconds(4*60 + 35)},
		{Label: "50m Sled Push", Seconds: racetime.FromSeconds(2*60 + 55)},
		{Label: "1000m Row", Seconds: racetime.FromSeconds(4*60 + 50)},
		{Label: "100 Wall Balls", Seconds: racetime.FromSeconds(7*60 + 10)},
	}, exercises)
}

func TestCumulativeSplits(t *testing.T) {
	record, err := ParseRecord(athleteTables("Hunter McIntyre", "1"))
	require.NoError(t, err)

	splits, err := record.CumulativeSplits()
	require.NoError(t, err)
	require.Equal(t, []Exercise{
		{Label: "Running 1", Seconds: racetime.FromSeconds(4*60 + 17)},
		{Label: "1000m SkiErg", Seconds: racetime.FromSeconds(8*60 + 52)},
		{Label: "Running 2", Seconds: racetime.FromSeconds(13*60 + 17)},
	}, splits)
}

func TestParseRecordWrongTableCount(t *testing.T) {
	tables := athleteTables("Hunter McIntyre", "1")

	_, err := ParseRecord(tables[:5])
	var structureErr StructureError
	require.True(t, errors.As(err, &structureErr))

	_, err = ParseRecord(append(tables, htmlutil.Table{}))
	require.True(t, errors.As(err, &structureErr))
}

func TestParseRecordMissingName(t *testing.T) {
	tables := athleteTables("Hunter McIntyre", "1")
	tables[0].Rows = [][]string{{"Nation", "USA"}}

	_, err := ParseRecord(tables)
	var structureErr StructureError
	require.True(t, errors.As(err, &structureErr))
}

func TestParseRecordMissingTimeColumn(t *testing.T) {
	tables := athleteTables("Hunter McIntyre", "1")
	tables[2].Header = []string{"Split", "Result"}

	_, err := ParseRecord(tables)
	var structureErr StructureError
	require.True(t, errors.As(err, &structureErr))
}

func TestParseRecordBadRank(t *testing.T) {
	for _, rank := range []string{"abc", "0", "-3", ""} {
		_, err := ParseRecord(athleteTables("Hunter McIntyre", rank))
		var structureErr StructureError
		require.True(t, errors.As(err, &structureErr), rank)
	}
}

func TestParseRecordMissingOverallTimeRow(t *testing.T) {
	tables := athleteTables("Hunter McIntyre", "1")
	tables[4].Rows = [][]string{{"Rank", "1"}}

	_, err := ParseRecord(tables)
	var structureErr StructureError
	require.True(t, errors.As(err, &structureErr))
}

func TestParseRecordMalformedTime(t *testing.T) {
	tables := athleteTables("Hunter McIntyre", "1")
	tables[2].Rows[3][1] = "2:55"

	_, err := ParseRecord(tables)
	var formatErr racetime.FormatError
	require.True(t, errors.As(err, &formatErr))
}

func TestNoTimeSplitStaysMissing(t *testing.T) {
	tables := athleteTables("Hunter McIntyre", "1")
	tables[2].Rows[5][1] = racetime.NoTime

	record, err := ParseRecord(tables)
	require.NoError(t, err)
	require.False(t, record.WorkoutResult[5].Seconds.Valid)
}
