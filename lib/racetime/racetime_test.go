package racetime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		text    string
		seconds int64
	}{
		{text: "0:00:00", seconds: 0},
		{text: "0:00:01", seconds: 1},
		{text: "0:04:17", seconds: 257},
		{text: "1:02:33", seconds: 3753},
		{text: "01:02:33", seconds: 3753},
		{text: "12:00:00", seconds: 43200},
		{text: "99:59:59", seconds: 99*3600 + 59*60 + 59},
	}

	for _, test := range testCases {
		d, err := Parse(test.text)
		require.NoError(t, err, test.text)
		require.True(t, d.Valid, test.text)
		require.Equal(t, test.seconds, d.Seconds, test.text)
	}
}

func TestParseNoTime(t *testing.T) {
	d, err := Parse(NoTime)
	require.NoError(t, err)
	require.False(t, d.Valid)
	require.NotEqual(t, FromSeconds(0), d)
}

func TestParseMalformed(t *testing.T) {
	malformed := []string{
		"",
		"12:3",
		"12:30",
		"ab:cd:ef",
		"12:60:00",
		"12:00:60",
		"1:2:33",
		"1:22:3",
		"123:00:00",
		"-1:00:00",
		"1:00:00:00",
		"1.00.00",
		"—",
	}

	for _, text := range malformed {
		_, err := Parse(text)
		require.Error(t, err, text)

		var formatErr FormatError
		require.True(t, errors.As(err, &formatErr), text)
		require.Equal(t, text, formatErr.Text)
	}
}

func TestParseSeries(t *testing.T) {
	durations, err := ParseSeries([]string{"0:01:00", "–", "0:02:30"})
	require.NoError(t, err)
	require.Equal(t, []Duration{
		FromSeconds(60),
		{},
		FromSeconds(150),
	}, durations)
}

func TestParseSeriesMalformedEntry(t *testing.T) {
	_, err := ParseSeries([]string{"0:01:00", "nope"})
	require.Error(t, err)
}

func TestDurationString(t *testing.T) {
	require.Equal(t, "0:00:00", FromSeconds(0).String())
	require.Equal(t, "1:02:33", FromSeconds(3753).String())
	require.Equal(t, "12:00:00", FromSeconds(43200).String())
	require.Equal(t, NoTime, Duration{}.String())
}
