package dbtime

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestParseFlexible(t *testing.T) {
	c := qt.New(t)

	for _, raw := range []string{
		"2024-06-01",
		"2024-06-01 00:00:00",
		"2024-06-01T00:00:00",
		"2024-06-01T08:00:00+08:00",
	} {
		got, ok := ParseFlexible(raw)
		c.Assert(ok, qt.IsTrue, qt.Commentf("%s", raw))
		c.Assert(got.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)), qt.IsTrue, qt.Commentf("%s", raw))
		c.Assert(got.Location(), qt.Equals, time.UTC)
	}

	_, ok := ParseFlexible("  ")
	c.Assert(ok, qt.IsFalse)
	c.Assert(ParseFlexiblePtr("June 1st"), qt.IsNil)
}

func TestFormatClock(t *testing.T) {
	c := qt.New(t)
	c.Assert(FormatClock(time.Date(2024, 1, 1, 14, 5, 0, 0, time.UTC)), qt.Equals, "2:05 PM")
	c.Assert(FormatClock(time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC)), qt.Equals, "9:30 AM")
}
