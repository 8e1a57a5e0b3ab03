package timepoint

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidTime = errors.New("invalid time, use HH, HH:MM, HHhMM or HH.MM")

// TimePoint is a clock value expressed in fractional hours, e.g. 14.5 for
// 14:30. All duration arithmetic goes through whole minutes so that long
// chains of additions stay exact at minute granularity.
type TimePoint float64

// Parse accepts "HH", "HH:MM", "HHhMM" and "HH.MM". The separator variants
// all mean hour + minute; "14.30" is 14:30, not 14 hours plus 0.30.
func Parse(input string) (TimePoint, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, ErrInvalidTime
	}

	var hourPart, minutePart string
	switch {
	case strings.Contains(s, ":"):
		hourPart, minutePart, _ = strings.Cut(s, ":")
	case strings.Contains(s, "h"):
		hourPart, minutePart, _ = strings.Cut(s, "h")
	case strings.Contains(s, "."):
		hourPart, minutePart, _ = strings.Cut(s, ".")
	default:
		hourPart = s
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 24 {
		return 0, ErrInvalidTime
	}

	minute := 0
	if minutePart != "" {
		minute, err = strconv.Atoi(minutePart)
		if err != nil || minute < 0 || minute > 59 {
			return 0, ErrInvalidTime
		}
	}

	// 24:00 is accepted as end-of-day, anything past it is not a clock value
	if hour == 24 && minute != 0 {
		return 0, ErrInvalidTime
	}

	return FromMinutes(hour*60 + minute), nil
}

// FromMinutes converts a minutes-since-midnight count to a TimePoint.
func FromMinutes(m int) TimePoint {
	return TimePoint(float64(m) / 60.0)
}

// Minutes returns the value as whole minutes since midnight, rounded to the
// nearest minute.
func (t TimePoint) Minutes() int {
	return int(math.Round(float64(t) * 60.0))
}

// AddMinutes returns t advanced by m minutes. The sum is computed in integer
// minutes, not by adding fractional hours, so repeated additions do not drift.
func (t TimePoint) AddMinutes(m int) TimePoint {
	return FromMinutes(t.Minutes() + m)
}

// Format renders the value as zero-padded "HH:MM". The hour part truncates
// toward zero and the remainder rounds to the nearest minute.
func (t TimePoint) Format() string {
	hour := int(t)
	minute := int(math.Round((float64(t) - float64(hour)) * 60.0))
	if minute == 60 {
		hour++
		minute = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

func (t TimePoint) Before(other TimePoint) bool {
	return t.Minutes() < other.Minutes()
}

func (t TimePoint) After(other TimePoint) bool {
	return t.Minutes() > other.Minutes()
}

// MinutesBetween returns the signed distance in minutes from start to end.
func MinutesBetween(start, end TimePoint) int {
	return end.Minutes() - start.Minutes()
}

// Overlaps reports whether the half-open ranges [aStart,aEnd) and
// [bStart,bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd TimePoint) bool {
	return aStart.Minutes() < bEnd.Minutes() && bStart.Minutes() < aEnd.Minutes()
}
