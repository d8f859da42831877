package utils

import (
	"fmt"
	"strconv"
	"strings"
)

type SlotKind int

const (
	SlotPoint SlotKind = iota
	SlotRange
)

// PointSlotMinutes is the implicit width of a point schedule when comparing
// for overlaps: "10:00" occupies [10:00, 10:30).
const PointSlotMinutes = 30

// TimeSlot is the parsed form of a scheduled_time string. It is built once
// at the validation boundary; overlap logic never re-parses strings.
// Start/End are minutes from midnight; End is meaningful for ranges only.
type TimeSlot struct {
	Kind  SlotKind
	Start int
	End   int
}

// ParseTimeSlot accepts "HH:MM" (a point) or "HH:MM-HH:MM" (a range with
// start strictly before end). Errors name the half that failed.
func ParseTimeSlot(s string) (TimeSlot, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeSlot{}, fmt.Errorf("%w: empty value", ErrInvalidTimeFormat)
	}

	if from, to, ok := strings.Cut(s, "-"); ok {
		start, err := parseClock(from)
		if err != nil {
			return TimeSlot{}, fmt.Errorf("%w: range start %q: %v", ErrInvalidTimeFormat, from, err)
		}
		end, err := parseClock(to)
		if err != nil {
			return TimeSlot{}, fmt.Errorf("%w: range end %q: %v", ErrInvalidTimeFormat, to, err)
		}
		if start >= end {
			return TimeSlot{}, fmt.Errorf("%w: range %q: start must be before end", ErrInvalidTimeFormat, s)
		}
		return TimeSlot{Kind: SlotRange, Start: start, End: end}, nil
	}

	start, err := parseClock(s)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("%w: %q: %v", ErrInvalidTimeFormat, s, err)
	}
	return TimeSlot{Kind: SlotPoint, Start: start}, nil
}

// parseClock parses a strict two-digit "HH:MM" into minutes from midnight.
func parseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("expected HH:MM")
	}
	hh, err := strconv.Atoi(s[:2])
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM")
	}
	mm, err := strconv.Atoi(s[3:])
	if err != nil {
		return 0, fmt.Errorf("expected HH:MM")
	}
	if hh < 0 || hh > 23 {
		return 0, fmt.Errorf("hour %d out of range 00-23", hh)
	}
	if mm < 0 || mm > 59 {
		return 0, fmt.Errorf("minute %d out of range 00-59", mm)
	}
	return hh*60 + mm, nil
}

// Interval returns the effective half-open interval [from, to) in minutes.
func (t TimeSlot) Interval() (int, int) {
	if t.Kind == SlotRange {
		return t.Start, t.End
	}
	return t.Start, t.Start + PointSlotMinutes
}

// Overlaps reports whether two slots collide. Touching endpoints do not
// count: [09:00,10:00) and [10:00,11:00) are compatible.
func (t TimeSlot) Overlaps(o TimeSlot) bool {
	aFrom, aTo := t.Interval()
	bFrom, bTo := o.Interval()
	return aFrom < bTo && bFrom < aTo
}

// String renders the canonical text form persisted on the schedule record.
func (t TimeSlot) String() string {
	if t.Kind == SlotRange {
		return fmt.Sprintf("%s-%s", formatClock(t.Start), formatClock(t.End))
	}
	return formatClock(t.Start)
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
