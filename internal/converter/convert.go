package converter

import (
	"fmt"
	"tzconv/internal/timezone"
)

const (
	hoursPerDay     = 24
	minutesPerHour  = 60
	quartersPerHour = int(timezone.Hour)
)

// Convert returns the time in target that corresponds to t in source.
// Day rollover is not tracked; only the time of day is reported.
func Convert(t TimeOfDay, source, target timezone.Zone) TimeOfDay {
	delta := int(target.Offset() - source.Offset())

	// Work in quarter hours so partial-hour offsets split exactly
	raw := t.hour*quartersPerHour + delta
	fractional := mod(raw, quartersPerHour)
	wholeHours := (raw - fractional) / quartersPerHour

	hour := mod(wholeHours, hoursPerDay)
	minute := t.minute + fractional*timezone.MinutesPerQuarter

	// A single carry is enough: fractional is at most three quarters
	if minute >= minutesPerHour {
		minute -= minutesPerHour
		hour++
	}
	if hour == hoursPerDay {
		hour = 0
	}

	return TimeOfDay{hour: hour, minute: minute, second: t.second}
}

// Format renders t as zero-padded HH:MM:SS
func Format(t TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}

// FormatLine renders a conversion the way the front ends print it:
// "<source> <input> -> <target> <output>"
func FormatLine(t TimeOfDay, source, target timezone.Zone) string {
	return fmt.Sprintf("%s %s -> %s %s", source, Format(t), target, Format(Convert(t, source, target)))
}

// mod is the mathematical modulo; the result always has the sign of n
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
