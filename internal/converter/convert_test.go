package converter_test

import (
	"testing"
	"tzconv/internal/converter"
	"tzconv/internal/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		input  converter.TimeOfDay
		source timezone.Zone
		target timezone.Zone
		want   string
	}{
		{
			name:   "Hour wraps back across midnight",
			input:  converter.MustTimeOfDay(2, 0, 0),
			source: timezone.JST,
			target: timezone.PDT,
			want:   "10:00:00",
		},
		{
			name:   "Fractional offset folds into minutes",
			input:  converter.MustTimeOfDay(0, 0, 0),
			source: timezone.UTC,
			target: timezone.ACWST,
			want:   "08:45:00",
		},
		{
			name:   "Minute carry after hour wrap",
			input:  converter.MustTimeOfDay(23, 45, 0),
			source: timezone.UTC,
			target: timezone.LHST,
			want:   "10:15:00",
		},
		{
			name:   "Whole hours land exactly on 24",
			input:  converter.MustTimeOfDay(22, 0, 0),
			source: timezone.UTC,
			target: timezone.CEST,
			want:   "00:00:00",
		},
		{
			name:   "Carry pushes 23 to midnight",
			input:  converter.MustTimeOfDay(14, 30, 5),
			source: timezone.UTC,
			target: timezone.ACST,
			want:   "00:00:05",
		},
		{
			name:   "Negative fractional delta",
			input:  converter.MustTimeOfDay(2, 0, 0),
			source: timezone.ACWST,
			target: timezone.UTC,
			want:   "17:15:00",
		},
		{
			name:   "Negative fractional delta with minutes",
			input:  converter.MustTimeOfDay(9, 50, 59),
			source: timezone.LHST,
			target: timezone.EDT,
			want:   "19:20:59",
		},
		{
			name:   "Same offset different names",
			input:  converter.MustTimeOfDay(7, 8, 9),
			source: timezone.MYT,
			target: timezone.AWST,
			want:   "07:08:09",
		},
		{
			name:   "Westward within the day",
			input:  converter.MustTimeOfDay(12, 0, 30),
			source: timezone.UTC,
			target: timezone.EST,
			want:   "07:00:30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := converter.Convert(tt.input, tt.source, tt.target)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func sampleTimes() []converter.TimeOfDay {
	var times []converter.TimeOfDay
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 1, 14, 15, 29, 30, 44, 45, 59} {
			times = append(times, converter.MustTimeOfDay(h, m, (h*7+m)%60))
		}
	}
	return times
}

func TestConvert_Identity(t *testing.T) {
	for _, z := range timezone.All() {
		for _, tod := range sampleTimes() {
			require.Equal(t, tod, converter.Convert(tod, z, z), "%s %s", z, tod)
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	for _, a := range timezone.All() {
		for _, b := range timezone.All() {
			for _, tod := range sampleTimes() {
				there := converter.Convert(tod, a, b)
				back := converter.Convert(there, b, a)
				require.Equal(t, tod, back, "%s -> %s -> %s for %s", a, b, a, tod)
			}
		}
	}
}

func TestConvert_ResultInRangeAndSecondsUnchanged(t *testing.T) {
	for _, a := range timezone.All() {
		for _, b := range timezone.All() {
			for _, tod := range sampleTimes() {
				got := converter.Convert(tod, a, b)
				require.GreaterOrEqual(t, got.Hour(), 0)
				require.Less(t, got.Hour(), 24)
				require.GreaterOrEqual(t, got.Minute(), 0)
				require.Less(t, got.Minute(), 60)
				require.Equal(t, tod.Second(), got.Second())
			}
		}
	}
}

func TestConvert_MatchesMinuteArithmetic(t *testing.T) {
	for _, a := range timezone.All() {
		for _, b := range timezone.All() {
			for _, tod := range sampleTimes() {
				total := tod.Hour()*60 + tod.Minute() + b.Offset().Minutes() - a.Offset().Minutes()
				total = ((total % 1440) + 1440) % 1440

				got := converter.Convert(tod, a, b)
				require.Equal(t, total/60, got.Hour(), "%s -> %s for %s", a, b, tod)
				require.Equal(t, total%60, got.Minute(), "%s -> %s for %s", a, b, tod)
			}
		}
	}
}

func TestNewTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		h, m, s int
		wantErr bool
	}{
		{name: "Midnight", h: 0, m: 0, s: 0},
		{name: "Last second", h: 23, m: 59, s: 59},
		{name: "Hour too large", h: 24, m: 0, s: 0, wantErr: true},
		{name: "Negative hour", h: -1, m: 0, s: 0, wantErr: true},
		{name: "Minute too large", h: 1, m: 60, s: 0, wantErr: true},
		{name: "Second too large", h: 1, m: 0, s: 60, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod, err := converter.NewTimeOfDay(tt.h, tt.m, tt.s)
			if tt.wantErr {
				assert.ErrorIs(t, err, converter.ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.h, tod.Hour())
			assert.Equal(t, tt.m, tod.Minute())
			assert.Equal(t, tt.s, tod.Second())
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "03:05:07", converter.Format(converter.MustTimeOfDay(3, 5, 7)))
	assert.Equal(t, "00:00:00", converter.Format(converter.MustTimeOfDay(0, 0, 0)))
	assert.Equal(t, "23:59:59", converter.MustTimeOfDay(23, 59, 59).String())
}

func TestFormatLine(t *testing.T) {
	line := converter.FormatLine(converter.MustTimeOfDay(23, 45, 0), timezone.MustParse("GMT"), timezone.LHST)
	assert.Equal(t, "UTC 23:45:00 -> LHST 10:15:00", line)
}
