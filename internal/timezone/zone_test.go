package timezone_test

import (
	"encoding/json"
	"errors"
	"testing"
	"tzconv/internal/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZone_Offset(t *testing.T) {
	tests := []struct {
		zone  timezone.Zone
		hours float64
		str   string
	}{
		{timezone.PDT, -7, "-07:00"},
		{timezone.EST, -5, "-05:00"},
		{timezone.EDT, -4, "-04:00"},
		{timezone.UTC, 0, "+00:00"},
		{timezone.CEST, 2, "+02:00"},
		{timezone.MYT, 8, "+08:00"},
		{timezone.AWST, 8, "+08:00"},
		{timezone.ACWST, 8.75, "+08:45"},
		{timezone.JST, 9, "+09:00"},
		{timezone.ACST, 9.5, "+09:30"},
		{timezone.AEST, 10, "+10:00"},
		{timezone.LHST, 10.5, "+10:30"},
	}

	require.Len(t, tests, len(timezone.All()), "every zone should be covered")

	for _, tt := range tests {
		t.Run(tt.zone.String(), func(t *testing.T) {
			assert.Equal(t, tt.hours, tt.zone.Offset().Hours())
			assert.Equal(t, tt.str, tt.zone.Offset().String())
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    timezone.Zone
		wantErr bool
	}{
		{name: "Canonical UTC", input: "UTC", want: timezone.UTC},
		{name: "GMT alias", input: "GMT", want: timezone.UTC},
		{name: "Fractional zone", input: "ACWST", want: timezone.ACWST},
		{name: "Negative zone", input: "PDT", want: timezone.PDT},
		{name: "Unknown", input: "XYZ", wantErr: true},
		{name: "Lowercase is not folded", input: "utc", wantErr: true},
		{name: "Whitespace is not trimmed", input: " JST", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := timezone.Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var unsupported *timezone.UnsupportedZoneError
				require.True(t, errors.As(err, &unsupported))
				assert.Equal(t, tt.input, unsupported.Name)
				assert.ErrorIs(t, err, timezone.ErrUnsupportedZone)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_AliasEquivalence(t *testing.T) {
	gmt, err := timezone.Parse("GMT")
	require.NoError(t, err)
	utc, err := timezone.Parse("UTC")
	require.NoError(t, err)

	assert.Equal(t, utc, gmt)
	assert.Equal(t, "UTC", gmt.String())
	assert.Equal(t, "UTC", utc.String())
}

func TestUnsupportedZoneError_Message(t *testing.T) {
	_, err := timezone.Parse("XYZ")
	require.EqualError(t, err, "timezone XYZ not supported")
}

func TestParse_RoundTripsCanonicalNames(t *testing.T) {
	for _, z := range timezone.All() {
		got, err := timezone.Parse(z.String())
		require.NoError(t, err)
		assert.Equal(t, z, got)
		assert.True(t, z.IsValid())
	}
}

func TestAliases(t *testing.T) {
	names := timezone.Aliases()
	assert.Len(t, names, len(timezone.All())+1)
	assert.Equal(t, timezone.UTC, names["GMT"])

	// Mutating the copy must not leak into the registry
	names["XYZ"] = timezone.JST
	_, err := timezone.Parse("XYZ")
	assert.Error(t, err)
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, timezone.LHST, timezone.MustParse("LHST"))
	assert.Panics(t, func() { timezone.MustParse("nope") })
}

func TestZone_TextMarshaling(t *testing.T) {
	type payload struct {
		Zone timezone.Zone `json:"zone"`
	}

	data, err := json.Marshal(payload{Zone: timezone.ACST})
	require.NoError(t, err)
	assert.JSONEq(t, `{"zone":"ACST"}`, string(data))

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"zone":"GMT"}`), &p))
	assert.Equal(t, timezone.UTC, p.Zone)

	err = json.Unmarshal([]byte(`{"zone":"XYZ"}`), &p)
	assert.ErrorIs(t, err, timezone.ErrUnsupportedZone)
}

func TestZone_Invalid(t *testing.T) {
	invalid := timezone.Zone(200)
	assert.False(t, invalid.IsValid())
	assert.Equal(t, "Zone(200)", invalid.String())
	assert.Panics(t, func() { invalid.Offset() })

	_, err := invalid.MarshalText()
	assert.Error(t, err)
}
