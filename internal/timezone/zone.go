// Package timezone holds the closed set of supported fixed-offset zones
package timezone

import (
	"fmt"
)

// Zone is a supported timezone with a fixed UTC offset
type Zone uint8

const (
	UTC Zone = iota // Coordinated Universal Time, also parsed from GMT

	// Positive offsets
	CEST  // Central European Summer Time
	MYT   // Malaysia Time
	AWST  // Australian Western Standard Time
	ACWST // Australian Central Western Standard Time
	JST   // Japan Standard Time
	ACST  // Australian Central Standard Time
	AEST  // Australian Eastern Standard Time
	LHST  // Lord Howe Standard Time

	// Negative offsets
	EDT // Eastern Daylight Time
	EST // Eastern Standard Time
	PDT // Pacific Daylight Time

	zoneCount
)

// aliases maps every accepted spelling to its zone. Canonical names are added in init.
var aliases = map[string]Zone{
	"GMT": UTC,
}

func init() {
	for _, z := range All() {
		aliases[z.String()] = z
	}
}

// All returns every supported zone in definition order
func All() []Zone {
	zones := make([]Zone, 0, zoneCount)
	for z := Zone(0); z < zoneCount; z++ {
		zones = append(zones, z)
	}
	return zones
}

// Aliases returns a copy of every recognized zone spelling, canonical names included
func Aliases() map[string]Zone {
	out := make(map[string]Zone, len(aliases))
	for name, z := range aliases {
		out[name] = z
	}
	return out
}

// Parse resolves a zone name. Matching is exact and case-sensitive.
func Parse(name string) (Zone, error) {
	if z, ok := aliases[name]; ok {
		return z, nil
	}
	return 0, &UnsupportedZoneError{Name: name}
}

// MustParse is like Parse but panics on unsupported names
func MustParse(name string) Zone {
	z, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return z
}

// IsValid reports whether z is one of the defined zones
func (z Zone) IsValid() bool {
	return z < zoneCount
}

// Offset returns the zone's fixed UTC offset
func (z Zone) Offset() Offset {
	switch z {
	case PDT:
		return -7 * Hour
	case EST:
		return -5 * Hour
	case EDT:
		return -4 * Hour
	case UTC:
		return 0
	case CEST:
		return 2 * Hour
	case MYT:
		return 8 * Hour
	case AWST:
		return 8 * Hour
	case ACWST:
		return 8*Hour + 3*Quarter
	case JST:
		return 9 * Hour
	case ACST:
		return 9*Hour + 2*Quarter
	case AEST:
		return 10 * Hour
	case LHST:
		return 10*Hour + 2*Quarter
	}
	panic(fmt.Sprintf("timezone: offset of invalid zone %d", uint8(z)))
}

// String returns the canonical uppercase name of the zone
func (z Zone) String() string {
	switch z {
	case PDT:
		return "PDT"
	case EST:
		return "EST"
	case EDT:
		return "EDT"
	case UTC:
		return "UTC"
	case CEST:
		return "CEST"
	case MYT:
		return "MYT"
	case AWST:
		return "AWST"
	case ACWST:
		return "ACWST"
	case JST:
		return "JST"
	case ACST:
		return "ACST"
	case AEST:
		return "AEST"
	case LHST:
		return "LHST"
	}
	return fmt.Sprintf("Zone(%d)", uint8(z))
}

// MarshalText implements encoding.TextMarshaler
func (z Zone) MarshalText() ([]byte, error) {
	if !z.IsValid() {
		return nil, fmt.Errorf("timezone: cannot marshal invalid zone %d", uint8(z))
	}
	return []byte(z.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse
func (z *Zone) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*z = parsed
	return nil
}
