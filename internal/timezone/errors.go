package timezone

import (
	"errors"
	"fmt"
)

// ErrUnsupportedZone is matched by every UnsupportedZoneError via errors.Is
var ErrUnsupportedZone = errors.New("timezone not supported")

// UnsupportedZoneError is returned by Parse when a name matches no zone or alias
type UnsupportedZoneError struct {
	Name string
}

func (e *UnsupportedZoneError) Error() string {
	return fmt.Sprintf("timezone %s not supported", e.Name)
}

// Is reports whether target is ErrUnsupportedZone
func (e *UnsupportedZoneError) Is(target error) bool {
	return target == ErrUnsupportedZone
}
