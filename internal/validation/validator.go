// Package validation provides the input validators shared by the CLI and the API
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"tzconv/internal/converter"
	"tzconv/internal/timezone"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	// TagTimeOfDay validates a HH:MM:SS string in 24h form
	TagTimeOfDay = "timeofday"
	// TagZone validates a supported zone name or alias
	TagZone = "tzname"
)

// ErrInvalidTimeFormat is returned for time strings that are not HH:MM:SS in 24h form
var ErrInvalidTimeFormat = errors.New("doesn't match the format hh:mm:ss in 24h")

var timeOfDayPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9]):([0-5][0-9])$`)

var (
	std     *validator.Validate
	stdOnce sync.Once
)

// Initialize registers all custom validators on gin's binding engine
func Initialize() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := register(v); err != nil {
			panic(err)
		}
	}
}

// Validator returns the package validator with the custom tags registered
func Validator() *validator.Validate {
	stdOnce.Do(func() {
		std = validator.New(validator.WithRequiredStructEnabled())
		if err := register(std); err != nil {
			panic(err)
		}
	})
	return std
}

// Struct validates v against its `validate` tags
func Struct(v any) error {
	return Validator().Struct(v)
}

func register(v *validator.Validate) error {
	if err := v.RegisterValidation(TagTimeOfDay, validateTimeOfDay); err != nil {
		return err
	}
	return v.RegisterValidation(TagZone, validateZone)
}

// validateTimeOfDay checks the HH:MM:SS shape
func validateTimeOfDay(fl validator.FieldLevel) bool {
	return timeOfDayPattern.MatchString(fl.Field().String())
}

// validateZone checks that the name resolves through the registry
func validateZone(fl validator.FieldLevel) bool {
	_, err := timezone.Parse(fl.Field().String())
	return err == nil
}

// ParseTimeOfDay validates s as HH:MM:SS and builds the corresponding TimeOfDay
func ParseTimeOfDay(s string) (converter.TimeOfDay, error) {
	m := timeOfDayPattern.FindStringSubmatch(s)
	if m == nil {
		return converter.TimeOfDay{}, fmt.Errorf("%q %w", s, ErrInvalidTimeFormat)
	}

	// The pattern guarantees two decimal digits per field
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	ss, _ := strconv.Atoi(m[3])
	return converter.NewTimeOfDay(hh, mm, ss)
}

// Message turns a validation failure into a short user-facing message
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case TagTimeOfDay:
		return fmt.Sprintf("%s %s", fe.Field(), ErrInvalidTimeFormat)
	case TagZone:
		return (&timezone.UnsupportedZoneError{Name: fmt.Sprint(fe.Value())}).Error()
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	}
	return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
}

// ParseZone resolves name, substituting fallback only when name is empty
func ParseZone(name string, fallback timezone.Zone) (timezone.Zone, error) {
	if name == "" {
		return fallback, nil
	}
	return timezone.Parse(name)
}
