package testutil

import "time"

// String returns a pointer to the given string
func String(s string) *string {
	return &s
}

// Int returns a pointer to the given int
func Int(i int) *int {
	return &i
}

// Time returns a pointer to the given time.Time
func Time(t time.Time) *time.Time {
	return &t
}
