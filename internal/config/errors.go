package config

import "fmt"

// EnvError is returned when an override environment variable cannot be parsed.
type EnvError struct {
	Name  string
	Value string
	Cause error
}

func (e *EnvError) Error() string {
	return fmt.Sprintf("invalid %s=%q: %v", e.Name, e.Value, e.Cause)
}
func (e *EnvError) Unwrap() error { return e.Cause }
