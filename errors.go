// File: lixenwraith/configurator/errors.go
package configurator

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequired is returned when a required variable is absent from every source
	ErrMissingRequired = errors.New("missing required variable")
	// ErrMissingOrWrongTypePath is returned when a file or directory value does not exist or has the wrong kind
	ErrMissingOrWrongTypePath = errors.New("missing or wrong type path")
	// ErrUnparsableConfigFile is returned when a configuration file cannot be read or parsed
	ErrUnparsableConfigFile = errors.New("unparsable config file")
	// ErrInvalidNumber is returned when a numeric variable receives text without a leading integer
	ErrInvalidNumber = errors.New("invalid number")
	// ErrInvalidBool is returned when a boolean variable receives text that is not a boolean
	ErrInvalidBool = errors.New("invalid boolean")
	// ErrInvalidParam is returned by the builder for parameters that are not a name or declaration
	ErrInvalidParam = errors.New("invalid declaration parameter")
	// ErrEmptyName is returned for declarations without a name
	ErrEmptyName = errors.New("variable name cannot be empty")
	// ErrDuplicateVariable is returned when two declarations share a name
	ErrDuplicateVariable = errors.New("duplicate variable")
)

// VariableError annotates a resolution or casting failure with the variable it belongs to.
type VariableError struct {
	Name  string
	Arg   string
	Value any
	Err   error
}

func (e *VariableError) Error() string {
	return fmt.Sprintf("'%s' %v (%s=%v)", e.Name, e.Err, e.Arg, e.Value)
}

func (e *VariableError) Unwrap() error {
	return e.Err
}
