package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnrecognizedPeriod = errors.New("unrecognized period")

// PeriodError carries the rejected input and the accepted grammar
type PeriodError struct {
	Input    string
	Accepted []string
}

func (e *PeriodError) Error() string {
	return fmt.Sprintf("%s %q (use one of: %s)", ErrUnrecognizedPeriod, e.Input, strings.Join(e.Accepted, ", "))
}

func (e *PeriodError) Unwrap() error {
	return ErrUnrecognizedPeriod
}
