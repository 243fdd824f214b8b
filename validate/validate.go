// Package validate holds small input checks that report failures as
// sentinel-wrapped errors.
package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrInvalidNumber = errors.New("invalid number")
	ErrOutOfRange    = errors.New("out of range")
	ErrEmptyUsername = errors.New("Username is empty")
	ErrShortPassword = errors.New("Password is too short")
)

// MinPasswordLen is the shortest password Login accepts.
const MinPasswordLen = 8

// ParsePercentage parses s as a whole number in [0, 100].
func ParsePercentage(s string) (uint8, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &fieldError{sentinel: ErrInvalidNumber, msg: fmt.Sprintf("'%s' is not a valid number", s)}
	}
	if n < 0 || n > 100 {
		return 0, &fieldError{sentinel: ErrOutOfRange, msg: fmt.Sprintf("Value %d is out of range (0-100)", n)}
	}
	return uint8(n), nil
}

// Login checks the shape of a credential pair.
func Login(username, password string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if len(password) < MinPasswordLen {
		return ErrShortPassword
	}
	return nil
}

// fieldError carries a user-facing message while matching its sentinel
// under errors.Is.
type fieldError struct {
	sentinel error
	msg      string
}

func (e *fieldError) Error() string { return e.msg }

func (e *fieldError) Unwrap() error { return e.sentinel }
