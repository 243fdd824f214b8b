// Package temperature converts between Celsius, Fahrenheit and Kelvin.
package temperature

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownScale   = errors.New("unknown temperature scale")
	ErrMalformedValue = errors.New("malformed temperature value")
	ErrMalformedLine  = errors.New("expected \"<value> <from> <to>\"")
)

// Unit is a temperature scale.
type Unit int

const (
	Celsius Unit = iota + 1
	Fahrenheit
	Kelvin
)

func (u Unit) String() string {
	switch u {
	case Celsius:
		return "Celsius"
	case Fahrenheit:
		return "Fahrenheit"
	case Kelvin:
		return "Kelvin"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Symbol returns the unit symbol, e.g. "°C".
func (u Unit) Symbol() string {
	switch u {
	case Celsius:
		return "°C"
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "?"
	}
}

// ParseUnit accepts full names, first letters and the menu codes 1, 2, 3.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "c", "celsius":
		return Celsius, nil
	case "2", "f", "fahrenheit", "farenheit":
		return Fahrenheit, nil
	case "3", "k", "kelvin":
		return Kelvin, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownScale, s)
	}
}

// Convert converts whole degrees with integer arithmetic. Unknown units
// are treated as Celsius.
func Convert(v int, from, to Unit) int {
	if from == to {
		return v
	}
	var c int
	switch from {
	case Fahrenheit:
		c = (v - 32) * 5 / 9
	case Kelvin:
		c = v - 273
	default:
		c = v
	}
	switch to {
	case Fahrenheit:
		return c*9/5 + 32
	case Kelvin:
		return c + 273
	default:
		return c
	}
}

// ConvertFloat converts v exactly. Unknown units are treated as Celsius.
func ConvertFloat(v float64, from, to Unit) float64 {
	if from == to {
		return v
	}
	var c float64
	switch from {
	case Fahrenheit:
		c = (v - 32) / 1.8
	case Kelvin:
		c = v - 273.15
	default:
		c = v
	}
	switch to {
	case Fahrenheit:
		return c*1.8 + 32
	case Kelvin:
		return c + 273.15
	default:
		return c
	}
}

// FromCelsius converts a Celsius reading to the scale named by to.
func FromCelsius(v float64, to string) (float64, error) {
	u, err := ParseUnit(to)
	if err != nil {
		return 0, err
	}
	return ConvertFloat(v, Celsius, u), nil
}

// Request is one parsed conversion line.
type Request struct {
	Value float64
	From  Unit
	To    Unit
}

// ParseRequest parses "<value> <from> <to>", e.g. "36.6 c f".
func ParseRequest(line string) (Request, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Request{}, fmt.Errorf("%w, got %d fields", ErrMalformedLine, len(fields))
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Request{}, fmt.Errorf("%w: %q", ErrMalformedValue, fields[0])
	}
	from, err := ParseUnit(fields[1])
	if err != nil {
		return Request{}, err
	}
	to, err := ParseUnit(fields[2])
	if err != nil {
		return Request{}, err
	}
	return Request{Value: v, From: from, To: to}, nil
}

// Result converts the request.
func (r Request) Result() float64 {
	return ConvertFloat(r.Value, r.From, r.To)
}
