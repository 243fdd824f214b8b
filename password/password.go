// Package password grades password strength by counting letters and digits.
package password

import "fmt"

// Strength is a password grade.
type Strength int

const (
	Weak Strength = iota
	Medium
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// Counts tallies the character classes that contribute to strength.
type Counts struct {
	Upper, Lower, Digit int
}

// Total is the number of characters that count towards strength.
func (c Counts) Total() int {
	return c.Upper + c.Lower + c.Digit
}

// Count classifies the ASCII letters and digits of s. Everything else is
// ignored.
func Count(s string) Counts {
	var c Counts
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			c.Upper++
		case r >= 'a' && r <= 'z':
			c.Lower++
		case r >= '0' && r <= '9':
			c.Digit++
		}
	}
	return c
}

// Check grades s: up to 5 counted characters is Weak, up to 10 Medium,
// anything longer Strong.
func Check(s string) Strength {
	switch n := Count(s).Total(); {
	case n <= 5:
		return Weak
	case n <= 10:
		return Medium
	default:
		return Strong
	}
}
