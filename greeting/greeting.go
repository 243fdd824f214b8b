// Package greeting picks canned responses.
package greeting

import "fmt"

// ForHour greets by time of day. Hours outside 0-23 are invalid.
func ForHour(h int) string {
	switch {
	case h < 0 || h > 23:
		return "Invalid hour"
	case h < 12:
		return "Good Morning"
	case h < 18:
		return "Good Afternoon"
	default:
		return "Good Evening"
	}
}

// MenuResponse answers a numeric menu choice. 4 exits.
func MenuResponse(choice int) string {
	switch choice {
	case 1, 2, 3:
		return fmt.Sprintf("Choice %d", choice)
	case 4:
		return "Exit"
	default:
		return "Invalid choice"
	}
}
