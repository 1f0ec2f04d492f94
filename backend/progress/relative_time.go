package progress

import (
	"fmt"
	"time"
)

// FormatRelative renders an instant as a human-relative Spanish label.
// Beyond a week it falls back to an absolute date.
func FormatRelative(t time.Time, now time.Time) string {
	hours := int(now.Sub(t).Hours())

	if hours < 1 {
		return "Hace menos de 1 hora"
	}
	if hours < 24 {
		return fmt.Sprintf("Hace %d horas", hours)
	}
	if hours < 48 {
		return "Ayer"
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("Hace %d días", days)
	}

	return t.Format("2/1/2006")
}
