package intake

import "strings"

const maxPhoneDigits = 11

// PhoneDigits keeps only the ASCII digits of raw.
func PhoneDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPhone masks free-text phone input as the user types:
//
//	""          -> ""
//	"1"         -> "(1"
//	"119"       -> "(11) 9"
//	"1198888"   -> "(11) 9888-8"
//	"11988887777" -> "(11) 98888-7777"
//
// Digits beyond the eleventh are dropped. It does not validate.
func FormatPhone(raw string) string {
	d := PhoneDigits(raw)
	if len(d) > maxPhoneDigits {
		d = d[:maxPhoneDigits]
	}

	switch n := len(d); {
	case n == 0:
		return ""
	case n <= 2:
		return "(" + d
	case n <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case n <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}
