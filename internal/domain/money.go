package domain

import "fmt"

// FormatIDR renders an integer Rupiah amount with thousands dots,
// e.g. 1905000 -> "Rp 1.905.000".
func FormatIDR(v int64) string {
	s := fmt.Sprintf("%d", v)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n > 3 {
		rem := n % 3
		if rem == 0 {
			rem = 3
		}
		out := s[:rem]
		for i := rem; i < n; i += 3 {
			out += "." + s[i:i+3]
		}
		s = out
	}
	if neg {
		return "Rp -" + s
	}
	return "Rp " + s
}
