// pkg/route/classify.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

// This file holds the pure, total scalar classifiers: predicates over a
// single token with no knowledge of its position in the route. Every
// classifier is case-sensitive and operates byte-wise, since Field 15
// tokens are ASCII in practice (spec.md §6.1).

func isDigitByte(c byte) bool { return c >= '0' && c <= '9' }
func isUpperByte(c byte) bool { return c >= 'A' && c <= 'Z' }

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigitByte(s[i]) {
			return false
		}
	}
	return true
}

func allUpper(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isUpperByte(s[i]) {
			return false
		}
	}
	return true
}

// isNat reports whether t is "NAT"+L (L upper) or "NAT"+L+D (L upper, D
// digit). Every other shape, including the otherwise-plausible "NAT"+D,
// is rejected — this exactly mirrors the upstream behaviour the spec
// preserves intentionally (spec.md §9, "Open question — NAT/PTS
// alphabet").
func isNat(t string) bool {
	switch len(t) {
	case 4:
		return t[:3] == "NAT" && isUpperByte(t[3])
	case 5:
		return t[:3] == "NAT" && isUpperByte(t[3]) && isDigitByte(t[4])
	default:
		return false
	}
}

// isPts reports whether t is "PTS"+X with X a digit or an uppercase
// letter.
func isPts(t string) bool {
	if len(t) != 4 || t[:3] != "PTS" {
		return false
	}
	c := t[3]
	return isDigitByte(c) || isUpperByte(c)
}

var airwayPrefixes = []string{
	"UN", "UM", "UL", "UT", "UZ", "UY", "UP", "UA", "UB", "UG", "UH", "UJ", "UQ", "UR", "UV", "UW",
	"L", "A", "B", "G", "H", "J", "Q", "R", "T", "V", "W", "Y", "Z", "M", "N", "P",
}

// isAirway reports whether t is a valid ATS route designator: length
// 2..=7, starting with a letter, containing at least one digit, not a NAT
// or PTS track, and beginning with one of the recognised prefixes.
func isAirway(t string) bool {
	if len(t) < 2 || len(t) > 7 {
		return false
	}
	if isNat(t) || isPts(t) {
		return false
	}
	if !isUpperByte(t[0]) {
		return false
	}
	hasDigit := false
	for i := 0; i < len(t); i++ {
		if isDigitByte(t[i]) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return false
	}
	for _, p := range airwayPrefixes {
		if len(t) >= len(p) && t[:len(p)] == p {
			return true
		}
	}
	return false
}

// isProcedure reports whether t matches any of the four ICAO SID/STAR
// name shapes enumerated in spec.md §4.A, tested independently (a token
// passes if any one matches).
func isProcedure(t string) bool {
	n := len(t)
	b := []byte(t)

	// A{3} D{1,2} A  (5-6 chars)
	if n >= 5 && n <= 6 {
		if allUpper(string(b[0:3])) && isDigitByte(b[3]) {
			if n == 5 && isUpperByte(b[4]) {
				return true
			}
			if n == 6 && isDigitByte(b[4]) && isUpperByte(b[5]) {
				return true
			}
		}
	}

	// A{5} D{1,2}  (6-7 chars)
	if n == 6 || n == 7 {
		if allUpper(string(b[0:5])) && isDigitByte(b[5]) && (n == 6 || isDigitByte(b[6])) {
			return true
		}
	}

	// A{4..6} D A  (6-8 chars)
	if n >= 6 && n <= 8 {
		prefixLen := n - 2
		if prefixLen >= 4 && prefixLen <= 6 {
			if allUpper(string(b[0:prefixLen])) && isDigitByte(b[prefixLen]) && isUpperByte(b[prefixLen+1]) {
				return true
			}
		}
	}

	// A{5} D{2} A  (8 chars)
	if n == 8 {
		if allUpper(string(b[0:5])) && isDigitByte(b[5]) && isDigitByte(b[6]) && isUpperByte(b[7]) {
			return true
		}
	}

	return false
}

// isCoordinate reports whether t is a compact ICAO lat/long token.
func isCoordinate(t string) bool {
	if len(t) < 4 {
		return false
	}

	latIdx := indexAny(t, "NS")
	lonIdx := indexAny(t, "EW")

	switch {
	case latIdx >= 0 && lonIdx >= 0:
		if latIdx >= lonIdx {
			return false
		}
		if !allDigits(t[:latIdx]) {
			return false
		}
		if !allDigits(t[latIdx+1 : lonIdx]) {
			return false
		}
		return lonIdx == len(t)-1
	case latIdx >= 0:
		return allDigits(t[:latIdx]) && latIdx == len(t)-1
	case lonIdx >= 0:
		return allDigits(t[:lonIdx]) && lonIdx == len(t)-1
	default:
		return false
	}
}

// indexAny returns the index of the first byte in t that is also in
// chars, or -1 if none is found.
func indexAny(t, chars string) int {
	for i := 0; i < len(t); i++ {
		for j := 0; j < len(chars); j++ {
			if t[i] == chars[j] {
				return i
			}
		}
	}
	return -1
}
