// pkg/route/lexeme.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import "strconv"

// parseSpeed accepts exactly N+4digits, M+3digits or K+4digits.
func parseSpeed(s string) (Speed, bool) {
	if len(s) < 4 {
		return Speed{}, false
	}
	kind, rest := s[0], s[1:]
	switch kind {
	case 'N':
		if len(rest) == 4 && allDigits(rest) {
			v, _ := strconv.Atoi(rest)
			return Speed{Kind: KindKnots, Knots: uint16(v)}, true
		}
	case 'M':
		if len(rest) == 3 && allDigits(rest) {
			v, _ := strconv.Atoi(rest)
			return Speed{Kind: KindMach, Mach: float32(v) / 100}, true
		}
	case 'K':
		if len(rest) == 4 && allDigits(rest) {
			v, _ := strconv.Atoi(rest)
			return Speed{Kind: KindKmh, Kmh: uint16(v)}, true
		}
	}
	return Speed{}, false
}

// parseAltitude accepts the literal "VFR", or F+3digits, S+4digits,
// A+4digits, M+4digits.
func parseAltitude(s string) (Altitude, bool) {
	if s == "VFR" {
		return Altitude{Kind: KindAltitudeVfr}, true
	}
	if len(s) < 4 {
		return Altitude{}, false
	}
	kind, rest := s[0], s[1:]
	switch kind {
	case 'F':
		if len(rest) == 3 && allDigits(rest) {
			v, _ := strconv.Atoi(rest)
			return Altitude{Kind: KindFlightLevel, Value: uint16(v)}, true
		}
	case 'S':
		if len(rest) == 4 && allDigits(rest) {
			v, _ := strconv.Atoi(rest)
			return Altitude{Kind: KindMetricLevel, Value: uint16(v)}, true
		}
	case 'A':
		if len(rest) == 4 && allDigits(rest) {
			v, _ := strconv.Atoi(rest)
			return Altitude{Kind: KindAltitudeFt, Value: uint16(v)}, true
		}
	case 'M':
		if len(rest) == 4 && allDigits(rest) {
			v, _ := strconv.Atoi(rest)
			return Altitude{Kind: KindMetricAltitude, Value: uint16(v)}, true
		}
	}
	return Altitude{}, false
}

// parseModifier strips a trailing "PLUS" (setting CruiseClimb), then
// tries a speed of length 4 (Mach) or 5 (Knots/Kph) followed by an
// altitude in the remainder; failing that, tries the whole (stripped)
// token as an altitude alone. A Modifier is only returned when an
// altitude was found — a speed-only token is not a modifier and falls
// through to subsequent classification rules.
func parseModifier(token string) (Modifier, bool) {
	base := token
	cruiseClimb := false
	if stripped, ok := stripSuffix(token, "PLUS"); ok {
		base = stripped
		cruiseClimb = true
	}

	if len(base) < 4 {
		return Modifier{}, false
	}

	speedLen := 5
	if base[0] == 'M' {
		speedLen = 4
	}

	var speed *Speed
	var altitude *Altitude

	if len(base) >= speedLen {
		if sp, ok := parseSpeed(base[:speedLen]); ok {
			speed = &sp
			if len(base) > speedLen {
				if alt, ok := parseAltitude(base[speedLen:]); ok {
					altitude = &alt
				}
			}
		}
	}

	if speed == nil && len(base) >= 3 {
		if alt, ok := parseAltitude(base); ok {
			altitude = &alt
		}
	}

	if altitude == nil {
		return Modifier{}, false
	}
	return Modifier{Speed: speed, Altitude: altitude, CruiseClimb: cruiseClimb}, true
}

func stripSuffix(s, suffix string) (string, bool) {
	if len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix {
		return s[:len(s)-len(suffix)], true
	}
	return s, false
}

// parseCoordinate parses a token already known to satisfy isCoordinate
// into signed decimal degrees.
func parseCoordinate(t string) (lat, lon float64, ok bool) {
	nIdx, sIdx := indexByte(t, 'N'), indexByte(t, 'S')
	eIdx, wIdx := indexByte(t, 'E'), indexByte(t, 'W')

	var latSign float64
	var latField string
	var latEnd int
	switch {
	case nIdx >= 0:
		latField, latSign, latEnd = t[:nIdx], 1, nIdx+1
	case sIdx >= 0:
		latField, latSign, latEnd = t[:sIdx], -1, sIdx+1
	default:
		return 0, 0, false
	}

	switch len(latField) {
	case 2:
		deg, err := strconv.ParseFloat(latField, 64)
		if err != nil {
			return 0, 0, false
		}
		lat = deg * latSign
	case 4:
		deg, err1 := strconv.ParseFloat(latField[:2], 64)
		min, err2 := strconv.ParseFloat(latField[2:], 64)
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		lat = (deg + min/60) * latSign
	default:
		return 0, 0, false
	}

	var lonSign float64
	var lonField string
	switch {
	case eIdx >= 0:
		lonField, lonSign = t[latEnd:eIdx], 1
	case wIdx >= 0:
		lonField, lonSign = t[latEnd:wIdx], -1
	default:
		return 0, 0, false
	}

	switch len(lonField) {
	case 3:
		deg, err := strconv.ParseFloat(lonField, 64)
		if err != nil {
			return 0, 0, false
		}
		lon = deg * lonSign
	case 5:
		deg, err1 := strconv.ParseFloat(lonField[:3], 64)
		min, err2 := strconv.ParseFloat(lonField[3:], 64)
		if err1 != nil || err2 != nil {
			return 0, 0, false
		}
		lon = (deg + min/60) * lonSign
	default:
		return 0, 0, false
	}

	return lat, lon, true
}

func indexByte(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

// parsePoint classifies a token as a Coordinate, BearingDistance,
// Aerodrome or (as fallback) Waypoint.
func parsePoint(t string) (Point, bool) {
	if t == "" {
		return Point{}, false
	}

	if isCoordinate(t) {
		lat, lon, ok := parseCoordinate(t)
		if !ok {
			return Point{}, false
		}
		return Point{Kind: KindCoordinate, Lat: lat, Lon: lon}, true
	}

	if len(t) > 6 {
		digits := t[len(t)-6:]
		if allDigits(digits) {
			name := t[:len(t)-6]
			bearing, _ := strconv.Atoi(digits[:3])
			distance, _ := strconv.Atoi(digits[3:])
			if bearing <= 360 && distance <= 999 {
				if isCoordinate(name) {
					if lat, lon, ok := parseCoordinate(name); ok {
						inner := Point{Kind: KindCoordinate, Lat: lat, Lon: lon}
						return Point{
							Kind: KindBearingDistance, Inner: &inner,
							Bearing: uint16(bearing), Distance: uint16(distance),
						}, true
					}
				} else if name != "" && allUpper(name) {
					inner := Point{Kind: KindWaypoint, Name: name}
					return Point{
						Kind: KindBearingDistance, Inner: &inner,
						Bearing: uint16(bearing), Distance: uint16(distance),
					}, true
				}
			}
		}
	}

	if len(t) == 4 && allUpper(t) {
		return Point{Kind: KindAerodrome, Name: t}, true
	}

	return Point{Kind: KindWaypoint, Name: t}, true
}
