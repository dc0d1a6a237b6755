// pkg/route/types.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package route tokenizes and classifies ICAO DOC-4444 Field 15
// flight-plan route strings into a typed, ordered sequence of Elements.
//
// Go has no tagged-union type, so each spec "variant" is represented the
// way the rest of this toolkit represents small closed sets of
// alternatives elsewhere (compare AltitudeRestriction's Range encoding or
// RacetrackPTEntry's int-plus-custom-JSON approach): a Kind discriminant
// plus the handful of typed fields the active Kind actually uses. Fields
// that don't apply to the current Kind are left at their zero value and
// never serialized.
package route

import "fmt"

// PointKind discriminates the payload carried by a Point.
type PointKind int

const (
	KindWaypoint PointKind = iota
	KindCoordinate
	KindBearingDistance
	KindAerodrome
)

// Point is a geographic reference: a published waypoint, a 4-letter
// aerodrome code, a signed lat/lon coordinate, or a bearing/distance
// offset from another (non-bearing/distance) point.
type Point struct {
	Kind PointKind

	// KindWaypoint, KindAerodrome
	Name string

	// KindCoordinate, and the coordinate nested inside a
	// KindBearingDistance whose Inner.Kind == KindCoordinate
	Lat, Lon float64

	// KindBearingDistance
	Inner    *Point
	Bearing  uint16
	Distance uint16
}

func (p Point) String() string {
	switch p.Kind {
	case KindWaypoint:
		return fmt.Sprintf("Waypoint(%s)", p.Name)
	case KindCoordinate:
		return fmt.Sprintf("Coordinate(%g,%g)", p.Lat, p.Lon)
	case KindBearingDistance:
		return fmt.Sprintf("BearingDistance(%s/%03d/%03d)", p.Inner, p.Bearing, p.Distance)
	case KindAerodrome:
		return fmt.Sprintf("Aerodrome(%s)", p.Name)
	default:
		return "Point(?)"
	}
}

// ConnectorKind discriminates the payload carried by a Connector.
type ConnectorKind int

const (
	KindAirway ConnectorKind = iota
	KindDirect
	KindVfr
	KindIfr
	KindOat
	KindGat
	KindIfpStop
	KindIfpStart
	KindStay
	KindSid
	KindStar
	KindNat
	KindPts
)

// Connector links two points, or marks a regime change (VFR/IFR/OAT/GAT)
// or procedure boundary (SID/STAR).
type Connector struct {
	Kind ConnectorKind
	// Name holds the airway/NAT-track/PTS-track identifier, or the
	// originating procedure designator for Sid/Star — or the literal
	// "SID"/"STAR" when the keyword itself was matched rather than a
	// named procedure.
	Name string
}

func (c Connector) String() string {
	switch c.Kind {
	case KindAirway:
		return fmt.Sprintf("Airway(%s)", c.Name)
	case KindDirect:
		return "DCT"
	case KindVfr:
		return "VFR"
	case KindIfr:
		return "IFR"
	case KindOat:
		return "OAT"
	case KindGat:
		return "GAT"
	case KindIfpStop:
		return "IFPSTOP"
	case KindIfpStart:
		return "IFPSTART"
	case KindStay:
		return "STAY"
	case KindSid:
		return fmt.Sprintf("SID(%s)", c.Name)
	case KindStar:
		return fmt.Sprintf("STAR(%s)", c.Name)
	case KindNat:
		return fmt.Sprintf("NAT(%s)", c.Name)
	case KindPts:
		return fmt.Sprintf("PTS(%s)", c.Name)
	default:
		return "Connector(?)"
	}
}

// SpeedKind discriminates the unit carried by a Speed.
type SpeedKind int

const (
	KindKnots SpeedKind = iota
	KindMach
	KindKmh
)

// Speed is a modifier's speed component.
type Speed struct {
	Kind  SpeedKind
	Knots uint16  // KindKnots
	Mach  float32 // KindMach, in [0, 10)
	Kmh   uint16  // KindKmh
}

func (s Speed) String() string {
	switch s.Kind {
	case KindKnots:
		return fmt.Sprintf("N%04d", s.Knots)
	case KindMach:
		return fmt.Sprintf("M%03d", int(s.Mach*100))
	case KindKmh:
		return fmt.Sprintf("K%04d", s.Kmh)
	default:
		return "Speed(?)"
	}
}

// AltitudeKind discriminates the payload carried by an Altitude.
type AltitudeKind int

const (
	KindFlightLevel AltitudeKind = iota
	KindMetricLevel
	KindAltitudeFt
	KindMetricAltitude
	KindAltitudeVfr
)

// Altitude is a modifier's altitude/level component.
type Altitude struct {
	Kind  AltitudeKind
	Value uint16 // unused when Kind == KindAltitudeVfr
}

func (a Altitude) String() string {
	switch a.Kind {
	case KindFlightLevel:
		return fmt.Sprintf("F%03d", a.Value)
	case KindMetricLevel:
		return fmt.Sprintf("S%04d", a.Value)
	case KindAltitudeFt:
		return fmt.Sprintf("A%04d", a.Value)
	case KindMetricAltitude:
		return fmt.Sprintf("M%04d", a.Value)
	case KindAltitudeVfr:
		return "VFR"
	default:
		return "Altitude(?)"
	}
}

// Modifier carries an optional speed, an optional altitude, and the
// cruise-climb flag. A Modifier with neither Speed nor Altitude set is
// never constructed by this package; Altitude alone is valid, Speed alone
// is not (see parseModifier).
type Modifier struct {
	Speed       *Speed
	Altitude    *Altitude
	CruiseClimb bool
}

func (m Modifier) String() string {
	plus := ""
	if m.CruiseClimb {
		plus = "PLUS"
	}
	switch {
	case m.Speed != nil && m.Altitude != nil:
		return fmt.Sprintf("%s%s%s", m.Speed, m.Altitude, plus)
	case m.Speed != nil:
		return fmt.Sprintf("%s%s", m.Speed, plus)
	case m.Altitude != nil:
		return fmt.Sprintf("%s%s", m.Altitude, plus)
	default:
		return ""
	}
}

// ElementKind discriminates which of Point, Connector or Modifier an
// Element carries.
type ElementKind int

const (
	KindPointElement ElementKind = iota
	KindConnectorElement
	KindModifierElement
)

// Element is exactly one of Point, Connector or Modifier. A parsed route
// is an ordered, possibly empty sequence of Elements; duplicates are
// permitted and input order of accepted tokens is preserved.
type Element struct {
	Kind      ElementKind
	Point     *Point
	Connector *Connector
	Modifier  *Modifier
}

func pointElement(p Point) Element         { return Element{Kind: KindPointElement, Point: &p} }
func connectorElement(c Connector) Element { return Element{Kind: KindConnectorElement, Connector: &c} }
func modifierElement(m Modifier) Element   { return Element{Kind: KindModifierElement, Modifier: &m} }

func (e Element) String() string {
	switch e.Kind {
	case KindPointElement:
		return fmt.Sprintf("Point(%s)", e.Point)
	case KindConnectorElement:
		return fmt.Sprintf("Connector(%s)", e.Connector)
	case KindModifierElement:
		return fmt.Sprintf("Modifier(%s)", e.Modifier)
	default:
		return "Element(?)"
	}
}
