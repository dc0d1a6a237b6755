// pkg/route/json.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON emits the externally-tagged encoding: a bare JSON string for
// the fixed-keyword connectors and VFR altitudes, a single-key object for
// every parameterised variant, matching the wire format consumers of this
// package's JSON lines already expect.
func (p Point) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case KindWaypoint:
		return json.Marshal(struct {
			Waypoint string `json:"waypoint"`
		}{p.Name})
	case KindCoordinate:
		return json.Marshal(struct {
			Coords [2]float64 `json:"coords"`
		}{[2]float64{p.Lat, p.Lon}})
	case KindBearingDistance:
		return json.Marshal(struct {
			PBD struct {
				Point    Point  `json:"point"`
				Bearing  uint16 `json:"bearing"`
				Distance uint16 `json:"distance"`
			} `json:"point_bearing_distance"`
		}{struct {
			Point    Point  `json:"point"`
			Bearing  uint16 `json:"bearing"`
			Distance uint16 `json:"distance"`
		}{*p.Inner, p.Bearing, p.Distance}})
	case KindAerodrome:
		return json.Marshal(struct {
			Aerodrome string `json:"aerodrome"`
		}{p.Name})
	default:
		return nil, fmt.Errorf("route: unknown point kind %d", p.Kind)
	}
}

func (c Connector) MarshalJSON() ([]byte, error) {
	switch c.Kind {
	case KindAirway:
		return json.Marshal(struct {
			Airway string `json:"airway"`
		}{c.Name})
	case KindDirect:
		return json.Marshal("DCT")
	case KindVfr:
		return json.Marshal("VFR")
	case KindIfr:
		return json.Marshal("IFR")
	case KindOat:
		return json.Marshal("OAT")
	case KindGat:
		return json.Marshal("GAT")
	case KindIfpStop:
		return json.Marshal("IFPSTOP")
	case KindIfpStart:
		return json.Marshal("IFPSTART")
	case KindStay:
		return json.Marshal("STAY")
	case KindSid:
		return json.Marshal(struct {
			Sid string `json:"SID"`
		}{c.Name})
	case KindStar:
		return json.Marshal(struct {
			Star string `json:"STAR"`
		}{c.Name})
	case KindNat:
		return json.Marshal(struct {
			Nat string `json:"NAT"`
		}{c.Name})
	case KindPts:
		return json.Marshal(struct {
			Pts string `json:"PTS"`
		}{c.Name})
	default:
		return nil, fmt.Errorf("route: unknown connector kind %d", c.Kind)
	}
}

func (s Speed) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case KindKnots:
		return json.Marshal(struct {
			Kts uint16 `json:"kts"`
		}{s.Knots})
	case KindMach:
		return json.Marshal(struct {
			Mach float32 `json:"Mach"`
		}{s.Mach})
	case KindKmh:
		return json.Marshal(struct {
			Kmh uint16 `json:"km/h"`
		}{s.Kmh})
	default:
		return nil, fmt.Errorf("route: unknown speed kind %d", s.Kind)
	}
}

func (a Altitude) MarshalJSON() ([]byte, error) {
	switch a.Kind {
	case KindFlightLevel:
		return json.Marshal(struct {
			FL uint16 `json:"FL"`
		}{a.Value})
	case KindMetricLevel:
		return json.Marshal(struct {
			S uint16 `json:"S"`
		}{a.Value})
	case KindAltitudeFt:
		return json.Marshal(struct {
			Ft uint16 `json:"ft"`
		}{a.Value})
	case KindMetricAltitude:
		return json.Marshal(struct {
			M uint16 `json:"m"`
		}{a.Value})
	case KindAltitudeVfr:
		return json.Marshal("VFR")
	default:
		return nil, fmt.Errorf("route: unknown altitude kind %d", a.Kind)
	}
}

func (m Modifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Speed       *Speed    `json:"speed"`
		Altitude    *Altitude `json:"altitude"`
		CruiseClimb bool      `json:"cruise_climb"`
	}{m.Speed, m.Altitude, m.CruiseClimb})
}

// MarshalJSON emits the untagged route-element envelope: whichever of
// Point, Connector or Modifier is active is marshaled directly, with no
// wrapping "kind" key — consumers discriminate on the shape of the value,
// exactly as spec'd.
func (e Element) MarshalJSON() ([]byte, error) {
	switch e.Kind {
	case KindPointElement:
		return json.Marshal(e.Point)
	case KindConnectorElement:
		return json.Marshal(e.Connector)
	case KindModifierElement:
		return json.Marshal(e.Modifier)
	default:
		return nil, fmt.Errorf("route: unknown element kind %d", e.Kind)
	}
}
