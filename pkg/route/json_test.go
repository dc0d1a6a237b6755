// pkg/route/json_test.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"encoding/json"
	"testing"
)

func marshalString(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal(%+v) failed: %v", v, err)
	}
	return string(b)
}

func TestMarshalPointKinds(t *testing.T) {
	for _, c := range []struct {
		p    Point
		want string
	}{
		{Point{Kind: KindWaypoint, Name: "LACOU"}, `{"waypoint":"LACOU"}`},
		{Point{Kind: KindAerodrome, Name: "LFPG"}, `{"aerodrome":"LFPG"}`},
		{Point{Kind: KindCoordinate, Lat: 1, Lon: -1}, `{"coords":[1,-1]}`},
	} {
		if got := marshalString(t, c.p); got != c.want {
			t.Errorf("Marshal(%+v) = %s, want %s", c.p, got, c.want)
		}
	}
}

func TestMarshalBearingDistance(t *testing.T) {
	inner := Point{Kind: KindWaypoint, Name: "WAYPOINT"}
	p := Point{Kind: KindBearingDistance, Inner: &inner, Bearing: 180, Distance: 60}
	want := `{"point_bearing_distance":{"point":{"waypoint":"WAYPOINT"},"bearing":180,"distance":60}}`
	if got := marshalString(t, p); got != want {
		t.Errorf("Marshal(bearing/distance) = %s, want %s", got, want)
	}
}

func TestMarshalConnectorKinds(t *testing.T) {
	for _, c := range []struct {
		c    Connector
		want string
	}{
		{Connector{Kind: KindAirway, Name: "UM184"}, `{"airway":"UM184"}`},
		{Connector{Kind: KindDirect}, `"DCT"`},
		{Connector{Kind: KindVfr}, `"VFR"`},
		{Connector{Kind: KindIfr}, `"IFR"`},
		{Connector{Kind: KindOat}, `"OAT"`},
		{Connector{Kind: KindGat}, `"GAT"`},
		{Connector{Kind: KindIfpStop}, `"IFPSTOP"`},
		{Connector{Kind: KindIfpStart}, `"IFPSTART"`},
		{Connector{Kind: KindStay}, `"STAY"`},
		{Connector{Kind: KindSid, Name: "LACOU5A"}, `{"SID":"LACOU5A"}`},
		{Connector{Kind: KindStar, Name: "ROXOG1H"}, `{"STAR":"ROXOG1H"}`},
		{Connector{Kind: KindNat, Name: "NATD"}, `{"NAT":"NATD"}`},
		{Connector{Kind: KindPts, Name: "PTS1"}, `{"PTS":"PTS1"}`},
	} {
		if got := marshalString(t, c.c); got != c.want {
			t.Errorf("Marshal(%+v) = %s, want %s", c.c, got, c.want)
		}
	}
}

func TestMarshalSpeedKinds(t *testing.T) {
	for _, c := range []struct {
		s    Speed
		want string
	}{
		{Speed{Kind: KindKnots, Knots: 450}, `{"kts":450}`},
		{Speed{Kind: KindMach, Mach: 0.79}, `{"Mach":0.79}`},
		{Speed{Kind: KindKmh, Kmh: 893}, `{"km/h":893}`},
	} {
		if got := marshalString(t, c.s); got != c.want {
			t.Errorf("Marshal(%+v) = %s, want %s", c.s, got, c.want)
		}
	}
}

func TestMarshalAltitudeKinds(t *testing.T) {
	for _, c := range []struct {
		a    Altitude
		want string
	}{
		{Altitude{Kind: KindFlightLevel, Value: 340}, `{"FL":340}`},
		{Altitude{Kind: KindMetricLevel, Value: 1130}, `{"S":1130}`},
		{Altitude{Kind: KindAltitudeFt, Value: 4500}, `{"ft":4500}`},
		{Altitude{Kind: KindMetricAltitude, Value: 825}, `{"m":825}`},
		{Altitude{Kind: KindAltitudeVfr}, `"VFR"`},
	} {
		if got := marshalString(t, c.a); got != c.want {
			t.Errorf("Marshal(%+v) = %s, want %s", c.a, got, c.want)
		}
	}
}

func TestMarshalModifier(t *testing.T) {
	speed := Speed{Kind: KindKnots, Knots: 450}
	alt := Altitude{Kind: KindFlightLevel, Value: 100}
	m := Modifier{Speed: &speed, Altitude: &alt, CruiseClimb: true}
	want := `{"speed":{"kts":450},"altitude":{"FL":100},"cruise_climb":true}`
	if got := marshalString(t, m); got != want {
		t.Errorf("Marshal(modifier) = %s, want %s", got, want)
	}
}

func TestMarshalElementIsUntagged(t *testing.T) {
	e := pointElement(Point{Kind: KindAerodrome, Name: "LFPG"})
	if got, want := marshalString(t, e), `{"aerodrome":"LFPG"}`; got != want {
		t.Errorf("Marshal(element) = %s, want %s", got, want)
	}

	e2 := connectorElement(Connector{Kind: KindDirect})
	if got, want := marshalString(t, e2), `"DCT"`; got != want {
		t.Errorf("Marshal(element) = %s, want %s", got, want)
	}
}

func TestMarshalRouteIsJSONArray(t *testing.T) {
	elements := Parse("N0450F100 LFPG DCT EGLL")
	b, err := json.Marshal(elements)
	if err != nil {
		t.Fatalf("Marshal(route) failed: %v", err)
	}
	want := `[{"speed":{"kts":450},"altitude":{"FL":100},"cruise_climb":false},` +
		`{"aerodrome":"LFPG"},"DCT",{"aerodrome":"EGLL"}]`
	if string(b) != want {
		t.Errorf("Marshal(route) = %s, want %s", b, want)
	}
}
