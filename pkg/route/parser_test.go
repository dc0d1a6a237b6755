// pkg/route/parser_test.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import "testing"

func kts(n uint16) *Speed { s := Speed{Kind: KindKnots, Knots: n}; return &s }
func mach(m float32) *Speed { s := Speed{Kind: KindMach, Mach: m}; return &s }
func fl(n uint16) *Altitude { a := Altitude{Kind: KindFlightLevel, Value: n}; return &a }

func waypoint(name string) Element {
	return pointElement(Point{Kind: KindWaypoint, Name: name})
}
func aerodrome(name string) Element {
	return pointElement(Point{Kind: KindAerodrome, Name: name})
}
func airway(name string) Element {
	return connectorElement(Connector{Kind: KindAirway, Name: name})
}
func sid(name string) Element {
	return connectorElement(Connector{Kind: KindSid, Name: name})
}
func star(name string) Element {
	return connectorElement(Connector{Kind: KindStar, Name: name})
}
func direct() Element {
	return connectorElement(Connector{Kind: KindDirect})
}
func modifier(speed *Speed, alt *Altitude) Element {
	return modifierElement(Modifier{Speed: speed, Altitude: alt})
}

func elementsEqual(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].String() != b[i].String() {
			return false
		}
	}
	return true
}

func TestParseSimpleRoute(t *testing.T) {
	route := "N0456F340 LACOU5A LACOU UM184 CNA UN863 MANAK UY110 REVTU UP87 ROXOG ROXOG1H"
	want := []Element{
		modifier(kts(456), fl(340)),
		sid("LACOU5A"),
		waypoint("LACOU"),
		airway("UM184"),
		waypoint("CNA"),
		airway("UN863"),
		waypoint("MANAK"),
		airway("UY110"),
		waypoint("REVTU"),
		airway("UP87"),
		waypoint("ROXOG"),
		star("ROXOG1H"),
	}
	got := Parse(route)
	if !elementsEqual(got, want) {
		t.Errorf("Parse(%q) =\n%v\nwant\n%v", route, got, want)
	}
}

func TestParseAerodromeAndDirect(t *testing.T) {
	route := "N0450F100 LFPG DCT EGLL"
	want := []Element{
		modifier(kts(450), fl(100)),
		aerodrome("LFPG"),
		direct(),
		aerodrome("EGLL"),
	}
	got := Parse(route)
	if !elementsEqual(got, want) {
		t.Errorf("Parse(%q) =\n%v\nwant\n%v", route, got, want)
	}
}

func TestParseTruncateIndicatorDropsTrailingTokens(t *testing.T) {
	route := "N0450F100 POINT DCT POINT2 T EXTRA"
	want := []Element{
		modifier(kts(450), fl(100)),
		waypoint("POINT"),
		direct(),
		waypoint("POINT2"),
	}
	got := Parse(route)
	if !elementsEqual(got, want) {
		t.Errorf("Parse(%q) =\n%v\nwant\n%v", route, got, want)
	}
}

func TestParseBearingDistanceOnCoordinate(t *testing.T) {
	route := "N0450M0825 00N000E B9 00N001E VFR IFR 00N001W/N0350F100 01N001W 01S001W 02S001W180060"
	got := Parse(route)
	if len(got) == 0 {
		t.Fatal("expected non-empty route")
	}
	last := got[len(got)-1]
	if last.Kind != KindPointElement || last.Point.Kind != KindBearingDistance {
		t.Fatalf("last element should be a BearingDistance point, got %v", last)
	}
	if last.Point.Inner.Kind != KindCoordinate || last.Point.Inner.Lat != -2 || last.Point.Inner.Lon != -1 {
		t.Errorf("unexpected inner coordinate %+v", last.Point.Inner)
	}
	if last.Point.Bearing != 180 || last.Point.Distance != 60 {
		t.Errorf("unexpected bearing/distance %d/%d", last.Point.Bearing, last.Point.Distance)
	}

	var sawSlashModifier, sawAirway bool
	for _, e := range got {
		if e.Kind == KindModifierElement && e.Modifier.Speed != nil &&
			e.Modifier.Speed.Kind == KindKnots && e.Modifier.Speed.Knots == 350 {
			sawSlashModifier = true
		}
		if e.Kind == KindConnectorElement && e.Connector.Kind == KindAirway && e.Connector.Name == "B9" {
			sawAirway = true
		}
	}
	if !sawSlashModifier {
		t.Error("expected a modifier for N0350F100 after the slash")
	}
	if !sawAirway {
		t.Error("expected airway B9")
	}
}

func TestParseOatGat(t *testing.T) {
	route := "N0450F100 POINT OAT POINT GAT POINT"
	got := Parse(route)
	if len(got) != 6 {
		t.Fatalf("expected 6 elements, got %d: %v", len(got), got)
	}
	if got[2].Connector.Kind != KindOat || got[4].Connector.Kind != KindGat {
		t.Errorf("unexpected connectors: %v", got)
	}
}

func TestParseLiteralSidStar(t *testing.T) {
	route := "N0450F100 SID POINT DCT POINT2 STAR"
	want := []Element{
		modifier(kts(450), fl(100)),
		sid("SID"),
		waypoint("POINT"),
		direct(),
		waypoint("POINT2"),
		star("STAR"),
	}
	got := Parse(route)
	if !elementsEqual(got, want) {
		t.Errorf("Parse(%q) =\n%v\nwant\n%v", route, got, want)
	}
}

func TestParseProcedureLikeNotLastIsNotStar(t *testing.T) {
	route := "N0450F100 POINT1A POINT DCT POINT"
	got := Parse(route)
	for _, e := range got {
		if e.Kind == KindConnectorElement && e.Connector.Kind == KindStar && e.Connector.Name == "POINT1A" {
			t.Errorf("POINT1A should not be classified as STAR when not last: %v", got)
		}
	}
}

func TestParseSingleCharIsWaypointNotCruiseClimb(t *testing.T) {
	route := "N0450F100 POINT DCT C DCT POINT"
	got := Parse(route)
	found := false
	for _, e := range got {
		if e.Kind == KindPointElement && e.Point.Kind == KindWaypoint && e.Point.Name == "C" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected single-char token C to appear as a waypoint: %v", got)
	}
}

func TestParseDctForcesPointOverAirwayShape(t *testing.T) {
	// After DCT the next token is always a point, even if it looks like an airway.
	route := "N0450F100 POINT DCT L6"
	want := []Element{
		modifier(kts(450), fl(100)),
		waypoint("POINT"),
		direct(),
		waypoint("L6"),
	}
	got := Parse(route)
	if !elementsEqual(got, want) {
		t.Errorf("Parse(%q) =\n%v\nwant\n%v", route, got, want)
	}
}

func TestParseNatTrackInRoute(t *testing.T) {
	route := "N0490F360 PIKIL/M084F380 NATD HOIST"
	got := Parse(route)
	var sawNat bool
	for _, e := range got {
		if e.Kind == KindConnectorElement && e.Connector.Kind == KindNat && e.Connector.Name == "NATD" {
			sawNat = true
		}
	}
	if !sawNat {
		t.Errorf("expected NATD to classify as a NAT connector: %v", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if got := Parse(""); len(got) != 0 {
		t.Errorf("Parse(\"\") = %v, want empty", got)
	}
}

func TestParseMachModifier(t *testing.T) {
	got := Parse("DCT PEMOS/M079F320 DCT")
	var sawMach bool
	for _, e := range got {
		if e.Kind == KindModifierElement && e.Modifier.Speed != nil && e.Modifier.Speed.Kind == KindMach {
			if e.Modifier.Speed.Mach != 0.79 {
				t.Errorf("unexpected mach value %v", e.Modifier.Speed.Mach)
			}
			sawMach = true
		}
	}
	if !sawMach {
		t.Errorf("expected a Mach modifier: %v", got)
	}
	_ = mach
}
