// pkg/route/parser.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

// Parse tokenizes and classifies an ICAO Field 15 route string into an
// ordered sequence of Elements. Parse is total: it never fails, and
// tokens it cannot classify by any rule are silently dropped. Empty or
// fully-unclassified input yields an empty, non-nil slice.
//
// The pass carries a single piece of state, firstPointParsed, set once a
// point, SID or STAR has been emitted — the first procedure-shaped token
// seen before that is always the SID. The STAR is resolved in the same
// pass by checking whether a procedure-shaped token is the last token of
// the input.
func Parse(s string) []Element {
	tokens := tokenize(s)
	elements := []Element{}
	firstPointParsed := false

	for i, token := range tokens {
		if token == "T" {
			break
		}
		if token == "/" {
			continue
		}

		if mod, ok := parseModifier(token); ok {
			elements = append(elements, modifierElement(mod))
			continue
		}

		switch token {
		case "DCT":
			elements = append(elements, connectorElement(Connector{Kind: KindDirect}))
			continue
		case "VFR":
			elements = append(elements, connectorElement(Connector{Kind: KindVfr}))
			continue
		case "IFR":
			elements = append(elements, connectorElement(Connector{Kind: KindIfr}))
			continue
		case "OAT":
			elements = append(elements, connectorElement(Connector{Kind: KindOat}))
			continue
		case "GAT":
			elements = append(elements, connectorElement(Connector{Kind: KindGat}))
			continue
		case "IFPSTOP":
			elements = append(elements, connectorElement(Connector{Kind: KindIfpStop}))
			continue
		case "IFPSTART":
			elements = append(elements, connectorElement(Connector{Kind: KindIfpStart}))
			continue
		case "SID":
			elements = append(elements, connectorElement(Connector{Kind: KindSid, Name: "SID"}))
			firstPointParsed = true
			continue
		case "STAR":
			elements = append(elements, connectorElement(Connector{Kind: KindStar, Name: "STAR"}))
			firstPointParsed = true
			continue
		}

		isLast := i == len(tokens)-1

		if !firstPointParsed && isProcedure(token) {
			elements = append(elements, connectorElement(Connector{Kind: KindSid, Name: token}))
			firstPointParsed = true
			continue
		}

		if isProcedure(token) && isLast {
			elements = append(elements, connectorElement(Connector{Kind: KindStar, Name: token}))
			firstPointParsed = true
			continue
		}

		if len(elements) > 0 && elements[len(elements)-1].Kind == KindConnectorElement &&
			elements[len(elements)-1].Connector.Kind == KindDirect {
			if p, ok := parsePoint(token); ok {
				elements = append(elements, pointElement(p))
				firstPointParsed = true
			}
			continue
		}

		if isNat(token) {
			elements = append(elements, connectorElement(Connector{Kind: KindNat, Name: token}))
			continue
		}
		if isPts(token) {
			elements = append(elements, connectorElement(Connector{Kind: KindPts, Name: token}))
			continue
		}

		if isAirway(token) {
			if isLast && isProcedure(token) {
				elements = append(elements, connectorElement(Connector{Kind: KindStar, Name: token}))
				firstPointParsed = true
			} else {
				elements = append(elements, connectorElement(Connector{Kind: KindAirway, Name: token}))
			}
			continue
		}

		if p, ok := parsePoint(token); ok {
			elements = append(elements, pointElement(p))
			firstPointParsed = true
		}
	}

	return elements
}
