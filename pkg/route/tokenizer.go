// pkg/route/tokenizer.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

// tokenize splits route on whitespace (space, tab, newline, carriage
// return) and forward slash; each slash is additionally emitted as its
// own single-character token, in sequence with its surrounding tokens.
// No empty tokens are ever produced other than those slashes.
func tokenize(route string) []string {
	var tokens []string
	start := 0
	inToken := false

	isDelim := func(c byte) bool {
		return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '/'
	}

	for i := 0; i < len(route); i++ {
		c := route[i]
		if isDelim(c) {
			if inToken {
				tokens = append(tokens, route[start:i])
				inToken = false
			}
			if c == '/' {
				tokens = append(tokens, "/")
			}
		} else if !inToken {
			start = i
			inToken = true
		}
	}
	if inToken {
		tokens = append(tokens, route[start:])
	}
	return tokens
}
