// pkg/route/tokenizer_test.go
// Copyright(c) 2026 atc-core contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package route

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := tokenize("N0450F100 POINT/M079F200 DCT")
	want := []string{"N0450F100", "POINT", "/", "M079F200", "DCT"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeMultipleWhitespace(t *testing.T) {
	got := tokenize("A  B\tC\nD\rE")
	want := []string{"A", "B", "C", "D", "E"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize() = %v, want %v", got, want)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := tokenize(""); len(got) != 0 {
		t.Errorf("tokenize(\"\") = %v, want empty", got)
	}
}
