/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package normalize

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already normal", "hello world", "hello world"},
		{"fullwidth space collapsed", "山田　太郎", "山田 太郎"},
		{"ascii space unchanged", "山田 太郎", "山田 太郎"},
		{"tab and newline fold to space", "a\tb\nc", "a b c"},
		{"runs of space collapse", "a   b", "a b"},
		{"leading and trailing trimmed", "  a b  ", "a b"},
		{"nbsp folds to space", "a b", "a b"},
		{"zero width space removed", "a​b", "ab"},
		{"bom removed", string(rune(0xFEFF)) + "a", "a"},
		{"fullwidth alnum folds to halfwidth", "ＡＢＣ１２３", "ABC123"},
		{"case not folded", "ABC abc", "ABC abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in).Text
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"田中太郎の連絡先は03-1234-5678です。",
		"山田　太郎",
		"  a   b\tc\n",
		string([]rune{0x200B, 0xFEFF}),
		"ＡＢＣ１２３",
	}
	for _, s := range inputs {
		first := Normalize(s).Text
		second := Normalize(first).Text
		if first != second {
			t.Fatalf("Normalize not idempotent for %q: first=%q second=%q", s, first, second)
		}
	}
}

func TestNormalizeByteMapLength(t *testing.T) {
	r := Normalize("山田　太郎")
	wantRunes := len([]rune(r.Text))
	if len(r.ByteMap) != wantRunes {
		t.Fatalf("ByteMap length = %d, want %d (one entry per normalized rune)", len(r.ByteMap), wantRunes)
	}
	for i, off := range r.ByteMap {
		if off < 0 {
			t.Fatalf("ByteMap[%d] = %d, want >= 0", i, off)
		}
	}
}

func TestContains(t *testing.T) {
	if !Contains("abc", "") {
		t.Fatalf("Contains with empty needle should always match")
	}
	if !Contains("abc", "bc") {
		t.Fatalf("expected substring match")
	}
	if Contains("abc", "xyz") {
		t.Fatalf("expected no match")
	}
}
