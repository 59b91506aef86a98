// Copyright 2026 The NumerBay Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"testing"

	"github.com/spf13/pflag"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"abc", "abd", 1}, // substitution
		{"abc", "ab", 1},  // deletion
		{"ab", "abc", 1},  // insertion
		{"abc", "bac", 2}, // transposition (counted as 2 edits)
		{"kitten", "sitting", 3},
		{"download", "downlaod", 2},
		{"submit", "sumbit", 2},
		{"orders", "order", 1},
	}

	for _, test := range tests {
		got := levenshtein(test.a, test.b)
		if got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}

func TestSuggestCommand(t *testing.T) {
	commands := []*Command{
		{Name: "account"},
		{Name: "orders"},
		{Name: "sales"},
		{Name: "download"},
		{Name: "submit"},
	}

	tests := []struct {
		input string
		want  string
	}{
		{"downlaod", "download"},
		{"order", "orders"},
		{"sumbit", "submit"},
		{"acount", "account"},
		{"completely-unrelated", ""},
	}

	for _, test := range tests {
		got := suggestCommand(test.input, commands)
		if got != test.want {
			t.Errorf("suggestCommand(%q) = %q, want %q", test.input, got, test.want)
		}
	}
}

func TestSuggestFlag(t *testing.T) {
	makeFlags := func() *pflag.FlagSet {
		flagSet := pflag.NewFlagSet("download", pflag.ContinueOnError)
		flagSet.String("dest-path", "", "")
		flagSet.String("key-path", "", "")
		flagSet.Int64("product-id", 0, "")
		return flagSet
	}

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"--dest-pth", "x"}, "--dest-path"},
		{[]string{"--product-id", "4", "--ky-path=file"}, "--key-path"},
		{[]string{"--nothing-close"}, ""},
		{[]string{"positional"}, ""},
	}

	for _, test := range tests {
		got := suggestFlag(test.args, makeFlags())
		if got != test.want {
			t.Errorf("suggestFlag(%v) = %q, want %q", test.args, got, test.want)
		}
	}
}
