package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		tag   string
		want  bool
	}{
		{name: "empty query matches all", query: "", tag: "hero", want: true},
		{name: "exact", query: "hero", tag: "hero", want: true},
		{name: "substring", query: "er", tag: "hero", want: true},
		{name: "case insensitive", query: "HERO", tag: "hero", want: true},
		{name: "mixed case tag", query: "hero", tag: "HeRo", want: true},
		{name: "no match", query: "props", tag: "hero", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.tag, tt.query))
		})
	}
}

func TestFilterNames(t *testing.T) {
	names := []string{"hero", "props", "set_dressing", "lighting"}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns all", query: "", want: names},
		{name: "single hit", query: "hero", want: []string{"hero"}},
		{name: "multiple hits keep order", query: "s", want: []string{"props", "set_dressing"}},
		{name: "no hits", query: "zzz", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterNames(names, tt.query))
		})
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"hero", "props", "lighting", "set_dressing"}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "one letter off", in: "herp", want: "hero"},
		{name: "transposition", in: "porps", want: "props"},
		{name: "case ignored", in: "Hero", want: "hero"},
		{name: "nothing plausible", in: "quaternion", want: ""},
		{name: "empty input", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Closest(tt.in, candidates))
		})
	}
}

func TestClosestNoCandidates(t *testing.T) {
	assert.Equal(t, "", Closest("hero", nil))
}
