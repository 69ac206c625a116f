package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoomType(t *testing.T) {
	cases := []struct {
		in   string
		want RoomType
	}{
		{"SINGLE", RoomSingle},
		{"double", RoomDouble},
		{"  Triple ", RoomTriple},
		{"quadruple", RoomQuadruple},
		{"", RoomSingle},
		{"penthouse", RoomSingle},
		{"suite", RoomSingle},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseRoomType(tc.in), "input %q", tc.in)
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleAdmin, ParseRole(" ADMIN "))
	assert.Equal(t, RoleClient, ParseRole("CLIENT"))
	assert.Equal(t, RoleClient, ParseRole(""))
	// Unknown input must never grant elevated permissions.
	assert.Equal(t, RoleClient, ParseRole("superuser"))
}

func TestNormalizeTags(t *testing.T) {
	assert.Empty(t, NormalizeTags(nil))
	assert.Empty(t, NormalizeTags([]string{}))

	got := NormalizeTags([]string{" Beach ", "ADVENTURE", "beach", ""})
	assert.Equal(t, []string{"beach", "adventure", "general"}, got)

	// Empty entries collapse onto the default tag once.
	got = NormalizeTags([]string{"", "  ", "General"})
	assert.Equal(t, []string{"general"}, got)
}
