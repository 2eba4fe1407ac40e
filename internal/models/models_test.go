package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskTRN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123-456-789", "***-***-789"},
		{"123456789", "***-***-789"},
		{"987654321", "***-***-321"},
		{"12", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaskTRN(tt.in), "input %q", tt.in)
	}
}

func TestParishValid(t *testing.T) {
	assert.Len(t, Parishes, 14)
	for _, p := range Parishes {
		assert.True(t, p.Valid(), "parish %s", p)
	}
	assert.False(t, Parish("Atlantis").Valid())
	assert.False(t, Parish("").Valid())
}

func TestSignupAndStaffRolesDisjoint(t *testing.T) {
	for role := range SignupRoles {
		assert.False(t, StaffRoles[role], "role %s in both sets", role)
	}
}
