package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveNameFromEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		first string
		last  string
	}{
		{name: "dot separated", email: "jane.doe@example.com", first: "Jane", last: "Doe"},
		{name: "single segment", email: "hr@example.com", first: "Hr", last: "User"},
		{name: "underscore and plus", email: "john_q+reports@example.com", first: "John", last: "Reports"},
		{name: "no at sign", email: "payroll.team", first: "Payroll", last: "Team"},
		{name: "empty local part", email: "@example.com", first: "User", last: "User"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := DeriveNameFromEmail(tt.email)
			assert.Equal(t, tt.first, first)
			assert.Equal(t, tt.last, last)
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Jane Doe", DisplayName("jane.doe@example.com"))
	assert.Equal(t, "Hr User", DisplayName("hr@example.com"))
	assert.Equal(t, "User", DisplayName("@example.com"))
}
