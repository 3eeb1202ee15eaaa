package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_EffectiveRole(t *testing.T) {
	t.Parallel()

	shop := &PrinterProfile{ID: uuid.New(), BusinessName: "Atelier Congo Print"}

	cases := []struct {
		name    string
		stored  Role
		profile *PrinterProfile
		want    Role
	}{
		{name: "client without shop", stored: RoleClient, profile: nil, want: RoleClient},
		{name: "admin without shop", stored: RoleAdmin, profile: nil, want: RoleAdmin},
		{name: "client with shop", stored: RoleClient, profile: shop, want: RolePrinter},
		{name: "admin with shop", stored: RoleAdmin, profile: shop, want: RolePrinter},
		{name: "empty stored role", stored: "", profile: nil, want: RoleClient},
		{name: "unknown stored role", stored: Role("superuser"), profile: nil, want: RoleClient},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user := &User{Role: tc.stored, PrinterProfile: tc.profile}

			assert.Equal(t, tc.want, user.EffectiveRole())
			assert.Equal(t, tc.profile != nil, user.IsPrinter())
		})
	}
}

func TestUser_FullName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Amina Moukala", (&User{FirstName: "Amina", LastName: "Moukala"}).FullName())
	assert.Equal(t, "Amina", (&User{FirstName: "Amina"}).FullName())
	assert.Equal(t, "Moukala", (&User{LastName: "Moukala"}).FullName())
	assert.Empty(t, (&User{}).FullName())
}
