package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", 1)

	signed, err := m.Generate("admin-1")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Validate(signed)
	require.NoError(t, err)
	require.Equal(t, "admin-1", claims.AdminID)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	signed, err := NewManager("secret-a", 1).Generate("admin-1")
	require.NoError(t, err)

	_, err = NewManager("secret-b", 1).Validate(signed)
	require.Error(t, err)
}

func TestValidateRejectsExpired(t *testing.T) {
	m := NewManager("test-secret", -1)

	signed, err := m.Generate("admin-1")
	require.NoError(t, err)

	_, err = m.Validate(signed)
	require.Error(t, err)
}
