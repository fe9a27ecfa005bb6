package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triple000-it/schiedam/pkg/jwt"
)

func TestGenerateYParse(t *testing.T) {
	tok, err := jwt.Generate("secreto", "u-1", "eigenaar", "schiedam", time.Hour)
	require.NoError(t, err)

	uid, role, err := jwt.Parse("secreto", tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", uid)
	assert.Equal(t, "eigenaar", role)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate("secreto", "u-1", "admin", "schiedam", time.Hour)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro", tok)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate("secreto", "u-1", "admin", "schiedam", -time.Minute)
	require.NoError(t, err)

	_, _, err = jwt.Parse("secreto", tok)
	assert.Error(t, err)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u", "admin", "x", time.Hour)
	assert.Error(t, err)
	_, _, err = jwt.Parse("", "abc")
	assert.Error(t, err)
}
