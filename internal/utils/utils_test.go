package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewAccessToken_Claims(t *testing.T) {
	req := require.New(t)
	secret := "test-secret-0123456789"

	tok, err := NewAccessToken(secret, "organizer", RoleOrganizer, 15)
	req.NoError(err)
	req.WithinDuration(time.Now().UTC().Add(15*time.Minute), tok.Exp, 5*time.Second)

	parsed, err := jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) { return []byte(secret), nil })
	req.NoError(err)
	claims := parsed.Claims.(jwt.MapClaims)
	req.Equal("organizer", claims["sub"])
	req.Equal(RoleOrganizer, claims["role"])

	_, err = jwt.Parse(tok.Token, func(*jwt.Token) (interface{}, error) { return []byte("other"), nil })
	req.Error(err)
}

func TestHashKey_Verify(t *testing.T) {
	req := require.New(t)
	hash, err := HashKey("open-sesame", bcrypt.MinCost)
	req.NoError(err)
	req.True(VerifyKey(hash, "open-sesame"))
	req.False(VerifyKey(hash, "open-sesame!"))
	req.False(VerifyKey("not-a-hash", "open-sesame"))
}
