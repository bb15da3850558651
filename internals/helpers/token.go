// file: internals/helpers/token.go
package helper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

var (
	ErrTokenInvalid = errors.New("token tidak valid atau sudah kedaluwarsa")
)

// AdminClaims adalah identitas admin yang dibawa bearer token.
type AdminClaims struct {
	AdminID  uuid.UUID
	Username string
}

// IssueAdminToken menerbitkan JWT HS256 dengan exp = now + ttl.
func IssueAdminToken(adminID uuid.UUID, username, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id":       adminID.String(),
		"admin_username": username,
		"iat":            now.Unix(),
		"exp":            now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseAdminToken memverifikasi signature + exp lalu mengembalikan identitas.
// Verifikasi stateless: tidak ada blacklist / revocation list.
func ParseAdminToken(tokenString, secret string) (*AdminClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalid
	}

	idStr, _ := claims["admin_id"].(string)
	adminID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrTokenInvalid
	}
	username, _ := claims["admin_username"].(string)
	if username == "" {
		return nil, ErrTokenInvalid
	}

	return &AdminClaims{AdminID: adminID, Username: username}, nil
}
