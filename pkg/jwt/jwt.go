package jwt

import (
	"fmt"
	"time"

	"github.com/convox/refsort/pkg/structs"
	"github.com/golang-jwt/jwt/v4"
)

type claims struct {
	User string `json:"user"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type JwtManager struct {
	secret []byte
}

func NewJwtManager(secret string) *JwtManager {
	return &JwtManager{secret: []byte(secret)}
}

func (j *JwtManager) ReadToken(user string, duration time.Duration) (string, error) {
	return j.token(user, structs.RoleRead, duration)
}

func (j *JwtManager) WriteToken(user string, duration time.Duration) (string, error) {
	return j.token(user, structs.RoleReadWrite, duration)
}

func (j *JwtManager) Verify(token string) (*structs.TokenData, error) {
	t, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}

	c, ok := t.Claims.(*claims)
	if !ok || !t.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	switch c.Role {
	case structs.RoleRead, structs.RoleReadWrite:
	default:
		return nil, fmt.Errorf("invalid role: %s", c.Role)
	}

	return &structs.TokenData{User: c.User, Role: c.Role}, nil
}

func (j *JwtManager) token(user, role string, duration time.Duration) (string, error) {
	now := time.Now()

	c := claims{
		User: user,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "refsort",
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(j.secret)
}
