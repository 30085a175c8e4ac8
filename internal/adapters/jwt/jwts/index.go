package jwts

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/rendau/jobly/internal/errs"
)

// St signs and validates HS256 tokens with a local secret.
type St struct {
	secret []byte
}

func New(secret string) *St {
	return &St{
		secret: []byte(secret),
	}
}

func (p *St) Create(sub string, expSeconds int64, payload map[string]any) (string, error) {
	claims := jwt.MapClaims{}

	for k, v := range payload {
		claims[k] = v
	}

	if sub != "" {
		claims["sub"] = sub
	}

	claims["iat"] = time.Now().Unix()

	if expSeconds != 0 {
		claims["exp"] = time.Now().Add(time.Duration(expSeconds) * time.Second).Unix()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}

func (p *St) Validate(token string) (map[string]any, error) {
	jwtToken, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.BadJwt
		}

		return p.secret, nil
	})
	if err != nil || !jwtToken.Valid {
		return nil, errs.BadJwt
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errs.BadJwt
	}

	return claims, nil
}
