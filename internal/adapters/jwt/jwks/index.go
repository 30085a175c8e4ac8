package jwks

import (
	"time"

	"github.com/MicahParks/keyfunc"
	"github.com/golang-jwt/jwt/v4"

	"github.com/rendau/jobly/internal/adapters/logger"
	"github.com/rendau/jobly/internal/errs"
)

// St validates tokens signed by an external identity provider against its
// published JWKS.
type St struct {
	lg logger.WarnAndError

	jwks *keyfunc.JWKS
}

func NewByUrl(lg logger.WarnAndError, url string, refreshInterval time.Duration) (*St, error) {
	jwks, err := keyfunc.Get(url, keyfunc.Options{
		RefreshInterval: refreshInterval,
		RefreshTimeout:  10 * time.Second,
		RefreshErrorHandler: func(err error) {
			lg.Errorw("Jwks refresh error", err)
		},
	})
	if err != nil {
		return nil, err
	}

	return &St{
		lg:   lg,
		jwks: jwks,
	}, nil
}

func (p *St) Validate(token string) (map[string]any, error) {
	jwtToken, err := jwt.Parse(token, p.jwks.Keyfunc)
	if err != nil || !jwtToken.Valid {
		return nil, errs.BadJwt
	}

	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errs.BadJwt
	}

	return claims, nil
}
