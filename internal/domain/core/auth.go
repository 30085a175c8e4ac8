package core

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/rendau/jobly/internal/adapters/db"
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/errs"
	"github.com/rendau/jobly/internal/repo"
	"github.com/rendau/jobly/internal/types"
)

type AuthSt struct {
	r    *St
	repo repo.User
}

func (a *AuthSt) CreateToken(usr entities.UserSt) (string, error) {
	return a.r.jwt.Create(usr.Username, a.r.tokenExpSeconds, map[string]any{
		"is_admin": usr.IsAdmin,
	})
}

func (a *AuthSt) Login(ctx context.Context, username, password string) (string, error) {
	usr, pwdHash, err := a.repo.GetAuthData(ctx, username)
	if err != nil {
		if errors.Is(err, db.ErrNoRows) {
			return "", errs.WrongAuthCreds
		}

		return "", err
	}

	err = bcrypt.CompareHashAndPassword([]byte(pwdHash), []byte(password))
	if err != nil {
		return "", errs.WrongAuthCreds
	}

	return a.CreateToken(usr)
}

// GetSession parses a bearer token into a session. An empty or invalid
// token yields the anonymous session; route guards decide what that means.
func (a *AuthSt) GetSession(token string) types.SessionSt {
	if token == "" {
		return types.SessionSt{}
	}

	claims, err := a.r.jwtValidator.Validate(token)
	if err != nil {
		return types.SessionSt{}
	}

	sub, _ := claims["sub"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	return types.SessionSt{
		Username: sub,
		IsAdmin:  isAdmin,
	}
}
