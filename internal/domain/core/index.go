// Package core holds the services behind the REST handlers. Services
// sequence validation, duplicate pre-checks and cache use around the repo
// calls; they carry no state of their own between requests.
package core

import (
	"errors"

	"github.com/rendau/jobly/internal/adapters/cache"
	"github.com/rendau/jobly/internal/adapters/db"
	"github.com/rendau/jobly/internal/adapters/jwt"
	"github.com/rendau/jobly/internal/adapters/logger"
	"github.com/rendau/jobly/internal/cns"
	"github.com/rendau/jobly/internal/errs"
	"github.com/rendau/jobly/internal/repo"
	"github.com/rendau/jobly/internal/tools"
)

type St struct {
	lg              logger.Lite
	cache           cache.Cache
	jwt             jwt.Jwt
	jwtValidator    jwt.Validator
	tokenExpSeconds int64

	Company *CompanySt
	Job     *JobSt
	User    *UserSt
	Auth    *AuthSt
}

type OptionsSt struct {
	Lg              logger.Lite
	Cache           cache.Cache
	Jwt             jwt.Jwt
	JwtValidator    jwt.Validator
	TokenExpSeconds int64

	CompanyRepo repo.Company
	JobRepo     repo.Job
	UserRepo    repo.User
}

func New(opts OptionsSt) *St {
	if opts.TokenExpSeconds == 0 {
		opts.TokenExpSeconds = cns.DefaultTokenExpSeconds
	}

	c := &St{
		lg:              opts.Lg,
		cache:           opts.Cache,
		jwt:             opts.Jwt,
		jwtValidator:    opts.JwtValidator,
		tokenExpSeconds: opts.TokenExpSeconds,
	}

	c.Company = &CompanySt{r: c, repo: opts.CompanyRepo}
	c.Job = &JobSt{r: c, repo: opts.JobRepo}
	c.User = &UserSt{r: c, repo: opts.UserRepo}
	c.Auth = &AuthSt{r: c, repo: opts.UserRepo}

	return c
}

func hNotFoundErr(err error) error {
	if errors.Is(err, db.ErrNoRows) {
		return errs.ObjectNotFound
	}

	return err
}

// validateUpdateKeys rejects update payloads carrying fields outside the
// entity's updatable set, before any clause is built.
func validateUpdateKeys(data map[string]any, allowed []string) error {
	for k := range data {
		if !tools.SliceHasValue(allowed, k) {
			return errs.ErrWithDesc{Err: errs.BadJson, Desc: "unknown field: " + k}
		}
	}

	return nil
}
