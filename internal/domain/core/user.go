package core

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/errs"
	"github.com/rendau/jobly/internal/repo"
)

type UserSt struct {
	r    *St
	repo repo.User
}

func (c *UserSt) Create(ctx context.Context, req entities.UserCreateReqSt) (entities.UserSt, error) {
	exists, err := c.repo.Exists(ctx, req.Username)
	if err != nil {
		return entities.UserSt{}, err
	}
	if exists {
		return entities.UserSt{}, errs.ErrWithDesc{
			Err:  errs.Duplicate,
			Desc: "username already taken: " + req.Username,
		}
	}

	pwdHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.UserSt{}, err
	}

	obj := entities.UserSt{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}

	err = c.repo.Create(ctx, obj, string(pwdHash))
	if err != nil {
		return entities.UserSt{}, err
	}

	return obj, nil
}

// Register creates a regular (non-admin) user and issues a token for it.
func (c *UserSt) Register(ctx context.Context, req entities.UserRegisterReqSt) (entities.UserSt, string, error) {
	usr, err := c.Create(ctx, entities.UserCreateReqSt{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		return entities.UserSt{}, "", err
	}

	token, err := c.r.Auth.CreateToken(usr)
	if err != nil {
		return entities.UserSt{}, "", err
	}

	return usr, token, nil
}

func (c *UserSt) List(ctx context.Context) ([]entities.UserSt, error) {
	return c.repo.List(ctx)
}

func (c *UserSt) Get(ctx context.Context, username string) (entities.UserWithJobsSt, error) {
	usr, err := c.repo.Get(ctx, username)
	if err != nil {
		return entities.UserWithJobsSt{}, hNotFoundErr(err)
	}

	jobIds, err := c.repo.GetAppliedJobIds(ctx, username)
	if err != nil {
		return entities.UserWithJobsSt{}, err
	}

	return entities.UserWithJobsSt{
		UserSt: usr,
		Jobs:   jobIds,
	}, nil
}

func (c *UserSt) Update(ctx context.Context, username string, data map[string]any) (entities.UserSt, error) {
	err := validateUpdateKeys(data, entities.UserUpdateFields)
	if err != nil {
		return entities.UserSt{}, err
	}

	if pwd, ok := data["password"]; ok {
		pwdStr, isStr := pwd.(string)
		if !isStr || pwdStr == "" {
			return entities.UserSt{}, errs.ErrWithDesc{Err: errs.BadJson, Desc: "password must be a non-empty string"}
		}

		pwdHash, err := bcrypt.GenerateFromPassword([]byte(pwdStr), bcrypt.DefaultCost)
		if err != nil {
			return entities.UserSt{}, err
		}

		// keep the caller's payload untouched
		dataCopy := make(map[string]any, len(data))
		for k, v := range data {
			dataCopy[k] = v
		}
		dataCopy["password"] = string(pwdHash)
		data = dataCopy
	}

	obj, err := c.repo.Update(ctx, username, data)
	if err != nil {
		return entities.UserSt{}, hNotFoundErr(err)
	}

	return obj, nil
}

func (c *UserSt) Delete(ctx context.Context, username string) error {
	return hNotFoundErr(c.repo.Delete(ctx, username))
}

func (c *UserSt) Apply(ctx context.Context, username string, jobId int64) error {
	err := c.repo.Apply(ctx, username, jobId)
	if err == errs.Duplicate {
		return errs.ErrWithDesc{
			Err:  errs.Duplicate,
			Desc: "already applied to this job",
		}
	}

	return err
}
