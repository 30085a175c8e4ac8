package core

import (
	"context"

	"github.com/rendau/jobly/internal/cns"
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/errs"
	"github.com/rendau/jobly/internal/repo"
)

type CompanySt struct {
	r    *St
	repo repo.Company
}

func companyCacheKey(handle string) string {
	return "company:" + handle
}

func (c *CompanySt) Create(ctx context.Context, req entities.CompanyCreateReqSt) (entities.CompanySt, error) {
	exists, err := c.repo.Exists(ctx, req.Handle)
	if err != nil {
		return entities.CompanySt{}, err
	}
	if exists {
		return entities.CompanySt{}, errs.ErrWithDesc{
			Err:  errs.Duplicate,
			Desc: "company already exists: " + req.Handle,
		}
	}

	obj := entities.CompanySt{
		Handle:       req.Handle,
		Name:         req.Name,
		Description:  req.Description,
		NumEmployees: req.NumEmployees,
		LogoUrl:      req.LogoUrl,
	}

	err = c.repo.Create(ctx, obj)
	if err != nil {
		return entities.CompanySt{}, err
	}

	return obj, nil
}

func (c *CompanySt) List(ctx context.Context, pars entities.CompanyListParsSt) ([]entities.CompanySt, error) {
	if pars.MinEmployees != nil && pars.MaxEmployees != nil && *pars.MinEmployees > *pars.MaxEmployees {
		return nil, errs.ErrWithDesc{
			Err:  errs.MinGreaterThanMax,
			Desc: "minEmployees cannot exceed maxEmployees",
		}
	}

	return c.repo.List(ctx, pars)
}

func (c *CompanySt) Get(ctx context.Context, handle string) (entities.CompanyWithJobsSt, error) {
	result := entities.CompanyWithJobsSt{}

	found, _ := c.r.cache.GetJsonObj(companyCacheKey(handle), &result)
	if found {
		return result, nil
	}

	company, err := c.repo.Get(ctx, handle)
	if err != nil {
		return entities.CompanyWithJobsSt{}, hNotFoundErr(err)
	}

	jobs, err := c.repo.GetJobs(ctx, handle)
	if err != nil {
		return entities.CompanyWithJobsSt{}, err
	}

	result = entities.CompanyWithJobsSt{
		CompanySt: company,
		Jobs:      jobs,
	}

	_ = c.r.cache.SetJsonObj(companyCacheKey(handle), result, cns.CompanyCacheTtl)

	return result, nil
}

func (c *CompanySt) Update(ctx context.Context, handle string, data map[string]any) (entities.CompanySt, error) {
	err := validateUpdateKeys(data, entities.CompanyUpdateFields)
	if err != nil {
		return entities.CompanySt{}, err
	}

	obj, err := c.repo.Update(ctx, handle, data)
	if err != nil {
		return entities.CompanySt{}, hNotFoundErr(err)
	}

	_ = c.r.cache.Del(companyCacheKey(handle))

	return obj, nil
}

func (c *CompanySt) Delete(ctx context.Context, handle string) error {
	err := c.repo.Delete(ctx, handle)
	if err != nil {
		return hNotFoundErr(err)
	}

	_ = c.r.cache.Del(companyCacheKey(handle))

	return nil
}
