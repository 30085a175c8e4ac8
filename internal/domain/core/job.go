package core

import (
	"context"

	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/repo"
)

type JobSt struct {
	r    *St
	repo repo.Job
}

func (c *JobSt) Create(ctx context.Context, req entities.JobCreateReqSt) (entities.JobSt, error) {
	obj, err := c.repo.Create(ctx, req.Title, req.Salary, req.Equity, req.CompanyHandle)
	if err != nil {
		return entities.JobSt{}, err
	}

	_ = c.r.cache.Del(companyCacheKey(req.CompanyHandle))

	return obj, nil
}

func (c *JobSt) List(ctx context.Context, pars entities.JobListParsSt) ([]entities.JobSt, error) {
	return c.repo.List(ctx, pars)
}

func (c *JobSt) Get(ctx context.Context, id int64) (entities.JobSt, error) {
	obj, err := c.repo.Get(ctx, id)
	if err != nil {
		return entities.JobSt{}, hNotFoundErr(err)
	}

	return obj, nil
}

func (c *JobSt) Update(ctx context.Context, id int64, data map[string]any) (entities.JobSt, error) {
	err := validateUpdateKeys(data, entities.JobUpdateFields)
	if err != nil {
		return entities.JobSt{}, err
	}

	obj, err := c.repo.Update(ctx, id, data)
	if err != nil {
		return entities.JobSt{}, hNotFoundErr(err)
	}

	_ = c.r.cache.Del(companyCacheKey(obj.CompanyHandle))

	return obj, nil
}

func (c *JobSt) Delete(ctx context.Context, id int64) error {
	obj, err := c.repo.Get(ctx, id)
	if err != nil {
		return hNotFoundErr(err)
	}

	err = c.repo.Delete(ctx, id)
	if err != nil {
		return hNotFoundErr(err)
	}

	_ = c.r.cache.Del(companyCacheKey(obj.CompanyHandle))

	return nil
}
