// Package mock provides hand-written test doubles for the repo interfaces.
// Unset function fields panic, which keeps unexpected calls loud in tests.
package mock

import (
	"context"

	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/repo"
)

// company

type CompanySt struct {
	CreateFunc  func(ctx context.Context, obj entities.CompanySt) error
	ListFunc    func(ctx context.Context, pars entities.CompanyListParsSt) ([]entities.CompanySt, error)
	GetFunc     func(ctx context.Context, handle string) (entities.CompanySt, error)
	GetJobsFunc func(ctx context.Context, handle string) ([]entities.JobSt, error)
	ExistsFunc  func(ctx context.Context, handle string) (bool, error)
	UpdateFunc  func(ctx context.Context, handle string, data map[string]any) (entities.CompanySt, error)
	DeleteFunc  func(ctx context.Context, handle string) error
}

var _ repo.Company = &CompanySt{}

func (m *CompanySt) Create(ctx context.Context, obj entities.CompanySt) error {
	return m.CreateFunc(ctx, obj)
}

func (m *CompanySt) List(ctx context.Context, pars entities.CompanyListParsSt) ([]entities.CompanySt, error) {
	return m.ListFunc(ctx, pars)
}

func (m *CompanySt) Get(ctx context.Context, handle string) (entities.CompanySt, error) {
	return m.GetFunc(ctx, handle)
}

func (m *CompanySt) GetJobs(ctx context.Context, handle string) ([]entities.JobSt, error) {
	return m.GetJobsFunc(ctx, handle)
}

func (m *CompanySt) Exists(ctx context.Context, handle string) (bool, error) {
	return m.ExistsFunc(ctx, handle)
}

func (m *CompanySt) Update(ctx context.Context, handle string, data map[string]any) (entities.CompanySt, error) {
	return m.UpdateFunc(ctx, handle, data)
}

func (m *CompanySt) Delete(ctx context.Context, handle string) error {
	return m.DeleteFunc(ctx, handle)
}

// job

type JobSt struct {
	CreateFunc func(ctx context.Context, title string, salary *int64, equity *string, companyHandle string) (entities.JobSt, error)
	ListFunc   func(ctx context.Context, pars entities.JobListParsSt) ([]entities.JobSt, error)
	GetFunc    func(ctx context.Context, id int64) (entities.JobSt, error)
	UpdateFunc func(ctx context.Context, id int64, data map[string]any) (entities.JobSt, error)
	DeleteFunc func(ctx context.Context, id int64) error
}

var _ repo.Job = &JobSt{}

func (m *JobSt) Create(ctx context.Context, title string, salary *int64, equity *string, companyHandle string) (entities.JobSt, error) {
	return m.CreateFunc(ctx, title, salary, equity, companyHandle)
}

func (m *JobSt) List(ctx context.Context, pars entities.JobListParsSt) ([]entities.JobSt, error) {
	return m.ListFunc(ctx, pars)
}

func (m *JobSt) Get(ctx context.Context, id int64) (entities.JobSt, error) {
	return m.GetFunc(ctx, id)
}

func (m *JobSt) Update(ctx context.Context, id int64, data map[string]any) (entities.JobSt, error) {
	return m.UpdateFunc(ctx, id, data)
}

func (m *JobSt) Delete(ctx context.Context, id int64) error {
	return m.DeleteFunc(ctx, id)
}

// user

type UserSt struct {
	CreateFunc           func(ctx context.Context, obj entities.UserSt, pwdHash string) error
	ListFunc             func(ctx context.Context) ([]entities.UserSt, error)
	GetFunc              func(ctx context.Context, username string) (entities.UserSt, error)
	GetAuthDataFunc      func(ctx context.Context, username string) (entities.UserSt, string, error)
	GetAppliedJobIdsFunc func(ctx context.Context, username string) ([]int64, error)
	ExistsFunc           func(ctx context.Context, username string) (bool, error)
	UpdateFunc           func(ctx context.Context, username string, data map[string]any) (entities.UserSt, error)
	DeleteFunc           func(ctx context.Context, username string) error
	ApplyFunc            func(ctx context.Context, username string, jobId int64) error
}

var _ repo.User = &UserSt{}

func (m *UserSt) Create(ctx context.Context, obj entities.UserSt, pwdHash string) error {
	return m.CreateFunc(ctx, obj, pwdHash)
}

func (m *UserSt) List(ctx context.Context) ([]entities.UserSt, error) {
	return m.ListFunc(ctx)
}

func (m *UserSt) Get(ctx context.Context, username string) (entities.UserSt, error) {
	return m.GetFunc(ctx, username)
}

func (m *UserSt) GetAuthData(ctx context.Context, username string) (entities.UserSt, string, error) {
	return m.GetAuthDataFunc(ctx, username)
}

func (m *UserSt) GetAppliedJobIds(ctx context.Context, username string) ([]int64, error) {
	return m.GetAppliedJobIdsFunc(ctx, username)
}

func (m *UserSt) Exists(ctx context.Context, username string) (bool, error) {
	return m.ExistsFunc(ctx, username)
}

func (m *UserSt) Update(ctx context.Context, username string, data map[string]any) (entities.UserSt, error) {
	return m.UpdateFunc(ctx, username, data)
}

func (m *UserSt) Delete(ctx context.Context, username string) error {
	return m.DeleteFunc(ctx, username)
}

func (m *UserSt) Apply(ctx context.Context, username string, jobId int64) error {
	return m.ApplyFunc(ctx, username, jobId)
}
