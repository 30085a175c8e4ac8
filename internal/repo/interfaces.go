package repo

import (
	"context"

	"github.com/rendau/jobly/internal/domain/entities"
)

type Company interface {
	Create(ctx context.Context, obj entities.CompanySt) error
	List(ctx context.Context, pars entities.CompanyListParsSt) ([]entities.CompanySt, error)
	Get(ctx context.Context, handle string) (entities.CompanySt, error)
	GetJobs(ctx context.Context, handle string) ([]entities.JobSt, error)
	Exists(ctx context.Context, handle string) (bool, error)
	Update(ctx context.Context, handle string, data map[string]any) (entities.CompanySt, error)
	Delete(ctx context.Context, handle string) error
}

type Job interface {
	Create(ctx context.Context, title string, salary *int64, equity *string, companyHandle string) (entities.JobSt, error)
	List(ctx context.Context, pars entities.JobListParsSt) ([]entities.JobSt, error)
	Get(ctx context.Context, id int64) (entities.JobSt, error)
	Update(ctx context.Context, id int64, data map[string]any) (entities.JobSt, error)
	Delete(ctx context.Context, id int64) error
}

type User interface {
	Create(ctx context.Context, obj entities.UserSt, pwdHash string) error
	List(ctx context.Context) ([]entities.UserSt, error)
	Get(ctx context.Context, username string) (entities.UserSt, error)
	GetAuthData(ctx context.Context, username string) (entities.UserSt, string, error)
	GetAppliedJobIds(ctx context.Context, username string) ([]int64, error)
	Exists(ctx context.Context, username string) (bool, error)
	Update(ctx context.Context, username string, data map[string]any) (entities.UserSt, error)
	Delete(ctx context.Context, username string) error
	Apply(ctx context.Context, username string, jobId int64) error
}
