package pg

import (
	"context"
	"strconv"

	"github.com/rendau/jobly/internal/adapters/db"
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/repo"
	"github.com/rendau/jobly/internal/sqlf"
)

const jobCols = `id, title, salary, equity, company_handle`

// Job columns share their external names, no translation needed.
var jobColMap = map[string]string{}

type jobSt struct {
	db db.RDB
}

var _ repo.Job = &jobSt{}

func NewJob(db db.RDB) *jobSt {
	return &jobSt{
		db: db,
	}
}

func (r *jobSt) Create(ctx context.Context, title string, salary *int64, equity *string, companyHandle string) (entities.JobSt, error) {
	obj := entities.JobSt{}

	err := r.db.DbQueryRowM(ctx, `
		insert into jobs (title, salary, equity, company_handle)
		values (${title}, ${salary}, ${equity}, ${company_handle})
		returning `+jobCols+`
	`, map[string]any{
		"title":          title,
		"salary":         salary,
		"equity":         equity,
		"company_handle": companyHandle,
	}).Scan(&obj.Id, &obj.Title, &obj.Salary, &obj.Equity, &obj.CompanyHandle)

	return obj, hConstraintErr(err)
}

func (r *jobSt) List(ctx context.Context, pars entities.JobListParsSt) ([]entities.JobSt, error) {
	where := jobWhere(pars)

	rows, err := r.db.DbQuery(ctx, `
		select `+jobCols+`
		from jobs
		`+where.Fragment+`
		order by id
	`, where.Values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *jobSt) Get(ctx context.Context, id int64) (entities.JobSt, error) {
	obj := entities.JobSt{}

	err := r.db.DbQueryRow(ctx, `
		select `+jobCols+`
		from jobs
		where id = $1
	`, id).Scan(&obj.Id, &obj.Title, &obj.Salary, &obj.Equity, &obj.CompanyHandle)

	return obj, err
}

func (r *jobSt) Update(ctx context.Context, id int64, data map[string]any) (entities.JobSt, error) {
	set, err := sqlf.Set(sqlf.Fields(data, entities.JobUpdateFields), jobColMap)
	if err != nil {
		return entities.JobSt{}, err
	}

	args := append(set.Values, id)

	obj := entities.JobSt{}

	err = r.db.DbQueryRow(ctx, `
		update jobs
		set `+set.Fragment+`
		where id = $`+strconv.Itoa(len(args))+`
		returning `+jobCols+`
	`, args...).Scan(&obj.Id, &obj.Title, &obj.Salary, &obj.Equity, &obj.CompanyHandle)

	return obj, err
}

func (r *jobSt) Delete(ctx context.Context, id int64) error {
	var deleted int64

	return r.db.DbQueryRow(ctx, `
		delete from jobs
		where id = $1
		returning id
	`, id).Scan(&deleted)
}

func scanJobs(rows db.RDBRows) ([]entities.JobSt, error) {
	result := make([]entities.JobSt, 0)

	for rows.Next() {
		obj := entities.JobSt{}

		err := rows.Scan(&obj.Id, &obj.Title, &obj.Salary, &obj.Equity, &obj.CompanyHandle)
		if err != nil {
			return nil, err
		}

		result = append(result, obj)
	}

	return result, rows.Err()
}
