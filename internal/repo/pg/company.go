package pg

import (
	"context"
	"strconv"

	"github.com/rendau/jobly/internal/adapters/db"
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/repo"
	"github.com/rendau/jobly/internal/sqlf"
)

const companyCols = `handle, name, description, num_employees, logo_url`

var companyColMap = map[string]string{
	"numEmployees": "num_employees",
	"logoUrl":      "logo_url",
}

type companySt struct {
	db db.RDB
}

var _ repo.Company = &companySt{}

func NewCompany(db db.RDB) *companySt {
	return &companySt{
		db: db,
	}
}

func (r *companySt) Create(ctx context.Context, obj entities.CompanySt) error {
	err := r.db.DbExecM(ctx, `
		insert into companies (handle, name, description, num_employees, logo_url)
		values (${handle}, ${name}, ${description}, ${num_employees}, ${logo_url})
	`, map[string]any{
		"handle":        obj.Handle,
		"name":          obj.Name,
		"description":   obj.Description,
		"num_employees": obj.NumEmployees,
		"logo_url":      obj.LogoUrl,
	})

	return hConstraintErr(err)
}

func (r *companySt) List(ctx context.Context, pars entities.CompanyListParsSt) ([]entities.CompanySt, error) {
	where := companyWhere(pars)

	rows, err := r.db.DbQuery(ctx, `
		select `+companyCols+`
		from companies
		`+where.Fragment+`
		order by name
	`, where.Values...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]entities.CompanySt, 0)

	for rows.Next() {
		obj := entities.CompanySt{}

		err = rows.Scan(&obj.Handle, &obj.Name, &obj.Description, &obj.NumEmployees, &obj.LogoUrl)
		if err != nil {
			return nil, err
		}

		result = append(result, obj)
	}

	return result, rows.Err()
}

func (r *companySt) Get(ctx context.Context, handle string) (entities.CompanySt, error) {
	obj := entities.CompanySt{}

	err := r.db.DbQueryRow(ctx, `
		select `+companyCols+`
		from companies
		where handle = $1
	`, handle).Scan(&obj.Handle, &obj.Name, &obj.Description, &obj.NumEmployees, &obj.LogoUrl)

	return obj, err
}

func (r *companySt) GetJobs(ctx context.Context, handle string) ([]entities.JobSt, error) {
	rows, err := r.db.DbQuery(ctx, `
		select `+jobCols+`
		from jobs
		where company_handle = $1
		order by id
	`, handle)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanJobs(rows)
}

func (r *companySt) Exists(ctx context.Context, handle string) (bool, error) {
	var exists bool

	err := r.db.DbQueryRow(ctx, `
		select exists(select 1 from companies where handle = $1)
	`, handle).Scan(&exists)

	return exists, err
}

func (r *companySt) Update(ctx context.Context, handle string, data map[string]any) (entities.CompanySt, error) {
	set, err := sqlf.Set(sqlf.Fields(data, entities.CompanyUpdateFields), companyColMap)
	if err != nil {
		return entities.CompanySt{}, err
	}

	args := append(set.Values, handle)

	obj := entities.CompanySt{}

	err = r.db.DbQueryRow(ctx, `
		update companies
		set `+set.Fragment+`
		where handle = $`+strconv.Itoa(len(args))+`
		returning `+companyCols+`
	`, args...).Scan(&obj.Handle, &obj.Name, &obj.Description, &obj.NumEmployees, &obj.LogoUrl)

	return obj, hConstraintErr(err)
}

func (r *companySt) Delete(ctx context.Context, handle string) error {
	var deleted string

	return r.db.DbQueryRow(ctx, `
		delete from companies
		where handle = $1
		returning handle
	`, handle).Scan(&deleted)
}
