package pg

import (
	"context"
	"strconv"

	"github.com/rendau/jobly/internal/adapters/db"
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/repo"
	"github.com/rendau/jobly/internal/sqlf"
)

const userCols = `username, first_name, last_name, email, is_admin`

var userColMap = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
}

type userSt struct {
	db db.RDB
}

var _ repo.User = &userSt{}

func NewUser(db db.RDB) *userSt {
	return &userSt{
		db: db,
	}
}

func (r *userSt) Create(ctx context.Context, obj entities.UserSt, pwdHash string) error {
	err := r.db.DbExecM(ctx, `
		insert into users (username, password, first_name, last_name, email, is_admin)
		values (${username}, ${password}, ${first_name}, ${last_name}, ${email}, ${is_admin})
	`, map[string]any{
		"username":   obj.Username,
		"password":   pwdHash,
		"first_name": obj.FirstName,
		"last_name":  obj.LastName,
		"email":      obj.Email,
		"is_admin":   obj.IsAdmin,
	})

	return hConstraintErr(err)
}

func (r *userSt) List(ctx context.Context) ([]entities.UserSt, error) {
	rows, err := r.db.DbQuery(ctx, `
		select `+userCols+`
		from users
		order by username
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]entities.UserSt, 0)

	for rows.Next() {
		obj := entities.UserSt{}

		err = rows.Scan(&obj.Username, &obj.FirstName, &obj.LastName, &obj.Email, &obj.IsAdmin)
		if err != nil {
			return nil, err
		}

		result = append(result, obj)
	}

	return result, rows.Err()
}

func (r *userSt) Get(ctx context.Context, username string) (entities.UserSt, error) {
	obj := entities.UserSt{}

	err := r.db.DbQueryRow(ctx, `
		select `+userCols+`
		from users
		where username = $1
	`, username).Scan(&obj.Username, &obj.FirstName, &obj.LastName, &obj.Email, &obj.IsAdmin)

	return obj, err
}

func (r *userSt) GetAuthData(ctx context.Context, username string) (entities.UserSt, string, error) {
	obj := entities.UserSt{}
	var pwdHash string

	err := r.db.DbQueryRow(ctx, `
		select `+userCols+`, password
		from users
		where username = $1
	`, username).Scan(&obj.Username, &obj.FirstName, &obj.LastName, &obj.Email, &obj.IsAdmin, &pwdHash)

	return obj, pwdHash, err
}

func (r *userSt) GetAppliedJobIds(ctx context.Context, username string) ([]int64, error) {
	rows, err := r.db.DbQuery(ctx, `
		select job_id
		from applications
		where username = $1
		order by job_id
	`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]int64, 0)

	for rows.Next() {
		var jobId int64

		err = rows.Scan(&jobId)
		if err != nil {
			return nil, err
		}

		result = append(result, jobId)
	}

	return result, rows.Err()
}

func (r *userSt) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool

	err := r.db.DbQueryRow(ctx, `
		select exists(select 1 from users where username = $1)
	`, username).Scan(&exists)

	return exists, err
}

func (r *userSt) Update(ctx context.Context, username string, data map[string]any) (entities.UserSt, error) {
	set, err := sqlf.Set(sqlf.Fields(data, entities.UserUpdateFields), userColMap)
	if err != nil {
		return entities.UserSt{}, err
	}

	args := append(set.Values, username)

	obj := entities.UserSt{}

	err = r.db.DbQueryRow(ctx, `
		update users
		set `+set.Fragment+`
		where username = $`+strconv.Itoa(len(args))+`
		returning `+userCols+`
	`, args...).Scan(&obj.Username, &obj.FirstName, &obj.LastName, &obj.Email, &obj.IsAdmin)

	return obj, hConstraintErr(err)
}

func (r *userSt) Delete(ctx context.Context, username string) error {
	var deleted string

	return r.db.DbQueryRow(ctx, `
		delete from users
		where username = $1
		returning username
	`, username).Scan(&deleted)
}

func (r *userSt) Apply(ctx context.Context, username string, jobId int64) error {
	err := r.db.DbExecM(ctx, `
		insert into applications (username, job_id)
		values (${username}, ${job_id})
	`, map[string]any{
		"username": username,
		"job_id":   jobId,
	})

	return hConstraintErr(err)
}
