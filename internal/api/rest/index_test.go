package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rendau/jobly/internal/adapters/cache/mem"
	"github.com/rendau/jobly/internal/adapters/db"
	"github.com/rendau/jobly/internal/adapters/jwt/jwts"
	"github.com/rendau/jobly/internal/adapters/logger/zap"
	"github.com/rendau/jobly/internal/api/rest"
	"github.com/rendau/jobly/internal/domain/core"
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/repo/mock"
	"github.com/rendau/jobly/internal/types"
)

type testApp struct {
	router     http.Handler
	adminToken string
	userToken  string
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	companyRepo := &mock.CompanySt{
		ListFunc: func(ctx context.Context, pars entities.CompanyListParsSt) ([]entities.CompanySt, error) {
			return []entities.CompanySt{}, nil
		},
		GetFunc: func(ctx context.Context, handle string) (entities.CompanySt, error) {
			if handle != "acme" {
				return entities.CompanySt{}, db.ErrNoRows
			}
			return entities.CompanySt{Handle: "acme", Name: "Acme Inc"}, nil
		},
		GetJobsFunc: func(ctx context.Context, handle string) ([]entities.JobSt, error) {
			return []entities.JobSt{}, nil
		},
		ExistsFunc: func(ctx context.Context, handle string) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, obj entities.CompanySt) error {
			return nil
		},
		UpdateFunc: func(ctx context.Context, handle string, data map[string]any) (entities.CompanySt, error) {
			return entities.CompanySt{Handle: handle}, nil
		},
		DeleteFunc: func(ctx context.Context, handle string) error {
			return nil
		},
	}

	jobRepo := &mock.JobSt{
		ListFunc: func(ctx context.Context, pars entities.JobListParsSt) ([]entities.JobSt, error) {
			return []entities.JobSt{}, nil
		},
		GetFunc: func(ctx context.Context, id int64) (entities.JobSt, error) {
			return entities.JobSt{Id: id, Title: "dev", CompanyHandle: "acme"}, nil
		},
		UpdateFunc: func(ctx context.Context, id int64, data map[string]any) (entities.JobSt, error) {
			return entities.JobSt{Id: id, Title: "dev", CompanyHandle: "acme"}, nil
		},
	}

	userRepo := &mock.UserSt{
		ListFunc: func(ctx context.Context) ([]entities.UserSt, error) {
			return []entities.UserSt{}, nil
		},
		GetFunc: func(ctx context.Context, username string) (entities.UserSt, error) {
			return entities.UserSt{Username: username}, nil
		},
		GetAppliedJobIdsFunc: func(ctx context.Context, username string) ([]int64, error) {
			return []int64{}, nil
		},
		GetAuthDataFunc: func(ctx context.Context, username string) (entities.UserSt, string, error) {
			return entities.UserSt{}, "", db.ErrNoRows
		},
		ApplyFunc: func(ctx context.Context, username string, jobId int64) error {
			return nil
		},
	}

	lg := zap.New("error", false)
	jwtObj := jwts.New("test-secret")

	cr := core.New(core.OptionsSt{
		Lg:           lg,
		Cache:        mem.New(),
		Jwt:          jwtObj,
		JwtValidator: jwtObj,

		CompanyRepo: companyRepo,
		JobRepo:     jobRepo,
		UserRepo:    userRepo,
	})

	adminToken, err := cr.Auth.CreateToken(entities.UserSt{Username: "admin", IsAdmin: true})
	require.NoError(t, err)

	userToken, err := cr.Auth.CreateToken(entities.UserSt{Username: "jdoe"})
	require.NoError(t, err)

	return &testApp{
		router:     rest.Router(lg, cr, false),
		adminToken: adminToken,
		userToken:  userToken,
	}
}

func (a *testApp) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func TestAuthorizationMatrix(t *testing.T) {
	app := newTestApp(t)

	companyBody := `{"handle":"new-co","name":"New Co"}`

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		body       string
		wantStatus int
	}{
		{"healthcheck open", http.MethodGet, "/healthcheck", "", "", http.StatusOK},

		{"company list open", http.MethodGet, "/companies", "", "", http.StatusOK},
		{"company get open", http.MethodGet, "/companies/acme", "", "", http.StatusOK},
		{"company create anonymous", http.MethodPost, "/companies", "", companyBody, http.StatusUnauthorized},
		{"company create non-admin", http.MethodPost, "/companies", "user", companyBody, http.StatusForbidden},
		{"company create admin", http.MethodPost, "/companies", "admin", companyBody, http.StatusCreated},
		{"company delete non-admin", http.MethodDelete, "/companies/acme", "user", "", http.StatusForbidden},

		{"job list open", http.MethodGet, "/jobs", "", "", http.StatusOK},
		{"job update anonymous", http.MethodPatch, "/jobs/1", "", `{"title":"x"}`, http.StatusUnauthorized},
		{"job update non-admin", http.MethodPatch, "/jobs/1", "user", `{"title":"x"}`, http.StatusForbidden},
		{"job update admin", http.MethodPatch, "/jobs/1", "admin", `{"title":"x"}`, http.StatusOK},

		{"user list anonymous", http.MethodGet, "/users", "", "", http.StatusUnauthorized},
		{"user list non-admin", http.MethodGet, "/users", "user", "", http.StatusForbidden},
		{"user list admin", http.MethodGet, "/users", "admin", "", http.StatusOK},
		{"user get self", http.MethodGet, "/users/jdoe", "user", "", http.StatusOK},
		{"user get other", http.MethodGet, "/users/someone", "user", "", http.StatusForbidden},
		{"user get by admin", http.MethodGet, "/users/someone", "admin", "", http.StatusOK},
		{"apply self", http.MethodPost, "/users/jdoe/jobs/7", "user", "", http.StatusCreated},
		{"apply for other", http.MethodPost, "/users/someone/jobs/7", "user", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := ""
			switch tt.token {
			case "admin":
				token = app.adminToken
			case "user":
				token = app.userToken
			}

			rec := app.do(tt.method, tt.path, token, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, "body: %s", rec.Body.String())
		})
	}
}

func TestErrorMapping(t *testing.T) {
	app := newTestApp(t)

	decodeErr := func(rec *httptest.ResponseRecorder) types.ErrRep {
		rep := types.ErrRep{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
		return rep
	}

	t.Run("unknown company is 404", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/companies/nope", "", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Equal(t, "object_not_found", decodeErr(rec).ErrorCode)
	})

	t.Run("inverted employee range is 400", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/companies?minEmployees=10&maxEmployees=2", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "min_greater_than_max", decodeErr(rec).ErrorCode)
	})

	t.Run("malformed json is 400", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/companies", app.adminToken, `{"handle":`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "bad_json", decodeErr(rec).ErrorCode)
	})

	t.Run("missing required field is 400", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/companies", app.adminToken, `{"name":"No Handle"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "bad_json", decodeErr(rec).ErrorCode)
	})

	t.Run("unknown update field is 400", func(t *testing.T) {
		rec := app.do(http.MethodPatch, "/companies/acme", app.adminToken, `{"handle":"hacked"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		rep := decodeErr(rec)
		require.Equal(t, "bad_json", rep.ErrorCode)
		require.Contains(t, rep.Desc, "unknown field")
	})

	t.Run("non-numeric job id is 400", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/jobs/abc", "", "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "bad_query_params", decodeErr(rec).ErrorCode)
	})

	t.Run("wrong credentials is 401", func(t *testing.T) {
		rec := app.do(http.MethodPost, "/auth/token", "", `{"username":"ghost","password":"secret123"}`)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "wrong_auth_credentials", decodeErr(rec).ErrorCode)
	})

	t.Run("garbage token acts as anonymous", func(t *testing.T) {
		rec := app.do(http.MethodGet, "/users", "garbage-token", "")
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "not_authorized", decodeErr(rec).ErrorCode)
	})
}
