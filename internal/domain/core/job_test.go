package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rendau/jobly/internal/adapters/cache/mem"
	"github.com/rendau/jobly/internal/adapters/db"
	"github.com/rendau/jobly/internal/domain/core"
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/errs"
	"github.com/rendau/jobly/internal/repo/mock"
)

func TestJobUpdateUnknownField(t *testing.T) {
	jobRepo := &mock.JobSt{
		UpdateFunc: func(ctx context.Context, id int64, data map[string]any) (entities.JobSt, error) {
			t.Fatal("repo must not be reached for an unknown field")
			return entities.JobSt{}, nil
		},
	}

	cr := newCore(core.OptionsSt{JobRepo: jobRepo})

	_, err := cr.Job.Update(context.Background(), 1, map[string]any{"companyHandle": "other"})

	var eDesc errs.ErrWithDesc
	require.ErrorAs(t, err, &eDesc)
	require.Equal(t, errs.BadJson, eDesc.Err)
}

func TestJobGetNotFound(t *testing.T) {
	jobRepo := &mock.JobSt{
		GetFunc: func(ctx context.Context, id int64) (entities.JobSt, error) {
			return entities.JobSt{}, db.ErrNoRows
		},
	}

	cr := newCore(core.OptionsSt{JobRepo: jobRepo})

	_, err := cr.Job.Get(context.Background(), 404)
	require.ErrorIs(t, err, errs.ObjectNotFound)
}

func TestJobMutationsInvalidateCompanyCache(t *testing.T) {
	cacheObj := mem.New()

	jobRepo := &mock.JobSt{
		GetFunc: func(ctx context.Context, id int64) (entities.JobSt, error) {
			return entities.JobSt{Id: id, Title: "dev", CompanyHandle: "acme"}, nil
		},
		UpdateFunc: func(ctx context.Context, id int64, data map[string]any) (entities.JobSt, error) {
			return entities.JobSt{Id: id, Title: "dev", CompanyHandle: "acme"}, nil
		},
		DeleteFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}

	cr := newCore(core.OptionsSt{JobRepo: jobRepo, Cache: cacheObj})
	ctx := context.Background()

	seed := func() {
		err := cacheObj.Set("company:acme", []byte(`{}`), 0)
		require.NoError(t, err)
	}
	cached := func() bool {
		_, ok, err := cacheObj.Get("company:acme")
		require.NoError(t, err)
		return ok
	}

	seed()
	_, err := cr.Job.Update(ctx, 1, map[string]any{"title": "senior dev"})
	require.NoError(t, err)
	require.False(t, cached())

	seed()
	err = cr.Job.Delete(ctx, 1)
	require.NoError(t, err)
	require.False(t, cached())
}
