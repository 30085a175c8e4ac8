package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/rendau/jobly/internal/adapters/db"
	"github.com/rendau/jobly/internal/domain/core"
	"github.com/rendau/jobly/internal/domain/entities"
	"github.com/rendau/jobly/internal/errs"
	"github.com/rendau/jobly/internal/repo/mock"
)

func TestUserCreateHashesPassword(t *testing.T) {
	var storedHash string

	userRepo := &mock.UserSt{
		ExistsFunc: func(ctx context.Context, username string) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, obj entities.UserSt, pwdHash string) error {
			storedHash = pwdHash
			return nil
		},
	}

	cr := newCore(core.OptionsSt{UserRepo: userRepo})

	_, err := cr.User.Create(context.Background(), entities.UserCreateReqSt{
		Username:  "jdoe",
		Password:  "secret123",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "jdoe@example.com",
	})
	require.NoError(t, err)

	require.NotEqual(t, "secret123", storedHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret123")))
}

func TestUserRegisterIsNeverAdmin(t *testing.T) {
	var created entities.UserSt

	userRepo := &mock.UserSt{
		ExistsFunc: func(ctx context.Context, username string) (bool, error) {
			return false, nil
		},
		CreateFunc: func(ctx context.Context, obj entities.UserSt, pwdHash string) error {
			created = obj
			return nil
		},
	}

	cr := newCore(core.OptionsSt{UserRepo: userRepo})

	_, token, err := cr.User.Register(context.Background(), entities.UserRegisterReqSt{
		Username:  "jdoe",
		Password:  "secret123",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "jdoe@example.com",
	})
	require.NoError(t, err)
	require.False(t, created.IsAdmin)

	ses := cr.Auth.GetSession(token)
	require.True(t, ses.IsAuthenticated())
	require.Equal(t, "jdoe", ses.Username)
	require.False(t, ses.IsAdmin)
}

func TestUserCreateDuplicate(t *testing.T) {
	userRepo := &mock.UserSt{
		ExistsFunc: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}

	cr := newCore(core.OptionsSt{UserRepo: userRepo})

	_, err := cr.User.Create(context.Background(), entities.UserCreateReqSt{
		Username:  "jdoe",
		Password:  "secret123",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "jdoe@example.com",
	})

	var eDesc errs.ErrWithDesc
	require.ErrorAs(t, err, &eDesc)
	require.Equal(t, errs.Duplicate, eDesc.Err)
}

func TestUserUpdateRehashesPassword(t *testing.T) {
	var gotData map[string]any

	userRepo := &mock.UserSt{
		UpdateFunc: func(ctx context.Context, username string, data map[string]any) (entities.UserSt, error) {
			gotData = data
			return entities.UserSt{Username: username}, nil
		},
	}

	cr := newCore(core.OptionsSt{UserRepo: userRepo})

	payload := map[string]any{"password": "newsecret", "firstName": "Johnny"}

	_, err := cr.User.Update(context.Background(), "jdoe", payload)
	require.NoError(t, err)

	require.Equal(t, "Johnny", gotData["firstName"])
	require.NotEqual(t, "newsecret", gotData["password"])
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(gotData["password"].(string)), []byte("newsecret")))

	// caller's payload stays as sent
	require.Equal(t, "newsecret", payload["password"])
}

func TestUserUpdateEmptyPassword(t *testing.T) {
	cr := newCore(core.OptionsSt{UserRepo: &mock.UserSt{}})

	_, err := cr.User.Update(context.Background(), "jdoe", map[string]any{"password": ""})

	var eDesc errs.ErrWithDesc
	require.ErrorAs(t, err, &eDesc)
	require.Equal(t, errs.BadJson, eDesc.Err)
}

func TestUserGetWithAppliedJobs(t *testing.T) {
	userRepo := &mock.UserSt{
		GetFunc: func(ctx context.Context, username string) (entities.UserSt, error) {
			return entities.UserSt{Username: username, FirstName: "John"}, nil
		},
		GetAppliedJobIdsFunc: func(ctx context.Context, username string) ([]int64, error) {
			return []int64{3, 7}, nil
		},
	}

	cr := newCore(core.OptionsSt{UserRepo: userRepo})

	obj, err := cr.User.Get(context.Background(), "jdoe")
	require.NoError(t, err)
	require.Equal(t, []int64{3, 7}, obj.Jobs)
}

func TestUserApplyDuplicate(t *testing.T) {
	userRepo := &mock.UserSt{
		ApplyFunc: func(ctx context.Context, username string, jobId int64) error {
			return errs.Duplicate
		},
	}

	cr := newCore(core.OptionsSt{UserRepo: userRepo})

	err := cr.User.Apply(context.Background(), "jdoe", 7)

	var eDesc errs.ErrWithDesc
	require.ErrorAs(t, err, &eDesc)
	require.Equal(t, errs.Duplicate, eDesc.Err)
	require.Equal(t, "already applied to this job", eDesc.Desc)
}

func TestAuthLogin(t *testing.T) {
	pwdHash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := &mock.UserSt{
		GetAuthDataFunc: func(ctx context.Context, username string) (entities.UserSt, string, error) {
			if username != "jdoe" {
				return entities.UserSt{}, "", db.ErrNoRows
			}
			return entities.UserSt{Username: "jdoe", IsAdmin: true}, string(pwdHash), nil
		},
	}

	cr := newCore(core.OptionsSt{UserRepo: userRepo})
	ctx := context.Background()

	token, err := cr.Auth.Login(ctx, "jdoe", "secret123")
	require.NoError(t, err)

	ses := cr.Auth.GetSession(token)
	require.Equal(t, "jdoe", ses.Username)
	require.True(t, ses.IsAdmin)

	_, err = cr.Auth.Login(ctx, "jdoe", "wrong")
	require.ErrorIs(t, err, errs.WrongAuthCreds)

	_, err = cr.Auth.Login(ctx, "ghost", "secret123")
	require.ErrorIs(t, err, errs.WrongAuthCreds)
}

func TestAuthSessionInvalidToken(t *testing.T) {
	cr := newCore(core.OptionsSt{})

	require.False(t, cr.Auth.GetSession("").IsAuthenticated())
	require.False(t, cr.Auth.GetSession("not-a-token").IsAuthenticated())
}
