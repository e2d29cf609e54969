package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alqaim/estates-api/internal/domain/entity"
	"github.com/alqaim/estates-api/pkg/apperror"
	"github.com/alqaim/estates-api/pkg/utils"
)

// fakeUserRepo serves a fixed set of users from memory.
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func newAuthService() *AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(&fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}, jwtManager)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService()

	user, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Admin",
		Email:    "admin@alqaim.com",
		Password: "Secure@123",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "Secure@123", user.Password)

	result, err := svc.Login(context.Background(), &LoginInput{
		Email:    "admin@alqaim.com",
		Password: "Secure@123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	refreshed, err := svc.RefreshToken(context.Background(), result.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshed.User.ID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService()

	input := &RegisterInput{Name: "Admin", Email: "admin@alqaim.com", Password: "Secure@123"}
	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, http.StatusConflict, apperror.GetAppError(err).Code)
}

func TestRegisterPasswordPolicy(t *testing.T) {
	svc := newAuthService()

	tests := []struct {
		name     string
		password string
	}{
		{"too short", "Ab@1"},
		{"no capital", "secure@123"},
		{"no digit", "Secure@abc"},
		{"no special", "Secure123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &RegisterInput{
				Name:     "Admin",
				Email:    "admin@alqaim.com",
				Password: tt.password,
			})
			require.Error(t, err)
			assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)
		})
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthService()

	_, err := svc.Register(context.Background(), &RegisterInput{
		Name:     "Admin",
		Email:    "admin@alqaim.com",
		Password: "Secure@123",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "admin@alqaim.com",
		Password: "Wrong@123",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@alqaim.com",
		Password: "Secure@123",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}
