package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
)

func TestAdminSignupAndLogin(t *testing.T) {
	cfg := testConfig()
	svc := NewAdminService(dbtest.Open(t), cfg)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, &dto.AdminSignupRequest{
		Email: "root@example.com", Password: "admin-pass", Role: "superadmin",
	}))

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "root@example.com", Password: "admin-pass"})
	require.NoError(t, err)
	assert.Equal(t, "superadmin", resp.Role)
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "root@example.com", claims["email"])
	assert.Equal(t, "superadmin", claims["role"])
	assert.NotEmpty(t, claims["jti"])
	assert.NotEmpty(t, claims["sub"])
}

func TestAdminSignupDuplicate(t *testing.T) {
	svc := NewAdminService(dbtest.Open(t), testConfig())
	ctx := context.Background()
	req := dto.AdminSignupRequest{Email: "root@example.com", Password: "admin-pass", Role: "admin"}

	first := req
	require.NoError(t, svc.Signup(ctx, &first))
	second := req
	err := svc.Signup(ctx, &second)
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "Admin already exists.", err.Error())
}

func TestAdminSignupRequiresFields(t *testing.T) {
	svc := NewAdminService(dbtest.Open(t), testConfig())

	err := svc.Signup(context.Background(), &dto.AdminSignupRequest{Email: "root@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAdminLoginIndistinguishable(t *testing.T) {
	svc := NewAdminService(dbtest.Open(t), testConfig())
	ctx := context.Background()
	require.NoError(t, svc.Signup(ctx, &dto.AdminSignupRequest{
		Email: "root@example.com", Password: "admin-pass", Role: "admin",
	}))

	_, unknownErr := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "admin-pass"})
	_, wrongErr := svc.Login(ctx, &dto.LoginRequest{Email: "root@example.com", Password: "nope"})
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAdminListOmitsPassword(t *testing.T) {
	svc := NewAdminService(dbtest.Open(t), testConfig())
	ctx := context.Background()

	admins, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, admins)
	assert.Empty(t, admins)

	require.NoError(t, svc.Signup(ctx, &dto.AdminSignupRequest{
		Email: "root@example.com", Password: "admin-pass", Role: "admin",
	}))
	admins, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, dto.AdminResponse{ID: admins[0].ID, Email: "root@example.com", Role: "admin"}, admins[0])
}
