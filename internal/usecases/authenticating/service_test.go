package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repositorymocks "github.com/vfg2006/ad-transparency-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-transparency-api/internal/config"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
	"github.com/vfg2006/ad-transparency-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T) (Authenticator, *repositorymocks.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	userRepo := repositorymocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{Auth: config.Auth{Secret: "segredo-de-teste"}}

	return NewService(userRepo, cfg), userRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestCreateUser(t *testing.T) {
	t.Run("dados obrigatórios ausentes", func(t *testing.T) {
		svc, _ := newTestAuthenticator(t)

		_, err := svc.CreateUser(&domain.User{Email: "a@b.com"})

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrMissingRequiredData, authErr.Code)
	})

	t.Run("email já cadastrado", func(t *testing.T) {
		svc, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(&domain.User{ID: 1}, nil)

		_, err := svc.CreateUser(&domain.User{Name: "Ana", Email: "Ana@Empresa.com", PasswordHash: "senha"})

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, apiErrors.ErrUserAlreadyExists, authErr.Code)
	})

	t.Run("cria analista inativo com senha com hash", func(t *testing.T) {
		svc, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.Equal(t, "ana@empresa.com", u.Email)
			assert.Equal(t, domain.RoleAnalyst, u.RoleID)
			assert.False(t, u.Active)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("senha")))

			u.ID = 10
			return u, nil
		})

		created, err := svc.CreateUser(&domain.User{Name: "Ana", Email: " Ana@Empresa.com ", PasswordHash: "senha"})
		require.NoError(t, err)
		assert.Equal(t, 10, created.ID)
	})

	t.Run("preserva role explícito", func(t *testing.T) {
		svc, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(nil, nil)
		userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(u *domain.User) (*domain.User, error) {
			assert.Equal(t, domain.RoleAdmin, u.RoleID)
			return u, nil
		})

		_, err := svc.CreateUser(&domain.User{Name: "Ana", Email: "ana@empresa.com", PasswordHash: "senha", RoleID: domain.RoleAdmin})
		require.NoError(t, err)
	})
}

func TestLoginUser(t *testing.T) {
	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           5,
			Name:         "Ana",
			Email:        "ana@empresa.com",
			PasswordHash: hashPassword(t, "senha-correta"),
			Active:       true,
			RoleID:       domain.RoleAnalyst,
		}
	}

	t.Run("login com sucesso emite token validável", func(t *testing.T) {
		svc, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail("ana@empresa.com").Return(activeUser(t), nil)

		token, err := svc.LoginUser("Ana@Empresa.com", "senha-correta")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, 5, claims.UserID)
		assert.Equal(t, "ana@empresa.com", claims.UserEmail)
		assert.Equal(t, domain.RoleAnalyst, claims.UserRoleID)
		assert.True(t, claims.UserActive)
	})

	t.Run("usuário não encontrado", func(t *testing.T) {
		svc, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(nil, nil)

		_, err := svc.LoginUser("nao@existe.com", "senha")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("conta desativada", func(t *testing.T) {
		svc, userRepo := newTestAuthenticator(t)

		user := activeUser(t)
		user.Active = false
		userRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(user, nil)

		_, err := svc.LoginUser("ana@empresa.com", "senha-correta")

		var authErr *AuthError
		require.ErrorAs(t, err, &authErr)
		assert.ErrorIs(t, err, ErrUserDisabled)
		assert.Equal(t, 5, authErr.UserID)
	})

	t.Run("senha incorreta", func(t *testing.T) {
		svc, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(activeUser(t), nil)

		_, err := svc.LoginUser("ana@empresa.com", "senha-errada")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("campos vazios", func(t *testing.T) {
		svc, _ := newTestAuthenticator(t)

		_, err := svc.LoginUser("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidateToken_InvalidSignature(t *testing.T) {
	svc, userRepo := newTestAuthenticator(t)

	userRepo.EXPECT().GetUserByEmail(gomock.Any()).Return(&domain.User{
		ID:           1,
		Email:        "ana@empresa.com",
		PasswordHash: hashPassword(t, "senha"),
		Active:       true,
	}, nil)

	token, err := svc.LoginUser("ana@empresa.com", "senha")
	require.NoError(t, err)

	other := NewService(nil, &config.Config{Auth: config.Auth{Secret: "outro-segredo"}})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestGetUserProfile(t *testing.T) {
	t.Run("limpa o hash de senha", func(t *testing.T) {
		svc, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByID(5).Return(&domain.User{ID: 5, PasswordHash: "hash"}, nil)

		user, err := svc.GetUserProfile(5)
		require.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("usuário inexistente", func(t *testing.T) {
		svc, userRepo := newTestAuthenticator(t)

		userRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		_, err := svc.GetUserProfile(99)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
