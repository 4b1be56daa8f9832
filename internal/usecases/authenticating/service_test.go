package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	repomocks "github.com/lddanielsoares2-wq/dashboard-wehub/infrastructure/repository/mocks"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/config"
	"github.com/lddanielsoares2-wq/dashboard-wehub/internal/domain"
	"github.com/lddanielsoares2-wq/dashboard-wehub/pkg/apiErrors"
)

const testSecretKey = "test-secret-key"

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)

	return string(hash)
}

func activeUser(t *testing.T, password string) *domain.User {
	return &domain.User{
		ID:           1,
		Name:         "Daniel",
		Lastname:     "Soares",
		Email:        "daniel@wehub.pt",
		PasswordHash: hashPassword(t, password),
		Active:       true,
		RoleID:       2,
	}
}

func TestHandleEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "daniel@wehub.pt", expected: "daniel@wehub.pt"},
		{input: " Daniel@WeHub.PT ", expected: "daniel@wehub.pt"},
		{input: "daniel @ wehub.pt", expected: "daniel@wehub.pt"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, handleEmail(tt.input))
	}
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{SecretKey: testSecretKey}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(t *testing.T, repo *repomocks.MockUserRepository)
		validate func(t *testing.T, service *Service, token string, err error)
	}{
		{
			name:     "Deve autenticar e retornar um token JWT válido",
			email:    " Daniel@WeHub.PT ",
			password: "Senha@123",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				// O email é normalizado antes da consulta
				repo.EXPECT().GetUserByEmail("daniel@wehub.pt").Return(activeUser(t, "Senha@123"), nil)
			},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, 1, claims.UserID)
				assert.Equal(t, "Daniel", claims.UserName)
				assert.Equal(t, "daniel@wehub.pt", claims.UserEmail)
				assert.True(t, claims.UserActive)
				assert.Equal(t, 2, claims.UserRoleID)
			},
		},
		{
			name:     "Deve retornar erro quando email ou senha não são informados",
			email:    "",
			password: "Senha@123",
			setup:    func(t *testing.T, repo *repomocks.MockUserRepository) {},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrMissingRequiredData)

				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, authErr.Code)
			},
		},
		{
			name:     "Deve retornar erro quando o usuário não existe",
			email:    "ninguem@wehub.pt",
			password: "Senha@123",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("ninguem@wehub.pt").Return(nil, nil)
			},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserNotFound)

				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrUserNotFound, authErr.Code)
			},
		},
		{
			name:     "Deve retornar erro quando a conta está desativada",
			email:    "daniel@wehub.pt",
			password: "Senha@123",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				user := activeUser(t, "Senha@123")
				user.Active = false
				repo.EXPECT().GetUserByEmail("daniel@wehub.pt").Return(user, nil)
			},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserDisabled)

				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrUserDisabled, authErr.Code)
				assert.Equal(t, 1, authErr.UserID)
			},
		},
		{
			name:     "Deve retornar erro quando a senha está incorreta",
			email:    "daniel@wehub.pt",
			password: "SenhaErrada@123",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("daniel@wehub.pt").Return(activeUser(t, "Senha@123"), nil)
			},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)

				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
			},
		},
		{
			name:     "Deve retornar erro de banco quando a consulta falha",
			email:    "daniel@wehub.pt",
			password: "Senha@123",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail("daniel@wehub.pt").Return(nil, assert.AnError)
			},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, assert.AnError)

				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, authErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := repomocks.NewMockUserRepository(ctrl)
			tt.setup(t, mockRepo)

			service := &Service{userRepo: mockRepo, cfg: cfg}

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, service, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := &config.Config{SecretKey: testSecretKey}
	service := &Service{cfg: cfg}

	signToken := func(t *testing.T, secret string, expiresAt time.Time) string {
		t.Helper()

		claims := domain.Claims{
			UserID:    1,
			UserEmail: "daniel@wehub.pt",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		assert.NoError(t, err)

		return token
	}

	t.Run("Deve aceitar um token válido e devolver as claims", func(t *testing.T) {
		token := signToken(t, testSecretKey, time.Now().Add(time.Hour))

		claims, err := service.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, 1, claims.UserID)
		assert.Equal(t, "daniel@wehub.pt", claims.UserEmail)
	})

	t.Run("Deve rejeitar um token assinado com outra chave", func(t *testing.T) {
		token := signToken(t, "outra-chave", time.Now().Add(time.Hour))

		claims, err := service.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Deve rejeitar um token expirado", func(t *testing.T) {
		token := signToken(t, testSecretKey, time.Now().Add(-time.Hour))

		claims, err := service.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Deve rejeitar um token sem assinatura", func(t *testing.T) {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{UserID: 1}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		assert.NoError(t, err)

		claims, err := service.ValidateToken(unsigned)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Deve rejeitar um texto que não é token", func(t *testing.T) {
		claims, err := service.ValidateToken("isto-nao-e-um-token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("Deve retornar o perfil sem o hash da senha", func(t *testing.T) {
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().GetUserByID(1).Return(activeUser(t, "Senha@123"), nil)

		service := &Service{userRepo: mockRepo}

		user, err := service.GetUserProfile(1)
		assert.NoError(t, err)
		assert.Equal(t, "Daniel", user.Name)
		assert.Equal(t, "daniel@wehub.pt", user.Email)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Deve propagar o erro do repositório", func(t *testing.T) {
		mockRepo := repomocks.NewMockUserRepository(ctrl)
		mockRepo.EXPECT().GetUserByID(1).Return(nil, assert.AnError)

		service := &Service{userRepo: mockRepo}

		user, err := service.GetUserProfile(1)
		assert.ErrorIs(t, err, assert.AnError)
		assert.Nil(t, user)
	})
}

func TestService_ValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	tests := []struct {
		name     string
		password string
		wantErr  string
	}{
		{
			name:     "Deve aceitar uma senha com todos os requisitos",
			password: "Senha@123",
		},
		{
			name:     "Deve rejeitar uma senha curta",
			password: "S@1a",
			wantErr:  "pelo menos 8 caracteres",
		},
		{
			name:     "Deve rejeitar uma senha sem letra maiúscula",
			password: "senha@123",
			wantErr:  "letra maiúscula",
		},
		{
			name:     "Deve rejeitar uma senha sem letra minúscula",
			password: "SENHA@123",
			wantErr:  "letra minúscula",
		},
		{
			name:     "Deve rejeitar uma senha sem número",
			password: "Senha@abc",
			wantErr:  "pelo menos um número",
		},
		{
			name:     "Deve rejeitar uma senha sem caractere especial",
			password: "Senha1234",
			wantErr:  "caractere especial",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := service.ValidatePasswordStrength(tt.password)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name            string
		currentPassword string
		newPassword     string
		setup           func(t *testing.T, repo *repomocks.MockUserRepository)
		validate        func(t *testing.T, err error)
	}{
		{
			name:            "Deve alterar a senha quando a atual confere e a nova é forte",
			currentPassword: "Atual@123",
			newPassword:     "NovaSenha@456",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(1).Return(activeUser(t, "Atual@123"), nil)
				repo.EXPECT().UpdateUser(gomock.Any()).DoAndReturn(func(user *domain.User) error {
					// A senha persistida precisa ser o hash da nova senha
					assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("NovaSenha@456")))
					return nil
				})
			},
			validate: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name:            "Deve retornar erro quando a senha atual não confere",
			currentPassword: "Errada@123",
			newPassword:     "NovaSenha@456",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(1).Return(activeUser(t, "Atual@123"), nil)
			},
			validate: func(t *testing.T, err error) {
				assert.EqualError(t, err, "senha atual incorreta")
			},
		},
		{
			name:            "Deve rejeitar uma senha nova fraca",
			currentPassword: "Atual@123",
			newPassword:     "fraca",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(1).Return(activeUser(t, "Atual@123"), nil)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrWeakPassword)

				var authErr *AuthError
				assert.ErrorAs(t, err, &authErr)
				assert.Equal(t, apiErrors.ErrInvalidFormat, authErr.Code)
				assert.Equal(t, 1, authErr.UserID)
			},
		},
		{
			name:            "Deve retornar erro quando o usuário não existe",
			currentPassword: "Atual@123",
			newPassword:     "NovaSenha@456",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(1).Return(nil, nil)
			},
			validate: func(t *testing.T, err error) {
				assert.EqualError(t, err, "usuário não encontrado")
			},
		},
		{
			name:            "Deve propagar o erro quando a atualização falha no banco",
			currentPassword: "Atual@123",
			newPassword:     "NovaSenha@456",
			setup: func(t *testing.T, repo *repomocks.MockUserRepository) {
				repo.EXPECT().GetUserByID(1).Return(activeUser(t, "Atual@123"), nil)
				repo.EXPECT().UpdateUser(gomock.Any()).Return(assert.AnError)
			},
			validate: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := repomocks.NewMockUserRepository(ctrl)
			tt.setup(t, mockRepo)

			service := &Service{userRepo: mockRepo}

			err := service.ChangePassword(1, tt.currentPassword, tt.newPassword)
			tt.validate(t, err)
		})
	}
}
