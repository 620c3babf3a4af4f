package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-hub-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-hub-api/internal/config"
	"github.com/vfg2006/campaign-hub-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "segredo-de-teste"}
}

func hashPassword(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hashed)
}

func TestService_CreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		user, err := service.CreateUser(&domain.User{Email: "a@b.com"})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByEmail("maria@example.com").
			Return(&domain.User{ID: 10, Email: "maria@example.com"}, nil)

		user, err := service.CreateUser(&domain.User{
			Email:        " Maria@Example.com ",
			Name:         "Maria",
			Lastname:     "Silva",
			PasswordHash: "senha123",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Usuário novo - senha vira hash e conta nasce inativa", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByEmail("joao@example.com").
			Return(nil, nil)

		mockRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.Equal(t, "joao@example.com", user.Email)
				assert.False(t, user.Active)
				assert.Equal(t, 3, user.RoleID)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("senha123")))
				user.ID = 42
				return user, nil
			})

		user, err := service.CreateUser(&domain.User{
			Email:        "Joao@Example.com",
			Name:         "João",
			Lastname:     "Souza",
			PasswordHash: "senha123",
		})

		assert.NoError(t, err)
		assert.Equal(t, 42, user.ID)
	})
}

func TestService_LoginUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Login válido - token assinado e verificável",
			email:    "ana@example.com",
			password: "senha123",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail("ana@example.com").
					Return(&domain.User{
						ID:           7,
						Email:        "ana@example.com",
						Name:         "Ana",
						Active:       true,
						RoleID:       2,
						PasswordHash: hashPassword(t, "senha123"),
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, 7, claims.UserID)
				assert.Equal(t, 2, claims.UserRoleID)
			},
		},
		{
			name:     "Email e senha ausentes",
			email:    "",
			password: "",
			setup:    func() {},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name:     "Usuário não encontrado",
			email:    "ninguem@example.com",
			password: "senha123",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail("ninguem@example.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:     "Conta desativada",
			email:    "inativo@example.com",
			password: "senha123",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail("inativo@example.com").
					Return(&domain.User{
						ID:           8,
						Email:        "inativo@example.com",
						Active:       false,
						PasswordHash: hashPassword(t, "senha123"),
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrUserDisabled)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "ana@example.com",
			password: "senha-errada",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail("ana@example.com").
					Return(&domain.User{
						ID:           7,
						Email:        "ana@example.com",
						Active:       true,
						PasswordHash: hashPassword(t, "senha123"),
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.LoginUser(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken_TokenAdulterado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	otherService := NewService(mockRepo, &config.Config{SecretKey: "outro-segredo"})

	mockRepo.EXPECT().
		GetUserByEmail("ana@example.com").
		Return(&domain.User{
			ID:           7,
			Email:        "ana@example.com",
			Active:       true,
			PasswordHash: hashPassword(t, "senha123"),
		}, nil)

	token, err := otherService.LoginUser("ana@example.com", "senha123")
	assert.NoError(t, err)

	// Token assinado com outro segredo não passa na validação
	claims, err := service.ValidateToken(token)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestService_GetUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := NewService(mockRepo, testConfig())

	t.Run("Perfil encontrado - hash da senha nunca sai do serviço", func(t *testing.T) {
		mockRepo.EXPECT().
			GetUserByID(7).
			Return(&domain.User{ID: 7, Email: "ana@example.com", PasswordHash: "hash"}, nil)

		user, err := service.GetUserProfile(7)

		assert.NoError(t, err)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("Usuário não encontrado", func(t *testing.T) {
		mockRepo.EXPECT().GetUserByID(99).Return(nil, nil)

		user, err := service.GetUserProfile(99)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
