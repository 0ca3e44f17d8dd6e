package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/Tyagianshu04/krishi-mitra/internal/auth"
	"github.com/Tyagianshu04/krishi-mitra/internal/errors"
	"github.com/Tyagianshu04/krishi-mitra/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		fullName      string
		email         string
		mobile        string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			fullName: "Ravi Kumar",
			email:    "ravi@example.com",
			mobile:   "9876543210",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByIdentifier", mock.Anything, "ravi@example.com").Return(nil, errors.ErrUserNotFound)
				m.On("FindByIdentifier", mock.Anything, "9876543210").Return(nil, errors.ErrUserNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email uppercased by caller is normalized",
			fullName: "Ravi Kumar",
			email:    "  RAVI@Example.COM ",
			mobile:   "9876543210",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByIdentifier", mock.Anything, "ravi@example.com").Return(nil, errors.ErrUserNotFound)
				m.On("FindByIdentifier", mock.Anything, "9876543210").Return(nil, errors.ErrUserNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			fullName: "Ravi Kumar",
			email:    "taken@example.com",
			mobile:   "9876543210",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByIdentifier", mock.Anything, "taken@example.com").
					Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
		{
			name:     "mobile already registered",
			fullName: "Ravi Kumar",
			email:    "ravi@example.com",
			mobile:   "9876543210",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByIdentifier", mock.Anything, "ravi@example.com").Return(nil, errors.ErrUserNotFound)
				m.On("FindByIdentifier", mock.Anything, "9876543210").
					Return(&model.User{Mobile: "9876543210"}, nil)
			},
			expectedError: errors.ErrMobileTaken,
		},
		{
			name:     "store loses race to a concurrent registration",
			fullName: "Ravi Kumar",
			email:    "ravi@example.com",
			mobile:   "9876543210",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByIdentifier", mock.Anything, "ravi@example.com").Return(nil, errors.ErrUserNotFound)
				m.On("FindByIdentifier", mock.Anything, "9876543210").Return(nil, errors.ErrUserNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
					Return(errors.ErrDuplicateCredential)
			},
			expectedError: errors.ErrDuplicateCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			token, user, err := service.Register(context.Background(), tt.fullName, tt.email, tt.mobile, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, tt.fullName, user.FullName)
				assert.Equal(t, "ravi@example.com", user.Email)
				assert.Equal(t, tt.mobile, user.Mobile)
				assert.NotEqual(t, uuid.Nil, user.ID)
				assert.NotEmpty(t, user.PasswordHash)
				assert.NotEqual(t, tt.password, user.PasswordHash)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret123"), 10)
	userID := uuid.New()
	storedUser := &model.User{
		ID:           userID,
		FullName:     "Ravi Kumar",
		Email:        "ravi@example.com",
		Mobile:       "9876543210",
		PasswordHash: string(hashedPassword),
	}

	tests := []struct {
		name          string
		username      string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "login with email",
			username: "ravi@example.com",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByIdentifier", mock.Anything, "ravi@example.com").Return(storedUser, nil)
			},
			expectedError: nil,
		},
		{
			name:     "login with mobile number",
			username: "9876543210",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByIdentifier", mock.Anything, "9876543210").Return(storedUser, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown user",
			username: "nobody@example.com",
			password: "secret123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByIdentifier", mock.Anything, "nobody@example.com").
					Return(nil, errors.ErrUserNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "ravi@example.com",
			password: "not-the-password",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByIdentifier", mock.Anything, "ravi@example.com").Return(storedUser, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			token, user, err := service.Login(context.Background(), tt.username, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, userID, user.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_VerifyToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	service := NewAuthService(new(MockUserRepository), jwtService)

	userID := uuid.New()
	token, err := jwtService.GenerateToken(userID)
	assert.NoError(t, err)

	gotID, err := service.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, gotID)

	gotID, err = service.VerifyToken("not.a.token")
	assert.ErrorIs(t, err, errors.ErrInvalidToken)
	assert.Equal(t, uuid.Nil, gotID)
}
