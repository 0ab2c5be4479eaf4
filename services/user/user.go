package user

import (
	"errors"
	"fmt"
	"time"

	userRepo "bluerobins/database/repository/user"
	"bluerobins/models"
	"bluerobins/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

var (
	ErrEmailTaken         = utils.NewServiceError("emailTaken", "A user with this email already exists")
	ErrInvalidCredentials = utils.NewServiceError("invalidCredentials", "Invalid email or password")
	ErrUserNotFound       = utils.NewServiceError("userNotFound", "User not found")
)

// UserService handles account signup, signin and profile access.
type UserService interface {
	Signup(reg models.UserRegistration) (*models.AuthResponse, error)
	Signin(email, password string) (*models.AuthResponse, error)
	GetProfile(userID string) (*models.User, error)
	UpdateProfile(id models.Identity, updates models.User) (*models.User, error)
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// Signup creates an account and returns a signed token for it.
func (s *DefaultUserService) Signup(reg models.UserRegistration) (*models.AuthResponse, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.GetByEmail(reg.Email)
	if err != nil && !errors.Is(err, userRepo.ErrUserNotFound) {
		logger.Error("failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	now := time.Now()
	user := models.User{
		ID:           uuid.New().String(),
		Role:         reg.Role,
		Name:         reg.Name,
		Email:        reg.Email,
		PasswordHash: string(hashed),
		ParentID:     reg.ParentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(&user); err != nil {
		logger.Error("failed to create user", zap.String("email", reg.Email), zap.Error(err))
		return nil, fmt.Errorf("signup failed: %w", err)
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: user}, nil
}

// Signin verifies credentials and returns a fresh token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *DefaultUserService) Signin(email, password string) (*models.AuthResponse, error) {
	user, err := s.Repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("signin failed: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, user.Email, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}

// GetProfile returns one account by id.
func (s *DefaultUserService) GetProfile(userID string) (*models.User, error) {
	user, err := s.Repo.GetByID(userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	return user, nil
}

// UpdateProfile applies the caller's editable fields onto their own
// account. Role, email and password are not editable here.
func (s *DefaultUserService) UpdateProfile(id models.Identity, updates models.User) (*models.User, error) {
	user, err := s.Repo.GetByID(id.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user %s: %w", id.UserID, err)
	}

	if updates.Name != "" {
		user.Name = updates.Name
	}
	if updates.Phone != "" {
		user.Phone = updates.Phone
	}
	if updates.TimeZone != "" {
		user.TimeZone = updates.TimeZone
	}
	if updates.Grade != "" {
		user.Grade = updates.Grade
	}
	if updates.Interests != nil {
		user.Interests = updates.Interests
	}
	user.UpdatedAt = time.Now()

	if err := s.Repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", id.UserID, err)
	}
	return user, nil
}
