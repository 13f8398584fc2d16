package service

import (
	"github.com/gatherly/gatherly-backend/internal/apperr"
	"github.com/gatherly/gatherly-backend/internal/models"
	"github.com/gatherly/gatherly-backend/internal/repository"
	"github.com/gatherly/gatherly-backend/pkg/bcrypt"
	jwtPkg "github.com/gatherly/gatherly-backend/pkg/jwt"
)

type AuthService struct {
	userRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates the user and its profile in one transaction and returns a
// fresh token. All checks run before anything is written.
func (s *AuthService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if req.Password != req.Password2 {
		return nil, apperr.Validation("password", "Password fields didn't match.")
	}

	exists, err := s.userRepo.EmailExists(req.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Validation("email", "A user with this email already exists.")
	}

	exists, err = s.userRepo.UsernameExists(req.Username)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if exists {
		return nil, apperr.Validation("username", "A user with this username already exists.")
	}

	hashedPassword, err := bcrypt.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	fullName := req.FirstName
	if req.LastName != "" {
		if fullName != "" {
			fullName += " "
		}
		fullName += req.LastName
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Profile:  &models.UserProfile{FullName: fullName},
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Internal(err)
	}

	token, err := jwtPkg.GenerateToken(user.Username, user.Email, user.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

// Login exchanges credentials for a token. Unknown username and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		return nil, apperr.Authentication("invalid username or password")
	}

	if err := bcrypt.ComparePassword(user.Password, req.Password); err != nil {
		return nil, apperr.Authentication("invalid username or password")
	}

	token, err := jwtPkg.GenerateToken(user.Username, user.Email, user.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}
