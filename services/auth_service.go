package services

import (
	"errors"
	"time"

	"autohub/config"
	"autohub/models"
	"autohub/repositories"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(id uint, req models.UpdateProfileRequest) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUserRole(id uint, role models.UserRole) (*models.User, error)
	DeleteUser(id uint) error
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	// Username and email are each unique across all users
	if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing != nil && existing.ID != 0 {
		return nil, models.ErrorConflict{Message: "email already registered"}
	}
	if existing, err := s.userRepo.GetByUsername(req.Username); err == nil && existing != nil && existing.ID != 0 {
		return nil, models.ErrorConflict{Message: "username already taken"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Registration always produces an ordinary user; elevation is an
	// admin-only mutation.
	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
		Role:     models.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorUnauthorized{Message: "invalid credentials"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateProfile(id uint, req models.UpdateProfileRequest) (*models.User, error) {
	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	if req.Email != "" && req.Email != user.Email {
		if existing, err := s.userRepo.GetByEmail(req.Email); err == nil && existing.ID != 0 && existing.ID != id {
			return nil, models.ErrorConflict{Message: "email already registered"}
		}
		user.Email = req.Email
	}
	if req.Username != "" && req.Username != user.Username {
		if existing, err := s.userRepo.GetByUsername(req.Username); err == nil && existing.ID != 0 && existing.ID != id {
			return nil, models.ErrorConflict{Message: "username already taken"}
		}
		user.Username = req.Username
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) ListUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *authService) UpdateUserRole(id uint, role models.UserRole) (*models.User, error) {
	if role != role.Normalize() {
		return nil, models.ErrorValidation{Message: "unknown role: " + string(role)}
	}

	user, err := s.GetUserByID(id)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) DeleteUser(id uint) error {
	if _, err := s.GetUserByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
