package service

import (
	"fmt"

	"github.com/m06522052-gif/AqeelApp/internal/entity"
	"github.com/m06522052-gif/AqeelApp/internal/repository"
)

type UserService struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,max=128"`
	Phone    string `json:"phone" binding:"max=32"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (s *UserService) Create(req CreateUserRequest) (*entity.User, error) {
	if err := validateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := ValidatePasswordStrength(req.Password); err != nil {
		return nil, err
	}
	role := req.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if role != entity.RoleAdmin && role != entity.RoleManager && role != entity.RoleEmployee {
		return nil, fmt.Errorf("unknown role %q: %w", role, ErrValidation)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(id int64) (*entity.User, error) {
	return s.repo.GetByID(id)
}

func (s *UserService) List() ([]entity.User, error) {
	return s.repo.List()
}

type UpdateUserRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"` // empty keeps the current one
	Role     string `json:"role"`
}

func (s *UserService) Update(id int64, req UpdateUserRequest) (*entity.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.Email != "" {
		if err := validateEmail(req.Email); err != nil {
			return nil, err
		}
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Role != "" {
		if req.Role != entity.RoleAdmin && req.Role != entity.RoleManager && req.Role != entity.RoleEmployee {
			return nil, fmt.Errorf("unknown role %q: %w", req.Role, ErrValidation)
		}
		user.Role = req.Role
	}
	if req.Password != "" {
		if err := ValidatePasswordStrength(req.Password); err != nil {
			return nil, err
		}
		hash, err := HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hash
	}
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) SetActive(id int64, active bool) error {
	return s.repo.SetActive(id, active)
}

func (s *UserService) Delete(id int64) error {
	return s.repo.Delete(id)
}
