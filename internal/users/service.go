package users

import (
	"context"
	"fmt"
	"strings"

	"github.com/angelmondragon/opsboard-backend/pkg/db"
	pkgerrors "github.com/angelmondragon/opsboard-backend/pkg/errors"
)

// DefaultRole is assigned when a new user omits role.
const DefaultRole = "user"

type Service interface {
	CreateUser(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	GetUser(ctx context.Context, id uint) (*UserDTO, error)
}

type CreateUserInput struct {
	Username  string  `json:"username" validate:"required,min=3,max=100"`
	Email     string  `json:"email" validate:"required,email,max=255"`
	Password  string  `json:"password" validate:"required,min=8,max=128"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	Role      *string `json:"role" validate:"omitempty,max=50"`
}

type passwordHasher interface {
	Hash(password string) (string, error)
}

type service struct {
	repo   *Repository
	hasher passwordHasher
}

func NewService(repo *Repository, hasher passwordHasher) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if hasher == nil {
		return nil, fmt.Errorf("password hasher required")
	}
	return &service{repo: repo, hasher: hasher}, nil
}

// CreateUser stores the account with an argon2id hash of the password.
func (s *service) CreateUser(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	dto := CreateUserDTO{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
	}
	if input.Role != nil {
		dto.Role = *input.Role
	}

	user, err := s.repo.Create(ctx, dto)
	if err != nil {
		return nil, db.Classify(err, "user")
	}
	return FromModel(user), nil
}

func (s *service) GetUser(ctx context.Context, id uint) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, db.Classify(err, "user")
	}
	return FromModel(user), nil
}
