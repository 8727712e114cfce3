package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/liveartfest/ticketing/internal/auth"
	"github.com/liveartfest/ticketing/internal/models"
	"github.com/liveartfest/ticketing/internal/repository"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("bad emailAddress or password")
	ErrSelfDemotion   = errors.New("cannot remove own admin access")
)

type UserService interface {
	CreateUser(ctx context.Context, name, emailAddress, password string) (*models.User, error)
	GetUser(ctx context.Context, id uint) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateName(ctx context.Context, id uint, name string) (*models.User, error)
	UpdatePassword(ctx context.Context, id uint, password string) (*models.User, error)
	DeleteUser(ctx context.Context, id uint) error

	ListAdmins(ctx context.Context) ([]models.User, error)
	PromoteAdmin(ctx context.Context, emailAddress string) error
	DemoteAdmin(ctx context.Context, id, callerID uint) error

	Authenticate(ctx context.Context, emailAddress, password string) (*models.User, string, error)
}

type userService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewUserService(users repository.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{users: users, tokens: tokens}
}

func (s *userService) CreateUser(ctx context.Context, name, emailAddress, password string) (*models.User, error) {
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		EmailAddress: emailAddress,
		Password:     hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *userService) UpdateName(ctx context.Context, id uint, name string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user.Name = name
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) UpdatePassword(ctx context.Context, id uint, password string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user.Password = hashed

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return ErrUserNotFound
	}
	return s.users.Delete(ctx, id)
}

func (s *userService) ListAdmins(ctx context.Context) ([]models.User, error) {
	return s.users.FindAdmins(ctx)
}

// PromoteAdmin grants admin to an existing non-admin account by email.
func (s *userService) PromoteAdmin(ctx context.Context, emailAddress string) error {
	user, err := s.users.FindNonAdminByEmail(ctx, emailAddress)
	if err != nil {
		return ErrUserNotFound
	}
	user.IsAdmin = true
	return s.users.Update(ctx, user)
}

func (s *userService) DemoteAdmin(ctx context.Context, id, callerID uint) error {
	if id == callerID {
		return ErrSelfDemotion
	}
	user, err := s.users.FindAdminByID(ctx, id)
	if err != nil {
		return ErrUserNotFound
	}
	user.IsAdmin = false
	return s.users.Update(ctx, user)
}

// Authenticate verifies credentials and issues a bearer token. A missing
// account and a wrong password are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, emailAddress, password string) (*models.User, string, error) {
	user, err := s.users.FindByEmail(ctx, emailAddress)
	if err != nil {
		return nil, "", ErrBadCredentials
	}
	if !auth.CheckPassword(password, user.Password) {
		return nil, "", ErrBadCredentials
	}

	token, err := s.tokens.Generate(user.EmailAddress, user.ID, user.IsAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return user, token, nil
}
