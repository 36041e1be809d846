package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/limbo/mindful/internal/error_values"
	"github.com/limbo/mindful/internal/repository"
	"github.com/limbo/mindful/pkg/entity"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	InitValidator()
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %w", err)
	}
	err = us.repo.Create(ctx, &entity.User{
		Name:         req.Name,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	user, err := us.repo.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}

func (us *UserService) Verify(ctx context.Context, name, password string) (bool, error) {
	_, err := us.Login(ctx, name, password)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		return false, nil
	default:
		return false, err
	}
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByName(ctx context.Context, name string) (*entity.User, error) {
	user, err := us.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}
