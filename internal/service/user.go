package service

import (
	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/repository"
)

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ByID(id string) (*model.User, error) {
	return s.repo.ByID(id)
}

func (s *UserService) ByUsername(username string) (*model.User, error) {
	return s.repo.ByUsername(username)
}

// PrincipalByID resolves a stored user into a principal, dropping the
// password hash on the floor.
func (s *UserService) PrincipalByID(id string) (*model.Principal, error) {
	user, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	return &model.Principal{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
