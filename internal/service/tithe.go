package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/repository"
	"github.com/congregate-app/congregate/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrNotAuthorized = errors.New("not authorized")
	ErrUserNotFound  = errors.New("user not found")
)

// TitheService is the donation ledger. Records are append-only: only
// admins may add them, on behalf of a named member, and nothing is
// written when validation fails.
type TitheService struct {
	repo     repository.TitheRepository
	userRepo repository.UserRepository
}

func NewTitheService(repo repository.TitheRepository, userRepo repository.UserRepository) *TitheService {
	return &TitheService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *TitheService) AddRecord(actor *model.Principal, targetUsername, amount, date string) (*model.TithingRecord, error) {
	if !actor.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	cents, err := validation.ParseAmount(amount)
	if err != nil {
		return nil, err
	}

	normalizedDate, err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	target, err := s.userRepo.ByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	record := &model.TithingRecord{
		ID:          uuid.New().String(),
		UserID:      target.ID,
		AmountCents: cents,
		Date:        normalizedDate,
		CreatedAt:   time.Now(),
	}

	// The repository re-checks target existence inside the insert
	// transaction.
	err = s.repo.Create(record)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	slog.Info("tithing record added", "record_id", record.ID, "user_id", target.ID, "actor_id", actor.UserID)
	return record, nil
}

func (s *TitheService) RecordsFor(userID string) ([]*model.TithingRecord, error) {
	return s.repo.ByUser(userID)
}

func (s *TitheService) Record(recordID string) (*model.TithingRecord, error) {
	return s.repo.ByID(recordID)
}
