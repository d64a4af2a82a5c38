package service

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/repository"
	"github.com/congregate-app/congregate/internal/validation"
	"github.com/google/uuid"
)

// ScheduleService manages the Sunday service schedule.
type ScheduleService struct {
	repo repository.ServiceItemRepository
}

func NewScheduleService(repo repository.ServiceItemRepository) *ScheduleService {
	return &ScheduleService{repo: repo}
}

func (s *ScheduleService) Create(actor *model.Principal, title, description, category, date, timeOfDay, location string) (*model.ServiceItem, error) {
	if !actor.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	normalizedDate, err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	item := &model.ServiceItem{
		ID:          uuid.New().String(),
		Title:       title,
		Description: strings.TrimSpace(description),
		Category:    strings.TrimSpace(category),
		Date:        normalizedDate,
		Time:        strings.TrimSpace(timeOfDay),
		Location:    strings.TrimSpace(location),
		CreatedAt:   time.Now(),
	}

	err = s.repo.Create(item)
	if err != nil {
		return nil, fmt.Errorf("failed to create service item: %w", err)
	}

	slog.Info("service item added", "item_id", item.ID, "actor_id", actor.UserID)
	return item, nil
}

func (s *ScheduleService) List() ([]*model.ServiceItem, error) {
	return s.repo.List()
}
