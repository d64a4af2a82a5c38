package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/congregate-app/congregate/internal/markdown"
	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/repository"
	"github.com/congregate-app/congregate/internal/validation"
	"github.com/google/uuid"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrBodyRequired  = errors.New("body is required")
)

type SermonService struct {
	repo   repository.SermonRepository
	parser *markdown.Parser
}

func NewSermonService(repo repository.SermonRepository) *SermonService {
	return &SermonService{
		repo:   repo,
		parser: markdown.NewParser(),
	}
}

func (s *SermonService) Create(actor *model.Principal, title, body, preacher, date string) (*model.Sermon, error) {
	if !actor.IsAdmin() {
		return nil, ErrNotAuthorized
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(body) == "" {
		return nil, ErrBodyRequired
	}

	normalizedDate, err := validation.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	sermon := &model.Sermon{
		ID:        uuid.New().String(),
		Title:     title,
		Body:      body,
		Preacher:  strings.TrimSpace(preacher),
		Date:      normalizedDate,
		CreatedAt: time.Now(),
	}

	err = s.repo.Create(sermon)
	if err != nil {
		return nil, fmt.Errorf("failed to create sermon: %w", err)
	}

	slog.Info("sermon posted", "sermon_id", sermon.ID, "actor_id", actor.UserID)
	return sermon, nil
}

// ByID returns a sermon with its body rendered to HTML.
func (s *SermonService) ByID(id string) (*model.Sermon, error) {
	sermon, err := s.repo.ByID(id)
	if err != nil {
		return nil, err
	}

	html, err := s.parser.Parse([]byte(sermon.Body))
	if err != nil {
		slog.Warn("failed to render sermon body", "error", err, "sermon_id", sermon.ID)
	} else {
		sermon.BodyHTML = string(html)
	}

	return sermon, nil
}

func (s *SermonService) List() ([]*model.Sermon, error) {
	return s.repo.List()
}
