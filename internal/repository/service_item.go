package repository

import (
	"github.com/congregate-app/congregate/internal/model"
	"github.com/jmoiron/sqlx"
)

type ServiceItemRepository interface {
	Create(item *model.ServiceItem) error
	List() ([]*model.ServiceItem, error)
}

type serviceItemRepository struct {
	db *sqlx.DB
}

func NewServiceItemRepository(db *sqlx.DB) ServiceItemRepository {
	return &serviceItemRepository{db: db}
}

func (r *serviceItemRepository) Create(item *model.ServiceItem) error {
	query := `INSERT INTO service_items (id, title, description, category, date, time, location, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query, item.ID, item.Title, item.Description, item.Category, item.Date, item.Time, item.Location, item.CreatedAt)
	return err
}

func (r *serviceItemRepository) List() ([]*model.ServiceItem, error) {
	var items []*model.ServiceItem
	query := `SELECT * FROM service_items ORDER BY date ASC, time ASC`

	err := r.db.Select(&items, query)
	if err != nil {
		return nil, err
	}

	return items, nil
}
