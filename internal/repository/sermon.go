package repository

import (
	"database/sql"
	"errors"

	"github.com/congregate-app/congregate/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrSermonNotFound = errors.New("sermon not found")
)

type SermonRepository interface {
	Create(sermon *model.Sermon) error
	ByID(id string) (*model.Sermon, error)
	List() ([]*model.Sermon, error)
}

type sermonRepository struct {
	db *sqlx.DB
}

func NewSermonRepository(db *sqlx.DB) SermonRepository {
	return &sermonRepository{db: db}
}

func (r *sermonRepository) Create(sermon *model.Sermon) error {
	query := `INSERT INTO sermons (id, title, body, preacher, date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query, sermon.ID, sermon.Title, sermon.Body, sermon.Preacher, sermon.Date, sermon.CreatedAt)
	return err
}

func (r *sermonRepository) ByID(id string) (*model.Sermon, error) {
	sermon := &model.Sermon{}
	query := `SELECT * FROM sermons WHERE id = $1`

	err := r.db.Get(sermon, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrSermonNotFound
	}

	return sermon, err
}

func (r *sermonRepository) List() ([]*model.Sermon, error) {
	var sermons []*model.Sermon
	query := `SELECT * FROM sermons ORDER BY date DESC, created_at DESC`

	err := r.db.Select(&sermons, query)
	if err != nil {
		return nil, err
	}

	return sermons, nil
}
