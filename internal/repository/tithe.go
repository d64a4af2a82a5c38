package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/congregate-app/congregate/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrRecordNotFound = errors.New("tithing record not found")
)

type TitheRepository interface {
	Create(record *model.TithingRecord) error
	ByID(id string) (*model.TithingRecord, error)
	ByUser(userID string) ([]*model.TithingRecord, error)
}

type titheRepository struct {
	db *sqlx.DB
}

func NewTitheRepository(db *sqlx.DB) TitheRepository {
	return &titheRepository{db: db}
}

// Create inserts a record. The target user's existence is verified in
// the same transaction as the insert, so a record can never end up
// pointing at a user that vanished between check and write.
func (r *titheRepository) Create(record *model.TithingRecord) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var count int
	err = tx.Get(&count, `SELECT COUNT(*) FROM users WHERE id = $1`, record.UserID)
	if err != nil {
		return fmt.Errorf("failed to check user: %w", err)
	}
	if count == 0 {
		return ErrUserNotFound
	}

	query := `INSERT INTO tithing_records (id, user_id, amount_cents, date, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err = tx.Exec(query, record.ID, record.UserID, record.AmountCents, record.Date, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	return tx.Commit()
}

func (r *titheRepository) ByID(id string) (*model.TithingRecord, error) {
	record := &model.TithingRecord{}
	query := `SELECT * FROM tithing_records WHERE id = $1`

	err := r.db.Get(record, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrRecordNotFound
	}

	return record, err
}

// ByUser returns a user's records ascending by date, ties broken by
// insertion order.
func (r *titheRepository) ByUser(userID string) ([]*model.TithingRecord, error) {
	var records []*model.TithingRecord
	query := `SELECT * FROM tithing_records WHERE user_id = $1 ORDER BY date ASC, created_at ASC`

	err := r.db.Select(&records, query, userID)
	if err != nil {
		return nil, err
	}

	return records, nil
}
