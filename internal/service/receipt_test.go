package service

import (
	"bytes"
	"testing"
	"time"

	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReceiptFixture() (*ReceiptService, *fakeUserRepo, *fakeTitheRepo) {
	userRepo := newFakeUserRepo()
	titheRepo := &fakeTitheRepo{userRepo: userRepo}
	return NewReceiptService(titheRepo, userRepo, "Grace Chapel"), userRepo, titheRepo
}

func TestRenderContainsRecordFields(t *testing.T) {
	svc, userRepo, titheRepo := newReceiptFixture()
	seedUser(userRepo, "u-alice", "alice")
	titheRepo.records = append(titheRepo.records, &model.TithingRecord{
		ID:          "rec-1",
		UserID:      "u-alice",
		AmountCents: 10000,
		Date:        "2024-01-15",
		CreatedAt:   time.Now(),
	})

	doc, err := svc.Render("rec-1")
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF-")))
	// Streams are uncompressed so the field values are inspectable.
	assert.Contains(t, string(doc), "100.00")
	assert.Contains(t, string(doc), "2024-01-15")
	assert.Contains(t, string(doc), "alice")
}

func TestRenderIsDeterministic(t *testing.T) {
	svc, userRepo, titheRepo := newReceiptFixture()
	seedUser(userRepo, "u-alice", "alice")
	titheRepo.records = append(titheRepo.records, &model.TithingRecord{
		ID:          "rec-1",
		UserID:      "u-alice",
		AmountCents: 2550,
		Date:        "2024-06-02",
	})

	first, err := svc.Render("rec-1")
	require.NoError(t, err)
	second, err := svc.Render("rec-1")
	require.NoError(t, err)

	assert.Equal(t, first, second, "same record must render identical bytes")
}

func TestRenderAnonymousFallback(t *testing.T) {
	svc, _, titheRepo := newReceiptFixture()
	// Record points at a user the store cannot resolve.
	titheRepo.records = append(titheRepo.records, &model.TithingRecord{
		ID:          "rec-orphan",
		UserID:      "u-gone",
		AmountCents: 500,
		Date:        "2024-02-01",
	})

	doc, err := svc.Render("rec-orphan")
	require.NoError(t, err, "unresolvable contributor must not fail the render")
	assert.Contains(t, string(doc), "Anonymous")
}

func TestRenderRecordNotFound(t *testing.T) {
	svc, _, _ := newReceiptFixture()

	_, err := svc.Render("missing")
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

func TestFilename(t *testing.T) {
	svc, _, _ := newReceiptFixture()
	assert.Equal(t, "tithing_record_rec-1.pdf", svc.Filename("rec-1"))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$100.00", FormatAmount(10000))
	assert.Equal(t, "$0.05", FormatAmount(5))
	assert.Equal(t, "$1,234.56", FormatAmount(123456))
}
