package service

import (
	"testing"
	"time"

	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLedgerFixture() (*TitheService, *fakeUserRepo, *fakeTitheRepo) {
	userRepo := newFakeUserRepo()
	titheRepo := &fakeTitheRepo{userRepo: userRepo}
	return NewTitheService(titheRepo, userRepo), userRepo, titheRepo
}

func seedUser(repo *fakeUserRepo, id, username string) *model.User {
	user := &model.User{
		ID:        id,
		Username:  username,
		Email:     username + "@example.com",
		Role:      model.RoleMember,
		CreatedAt: time.Now(),
	}
	repo.users[id] = user
	return user
}

var admin = &model.Principal{UserID: "admin-1", Username: "pastor", Role: model.RoleAdmin}
var member = &model.Principal{UserID: "member-1", Username: "bob", Role: model.RoleMember}

func TestAddRecord(t *testing.T) {
	svc, userRepo, titheRepo := newLedgerFixture()
	seedUser(userRepo, "u-alice", "alice")

	record, err := svc.AddRecord(admin, "alice", "100.00", "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "u-alice", record.UserID)
	assert.Equal(t, int64(10000), record.AmountCents)
	assert.Equal(t, "2024-01-15", record.Date)
	assert.Len(t, titheRepo.records, 1)
}

func TestAddRecordMemberNotAuthorized(t *testing.T) {
	svc, userRepo, titheRepo := newLedgerFixture()
	seedUser(userRepo, "member-1", "bob")

	// Policy: only admins may add records, even for themselves.
	_, err := svc.AddRecord(member, "bob", "10.00", "2024-01-15")
	assert.ErrorIs(t, err, ErrNotAuthorized)
	assert.Empty(t, titheRepo.records)
}

func TestAddRecordNegativeAmount(t *testing.T) {
	svc, userRepo, titheRepo := newLedgerFixture()
	seedUser(userRepo, "u-alice", "alice")

	_, err := svc.AddRecord(admin, "alice", "-1", "2024-01-15")
	assert.ErrorIs(t, err, validation.ErrInvalidAmount)
	assert.Empty(t, titheRepo.records, "failed validation must not write to the ledger")
}

func TestAddRecordInvalidDate(t *testing.T) {
	svc, userRepo, titheRepo := newLedgerFixture()
	seedUser(userRepo, "u-alice", "alice")

	_, err := svc.AddRecord(admin, "alice", "10.00", "01/15/2024")
	assert.ErrorIs(t, err, validation.ErrInvalidDate)
	assert.Empty(t, titheRepo.records)
}

func TestAddRecordUnknownTarget(t *testing.T) {
	svc, _, titheRepo := newLedgerFixture()

	_, err := svc.AddRecord(admin, "nobody", "10.00", "2024-01-15")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Empty(t, titheRepo.records)
}

func TestRecordsFor(t *testing.T) {
	svc, userRepo, _ := newLedgerFixture()
	seedUser(userRepo, "u-alice", "alice")

	_, err := svc.AddRecord(admin, "alice", "30.00", "2024-03-01")
	require.NoError(t, err)
	_, err = svc.AddRecord(admin, "alice", "10.00", "2024-01-01")
	require.NoError(t, err)

	records, err := svc.RecordsFor("u-alice")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2024-01-01", records[0].Date)
	assert.Equal(t, "2024-03-01", records[1].Date)
}
