package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/congregate-app/congregate/internal/ctxkeys"
	"github.com/congregate-app/congregate/internal/model"
	"github.com/congregate-app/congregate/internal/repository"
	"github.com/congregate-app/congregate/internal/service"
)

type stubUserRepo struct {
	users map[string]*model.User // keyed by username
	err   error
}

func (r *stubUserRepo) Create(user *model.User) error { return r.err }

func (r *stubUserRepo) ByID(id string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) ByEmail(email string) (*model.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) ByUsername(username string) (*model.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) UpdatePassword(id, passwordHash string) error { return r.err }

func (r *stubUserRepo) Count() (int, error) { return len(r.users), r.err }

type stubTitheRepo struct {
	records []*model.TithingRecord
	err     error
}

func (r *stubTitheRepo) Create(record *model.TithingRecord) error { return r.err }

func (r *stubTitheRepo) ByID(id string) (*model.TithingRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, record := range r.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, repository.ErrRecordNotFound
}

func (r *stubTitheRepo) ByUser(userID string) ([]*model.TithingRecord, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*model.TithingRecord
	for _, record := range r.records {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

func newTitheTestHandler(userRepo *stubUserRepo, titheRepo *stubTitheRepo) *titheHandler {
	return NewTitheHandler(
		service.NewTitheService(titheRepo, userRepo),
		service.NewReceiptService(titheRepo, userRepo, "Congregate"),
		service.NewUserService(userRepo),
	)
}

func listAs(t *testing.T, h *titheHandler, principal *model.Principal, query string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/app/tithes"+query, nil)
	req = req.WithContext(ctxkeys.WithPrincipal(req.Context(), principal))

	rec := httptest.NewRecorder()
	h.List(rec, req)
	return rec
}

func TestListAdminLookupUnknownUser(t *testing.T) {
	userRepo := &stubUserRepo{users: map[string]*model.User{}}
	h := newTitheTestHandler(userRepo, &stubTitheRepo{})

	admin := &model.Principal{UserID: "admin-1", Username: "pastor", Role: model.RoleAdmin}
	rec := listAs(t, h, admin, "?username=ghost")

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "no such user", body["error"])
}

func TestListAdminLookupStorageFailure(t *testing.T) {
	userRepo := &stubUserRepo{err: errors.New("database is locked")}
	h := newTitheTestHandler(userRepo, &stubTitheRepo{})

	admin := &model.Principal{UserID: "admin-1", Username: "pastor", Role: model.RoleAdmin}
	rec := listAs(t, h, admin, "?username=alice")

	// A storage failure is not "no such user"; it must surface as a
	// server error so the caller does not conclude the member is gone.
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "something went wrong", body["error"])
}

func TestListMemberIgnoresUsernameFilter(t *testing.T) {
	userRepo := &stubUserRepo{users: map[string]*model.User{
		"alice": {ID: "user-1", Username: "alice", Role: model.RoleMember},
		"bob":   {ID: "user-2", Username: "bob", Role: model.RoleMember},
	}}
	titheRepo := &stubTitheRepo{records: []*model.TithingRecord{
		{ID: "rec-1", UserID: "user-1", AmountCents: 10000, Date: "2024-01-15"},
		{ID: "rec-2", UserID: "user-2", AmountCents: 5000, Date: "2024-02-01"},
	}}
	h := newTitheTestHandler(userRepo, titheRepo)

	member := &model.Principal{UserID: "user-1", Username: "alice", Role: model.RoleMember}
	rec := listAs(t, h, member, "?username=bob")

	require.Equal(t, http.StatusOK, rec.Code)

	var records []titheResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "rec-1", records[0].ID)
}
