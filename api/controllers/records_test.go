package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/angelmondragon/healthtrack-backend/api/middleware"
	"github.com/angelmondragon/healthtrack-backend/internal/auth"
	"github.com/angelmondragon/healthtrack-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/healthtrack-backend/pkg/errors"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFamilyService struct {
	created *models.FamilyContact
	owner   uint
	id      uint
	rows    []models.FamilyContact
	err     error
}

func (s *stubFamilyService) Create(ctx context.Context, ownerID uint, rec *models.FamilyContact) (uint, error) {
	s.owner, s.created = ownerID, rec
	return 5, s.err
}

func (s *stubFamilyService) List(ctx context.Context, ownerID uint) ([]models.FamilyContact, error) {
	s.owner = ownerID
	return s.rows, s.err
}

func (s *stubFamilyService) Update(ctx context.Context, ownerID, id uint, rec *models.FamilyContact) error {
	s.owner, s.id, s.created = ownerID, id, rec
	return s.err
}

func (s *stubFamilyService) Delete(ctx context.Context, ownerID, id uint) error {
	s.owner, s.id = ownerID, id
	return s.err
}

func familyRouter(svc *stubFamilyService) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(w, req.WithContext(middleware.WithIdentity(req.Context(), auth.Identity{UserID: 4})))
		})
	})
	r.Post("/family", RecordCreate[models.FamilyContact](svc, nil))
	r.Get("/family/{userId}", RecordList[models.FamilyContact](svc, nil))
	r.Put("/family/{id}", RecordUpdate[models.FamilyContact](svc, nil))
	r.Delete("/family/{id}", RecordDelete[models.FamilyContact](svc, nil))
	return r
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(method, path, strings.NewReader(body)))
	return resp
}

func TestRecordCreateUsesCallerAsOwner(t *testing.T) {
	svc := &stubFamilyService{}
	resp := serve(familyRouter(svc), http.MethodPost, "/family", `{"Name":"Mom","PhoneNo":"555"}`)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"data":{"id":5}}`, resp.Body.String())
	assert.Equal(t, uint(4), svc.owner)
	require.NotNil(t, svc.created)
}

func TestRecordCreateRejectsMalformedJSON(t *testing.T) {
	svc := &stubFamilyService{}
	resp := serve(familyRouter(svc), http.MethodPost, "/family", `{"Name":`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Nil(t, svc.created)
}

func TestRecordListReturnsEmptyArray(t *testing.T) {
	svc := &stubFamilyService{rows: []models.FamilyContact{}}
	resp := serve(familyRouter(svc), http.MethodGet, "/family/4", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"data":[]}`, resp.Body.String())
}

func TestRecordUpdateAndDeleteEchoID(t *testing.T) {
	svc := &stubFamilyService{}
	h := familyRouter(svc)

	resp := serve(h, http.MethodPut, "/family/12", `{"Name":"Dad","PhoneNo":"556"}`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"data":{"updatedID":12}}`, resp.Body.String())
	assert.Equal(t, uint(12), svc.id)

	resp = serve(h, http.MethodDelete, "/family/12", "")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"data":{"deletedID":12}}`, resp.Body.String())

	resp = serve(h, http.MethodDelete, "/family/x", "")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestRecordDeleteMissingIsNotFound(t *testing.T) {
	svc := &stubFamilyService{err: pkgerrors.New(pkgerrors.CodeNotFound, "family not found")}
	resp := serve(familyRouter(svc), http.MethodDelete, "/family/3", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "NOT_FOUND")
}
