package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/api/handlers"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/application/services"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

type stubReviewRepo struct {
	listBySchool func(ctx context.Context, schoolID string, limit, offset int) ([]*entities.Review, error)
}

func (s *stubReviewRepo) Create(context.Context, *entities.Review) error { return nil }

func (s *stubReviewRepo) GetByID(context.Context, string) (*entities.Review, error) {
	return nil, apperrors.NewNotFoundError("no such review")
}

func (s *stubReviewRepo) ListBySchool(ctx context.Context, schoolID string, limit, offset int) ([]*entities.Review, error) {
	return s.listBySchool(ctx, schoolID, limit, offset)
}

func knownSchoolRepo() *stubSchoolRepo {
	return &stubSchoolRepo{
		getByID: func(_ context.Context, id string) (*entities.School, error) {
			return &entities.School{ID: id}, nil
		},
	}
}

func TestListSchoolReviews(t *testing.T) {
	reviews := &stubReviewRepo{
		listBySchool: func(context.Context, string, int, int) ([]*entities.Review, error) {
			return []*entities.Review{{ID: "rev-1", SchoolID: "sch-1"}}, nil
		},
	}
	handler := handlers.NewReviewHandler(services.NewReviewService(reviews, knownSchoolRepo(), nil))

	req := httptest.NewRequest(http.MethodGet, "/api/schools/sch-1/reviews", nil)
	req.SetPathValue("id", "sch-1")
	rec := httptest.NewRecorder()
	handler.ListSchoolReviews(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Reviews []*entities.Review `json:"reviews"`
		Count   int                `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestListSchoolReviewsPassesPaging(t *testing.T) {
	var gotLimit, gotOffset int
	reviews := &stubReviewRepo{
		listBySchool: func(_ context.Context, _ string, limit, offset int) ([]*entities.Review, error) {
			gotLimit, gotOffset = limit, offset
			return []*entities.Review{}, nil
		},
	}
	handler := handlers.NewReviewHandler(services.NewReviewService(reviews, knownSchoolRepo(), nil))

	req := httptest.NewRequest(http.MethodGet, "/api/schools/sch-1/reviews?limit=10&offset=20", nil)
	req.SetPathValue("id", "sch-1")
	rec := httptest.NewRecorder()
	handler.ListSchoolReviews(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, 20, gotOffset)
}

func TestListSchoolReviewsUnknownSchool(t *testing.T) {
	schools := &stubSchoolRepo{
		getByID: func(context.Context, string) (*entities.School, error) {
			return nil, apperrors.NewNotFoundError("school with id ghost not found")
		},
	}
	handler := handlers.NewReviewHandler(services.NewReviewService(&stubReviewRepo{}, schools, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/schools/ghost/reviews", nil)
	req.SetPathValue("id", "ghost")
	rec := httptest.NewRecorder()
	handler.ListSchoolReviews(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListSchoolReviewsDegradesToEmptyOnFailure(t *testing.T) {
	reviews := &stubReviewRepo{
		listBySchool: func(context.Context, string, int, int) ([]*entities.Review, error) {
			return nil, errors.New("connection refused")
		},
	}
	handler := handlers.NewReviewHandler(services.NewReviewService(reviews, knownSchoolRepo(), nil))

	req := httptest.NewRequest(http.MethodGet, "/api/schools/sch-1/reviews", nil)
	req.SetPathValue("id", "sch-1")
	rec := httptest.NewRecorder()
	handler.ListSchoolReviews(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}

func TestCreateReviewIsStubbed(t *testing.T) {
	handler := handlers.NewReviewHandler(services.NewReviewService(&stubReviewRepo{}, knownSchoolRepo(), nil))

	req := httptest.NewRequest(http.MethodPost, "/api/schools/sch-1/reviews", nil)
	req.SetPathValue("id", "sch-1")
	rec := httptest.NewRecorder()
	handler.CreateReview(rec, req)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}
