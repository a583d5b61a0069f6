package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/emreo/learnhub/internal/app/controllers"
	"github.com/emreo/learnhub/internal/app/models/dto"
	"github.com/emreo/learnhub/internal/app/routes"
	"github.com/emreo/learnhub/internal/app/services"
	"github.com/emreo/learnhub/internal/pkg/apperrors"
)

type stubCourseService struct {
	listFn   func(ctx context.Context) ([]dto.CourseResponse, error)
	detailFn func(ctx context.Context, courseID int64, userID *int64) (*dto.CourseDetailResponse, error)
}

func (s *stubCourseService) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	return s.listFn(ctx)
}

func (s *stubCourseService) GetCourseDetail(ctx context.Context, courseID int64, userID *int64) (*dto.CourseDetailResponse, error) {
	return s.detailFn(ctx, courseID, userID)
}

type stubEnrollmentService struct {
	enrollFn func(ctx context.Context, userID, courseID int64) (bool, error)
}

func (s *stubEnrollmentService) Enroll(ctx context.Context, userID, courseID int64) (bool, error) {
	return s.enrollFn(ctx, userID, courseID)
}

func newTestRouter(cs services.CourseService, es services.EnrollmentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router, controllers.NewCourseController(cs), controllers.NewEnrollmentController(es))
	return router
}

func strPtr(s string) *string { return &s }

func TestGetCourses(t *testing.T) {
	t.Run("returns every course with instructor name", func(t *testing.T) {
		cs := &stubCourseService{
			listFn: func(_ context.Context) ([]dto.CourseResponse, error) {
				return []dto.CourseResponse{
					{ID: 101, Title: "Introduction to SQL and Relational Databases", Description: strPtr("d"), InstructorName: "Dr. Aris Patel"},
					{ID: 102, Title: "Python Web Development with Flask", Description: strPtr("d"), InstructorName: "Prof. Lin Wang"},
				}, nil
			},
		}
		router := newTestRouter(cs, &stubEnrollmentService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []dto.CourseResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		for _, course := range got {
			require.NotEmpty(t, course.InstructorName)
		}
	})

	t.Run("store failure yields 500 with the underlying message", func(t *testing.T) {
		cs := &stubCourseService{
			listFn: func(_ context.Context) ([]dto.CourseResponse, error) {
				return nil, errors.New("connection refused")
			},
		}
		router := newTestRouter(cs, &stubEnrollmentService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/courses", nil))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "connection refused")
	})
}

func TestGetCourseByID(t *testing.T) {
	detail := &dto.CourseDetailResponse{
		ID:             101,
		Title:          "Introduction to SQL and Relational Databases",
		InstructorName: "Dr. Aris Patel",
		Lessons: []dto.LessonResponse{
			{ID: 1, Title: "What is a Database?"},
			{ID: 2, Title: "SQL Basic Queries"},
		},
	}

	t.Run("without user_id the flag stays false", func(t *testing.T) {
		cs := &stubCourseService{
			detailFn: func(_ context.Context, courseID int64, userID *int64) (*dto.CourseDetailResponse, error) {
				require.Equal(t, int64(101), courseID)
				require.Nil(t, userID)
				return detail, nil
			},
		}
		router := newTestRouter(cs, &stubEnrollmentService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/course/101", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got dto.CourseDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.False(t, got.IsEnrolled)
		require.Len(t, got.Lessons, 2)
	})

	t.Run("user_id is forwarded to the service", func(t *testing.T) {
		enrolled := *detail
		enrolled.IsEnrolled = true
		cs := &stubCourseService{
			detailFn: func(_ context.Context, _ int64, userID *int64) (*dto.CourseDetailResponse, error) {
				require.NotNil(t, userID)
				require.Equal(t, int64(4), *userID)
				return &enrolled, nil
			},
		}
		router := newTestRouter(cs, &stubEnrollmentService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/course/101?user_id=4", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got dto.CourseDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.True(t, got.IsEnrolled)
	})

	t.Run("non-numeric user_id is treated as absent", func(t *testing.T) {
		cs := &stubCourseService{
			detailFn: func(_ context.Context, _ int64, userID *int64) (*dto.CourseDetailResponse, error) {
				require.Nil(t, userID)
				return detail, nil
			},
		}
		router := newTestRouter(cs, &stubEnrollmentService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/course/101?user_id=abc", nil))

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown course yields 404", func(t *testing.T) {
		cs := &stubCourseService{
			detailFn: func(_ context.Context, _ int64, _ *int64) (*dto.CourseDetailResponse, error) {
				return nil, apperrors.ErrCourseNotFound
			},
		}
		router := newTestRouter(cs, &stubEnrollmentService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/course/999", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"error":"Course not found"}`, rec.Body.String())
	})

	t.Run("non-numeric course id yields 404 without a service call", func(t *testing.T) {
		cs := &stubCourseService{
			detailFn: func(_ context.Context, _ int64, _ *int64) (*dto.CourseDetailResponse, error) {
				t.Fatal("service must not be called")
				return nil, nil
			},
		}
		router := newTestRouter(cs, &stubEnrollmentService{})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/course/abc", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
