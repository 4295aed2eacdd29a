package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/NguyenMaiPhuong311/ISD-Final/internal/dto"
	"github.com/NguyenMaiPhuong311/ISD-Final/internal/service"
	"github.com/NguyenMaiPhuong311/ISD-Final/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// --- Mock GradeService ---

type mockGradeService struct {
	createResult *dto.GradeResponse
	createErr    error
	getResult    *dto.GradeResponse
	getErr       error
	listResult   []dto.GradeResponse
	listTotal    int64
	listErr      error
	deleteErr    error
}

func (m *mockGradeService) Create(_ context.Context, _ *dto.CreateGradeRequest) (*dto.GradeResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockGradeService) GetByID(_ context.Context, _ int) (*dto.GradeResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockGradeService) Update(_ context.Context, _ int, _ *dto.UpdateGradeRequest) (*dto.GradeResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockGradeService) Delete(_ context.Context, _ int) error { return m.deleteErr }
func (m *mockGradeService) List(_ context.Context, _ int) ([]dto.GradeResponse, int64, error) {
	return m.listResult, m.listTotal, m.listErr
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) response.Response {
	t.Helper()
	var env response.Response
	if err := json.Unmarshal(body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

func TestGradeGet_NotFoundMapsTo404(t *testing.T) {
	h := NewGradeHandler(&mockGradeService{getErr: service.ErrGradeNotFound}, 10)

	r := gin.New()
	r.GET("/grades/:id", h.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/grades/7", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if env := decodeEnvelope(t, w.Body); env.Code != CodeNotFound {
		t.Errorf("code = %d, want %d", env.Code, CodeNotFound)
	}
}

func TestGradeGet_BadIDMapsTo400(t *testing.T) {
	h := NewGradeHandler(&mockGradeService{}, 10)

	r := gin.New()
	r.GET("/grades/:id", h.Get)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/grades/abc", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGradeCreate_InvalidBody(t *testing.T) {
	h := NewGradeHandler(&mockGradeService{}, 10)

	r := gin.New()
	r.POST("/grades", h.Create)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/grades", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if env := decodeEnvelope(t, w.Body); env.Code != CodeInvalidParam {
		t.Errorf("code = %d, want %d", env.Code, CodeInvalidParam)
	}
}

func TestGradeList_PaginationEnvelope(t *testing.T) {
	svc := &mockGradeService{
		listResult: []dto.GradeResponse{{ID: 1, Level: 1}, {ID: 2, Level: 2}},
		listTotal:  12,
	}
	h := NewGradeHandler(svc, 10)

	r := gin.New()
	r.GET("/grades", h.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/grades?page=2", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var env struct {
		Code int `json:"code"`
		Data struct {
			Pagination response.Pagination `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	p := env.Data.Pagination
	if p.Page != 2 || p.Total != 12 || p.PageSize != 10 || p.TotalPages != 2 {
		t.Errorf("pagination = %+v", p)
	}
}

func TestCallerIdentity_MissingAuthContext(t *testing.T) {
	r := gin.New()
	r.GET("/whoami", func(c *gin.Context) {
		if _, _, ok := callerIdentity(c); !ok {
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}
