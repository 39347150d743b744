package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"customer-matrix/internal/dto"
	"customer-matrix/internal/service"
	pkgerrors "customer-matrix/pkg/errors"
	"customer-matrix/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ═══════════════════════════════════════════════════════════
// Mock Services
// ═══════════════════════════════════════════════════════════

// ── Mock LocationService ──

type mockLocationService struct {
	createResult *dto.LocationResponse
	createErr    error
	getResult    *dto.LocationResponse
	getErr       error
	listResult   []dto.LocationResponse
	listErr      error
	updateResult *dto.LocationResponse
	updateErr    error
	deleteErr    error

	createCalls int
}

func (m *mockLocationService) Create(_ context.Context, _ *dto.CreateLocationRequest) (*dto.LocationResponse, error) {
	m.createCalls++
	return m.createResult, m.createErr
}
func (m *mockLocationService) GetByID(_ context.Context, _ string) (*dto.LocationResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockLocationService) List(_ context.Context) ([]dto.LocationResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockLocationService) Update(_ context.Context, _ string, _ *dto.UpdateLocationRequest) (*dto.LocationResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockLocationService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock BaseService ──

type mockBaseService struct {
	createResult *dto.BaseResponse
	createErr    error
	getResult    *dto.BaseResponse
	getErr       error
	listResult   []dto.BaseResponse
	updateResult *dto.BaseResponse
	updateErr    error
	deleteErr    error

	gotPopulate bool
}

func (m *mockBaseService) Create(_ context.Context, _ *dto.CreateBaseRequest) (*dto.BaseResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockBaseService) GetByID(_ context.Context, _ string, populate bool) (*dto.BaseResponse, error) {
	m.gotPopulate = populate
	return m.getResult, m.getErr
}
func (m *mockBaseService) List(_ context.Context, populate bool) ([]dto.BaseResponse, error) {
	m.gotPopulate = populate
	return m.listResult, nil
}
func (m *mockBaseService) Update(_ context.Context, _ string, _ *dto.UpdateBaseRequest) (*dto.BaseResponse, error) {
	return m.updateResult, m.updateErr
}
func (m *mockBaseService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock UnitService ──

type mockUnitService struct {
	createResult *dto.UnitResponse
	createErr    error
	getResult    *dto.UnitResponse
	getErr       error
	deleteErr    error
}

func (m *mockUnitService) Create(_ context.Context, _ *dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	return m.createResult, m.createErr
}
func (m *mockUnitService) GetByID(_ context.Context, _ string, _ bool) (*dto.UnitResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockUnitService) List(_ context.Context, _ bool) ([]dto.UnitResponse, error) {
	return []dto.UnitResponse{}, nil
}
func (m *mockUnitService) Update(_ context.Context, _ string, _ *dto.UpdateUnitRequest) (*dto.UnitResponse, error) {
	return nil, errors.New("not used")
}
func (m *mockUnitService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

// ── Mock ExportService ──

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportRecords(_ context.Context) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ═══════════════════════════════════════════════════════════
// Test Helpers
// ═══════════════════════════════════════════════════════════

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseError(w *httptest.ResponseRecorder) response.ErrorBody {
	var resp response.ErrorBody
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

func serve(r *gin.Engine, method, path string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// ═══════════════════════════════════════════════════════════
// LocationHandler Tests
// ═══════════════════════════════════════════════════════════

func TestLocationHandler_Create_Success(t *testing.T) {
	mock := &mockLocationService{createResult: &dto.LocationResponse{ID: "loc-1", Name: "Okinawa"}}
	h := NewLocationHandler(mock)

	r := gin.New()
	r.POST("/locations", h.CreateLocation)
	w := serve(r, "POST", "/locations", jsonBody(map[string]string{"name": "Okinawa"}))

	if w.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", w.Code)
	}
	var got dto.LocationResponse
	json.Unmarshal(w.Body.Bytes(), &got)
	if got.ID != "loc-1" || got.Name != "Okinawa" {
		t.Errorf("响应应为记录本身: %s", w.Body.String())
	}
}

func TestLocationHandler_Create_MissingName(t *testing.T) {
	mock := &mockLocationService{}
	h := NewLocationHandler(mock)

	r := gin.New()
	r.POST("/locations", h.CreateLocation)
	w := serve(r, "POST", "/locations", jsonBody(map[string]string{}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseError(w); resp.Message != "Name is required" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
	if mock.createCalls != 0 {
		t.Error("校验失败时不应调用 Service")
	}
}

func TestLocationHandler_Create_BadJSON(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{})

	r := gin.New()
	r.POST("/locations", h.CreateLocation)
	w := serve(r, "POST", "/locations", strings.NewReader("invalid json"))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestLocationHandler_Create_ServiceRequiredField(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{createErr: &service.RequiredFieldError{Field: "Name"}})

	r := gin.New()
	r.POST("/locations", h.CreateLocation)
	w := serve(r, "POST", "/locations", jsonBody(map[string]string{"name": "   "}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestLocationHandler_Create_Duplicate(t *testing.T) {
	dup := &service.WriteError{Err: errors.New("E11000 duplicate key error")}
	h := NewLocationHandler(&mockLocationService{createErr: dup})

	r := gin.New()
	r.POST("/locations", h.CreateLocation)
	w := serve(r, "POST", "/locations", jsonBody(map[string]string{"name": "Okinawa"}))

	if w.Code != http.StatusNotImplemented {
		t.Errorf("expected 501, got %d", w.Code)
	}
	resp := parseError(w)
	if resp.Code != response.CodeStoreWrite || resp.Message != "Store Error: E11000 duplicate key error" {
		t.Errorf("unexpected body: %+v", resp)
	}
}

func TestLocationHandler_Get_NotFound(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{getErr: service.ErrLocationNotFound})

	r := gin.New()
	r.GET("/locations/:id", h.GetLocation)
	w := serve(r, "GET", "/locations/missing", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseError(w); resp.Message != "Location not found" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestLocationHandler_List(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{listResult: []dto.LocationResponse{}})

	r := gin.New()
	r.GET("/locations", h.ListLocations)
	w := serve(r, "GET", "/locations", nil)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("空集合应返回 []，实际: %s", w.Body.String())
	}
}

func TestLocationHandler_List_StoreFailure(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{listErr: errors.New("connection reset")})

	r := gin.New()
	r.GET("/locations", h.ListLocations)
	w := serve(r, "GET", "/locations", nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
	if resp := parseError(w); resp.Message != "Server Error: connection reset" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestLocationHandler_Update_InternalOnStoreFailure(t *testing.T) {
	h := NewLocationHandler(&mockLocationService{updateErr: errors.New("write conflict")})

	r := gin.New()
	r.PUT("/locations/:id", h.UpdateLocation)
	w := serve(r, "PUT", "/locations/loc-1", jsonBody(map[string]string{"name": "x"}))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestLocationHandler_Delete(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"成功", nil, http.StatusOK, `{"message":"Location deleted successfully"}`},
		{"不存在", service.ErrLocationNotFound, http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewLocationHandler(&mockLocationService{deleteErr: tt.err})
			r := gin.New()
			r.DELETE("/locations/:id", h.DeleteLocation)
			w := serve(r, "DELETE", "/locations/loc-1", nil)

			if w.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, w.Code)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("unexpected body: %s", w.Body.String())
			}
		})
	}
}

// ═══════════════════════════════════════════════════════════
// BaseHandler Tests
// ═══════════════════════════════════════════════════════════

func TestBaseHandler_Create_MissingLocationName(t *testing.T) {
	h := NewBaseHandler(&mockBaseService{})

	r := gin.New()
	r.POST("/bases", h.CreateBase)
	w := serve(r, "POST", "/bases", jsonBody(map[string]string{"name": "Camp Foster"}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseError(w); resp.Message != "LocationName is required" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestBaseHandler_Create_LocationNotFound(t *testing.T) {
	h := NewBaseHandler(&mockBaseService{createErr: service.ErrLocationNotFound})

	r := gin.New()
	r.POST("/bases", h.CreateBase)
	w := serve(r, "POST", "/bases", jsonBody(dto.CreateBaseRequest{Name: "Camp Foster", LocationName: "Nowhere"}))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseError(w); resp.Message != "Location not found" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestBaseHandler_Create_StoreError(t *testing.T) {
	writeErr := &service.WriteError{Err: errors.New("disk full")}
	h := NewBaseHandler(&mockBaseService{createErr: writeErr})

	r := gin.New()
	r.POST("/bases", h.CreateBase)
	w := serve(r, "POST", "/bases", jsonBody(dto.CreateBaseRequest{Name: "Camp Foster", LocationName: "Okinawa"}))

	if w.Code != http.StatusNotImplemented {
		t.Errorf("expected 501, got %d", w.Code)
	}
}

func TestBaseHandler_Get_Populate(t *testing.T) {
	mock := &mockBaseService{getResult: &dto.BaseResponse{
		ID: "b1", Name: "Camp Foster", LocationName: "Okinawa",
		Location: &dto.LocationResponse{ID: "l1", Name: "Okinawa"},
	}}
	h := NewBaseHandler(mock)

	r := gin.New()
	r.GET("/bases/:id", h.GetBase)
	w := serve(r, "GET", "/bases/b1?populate=true", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !mock.gotPopulate {
		t.Error("populate=true 未传递到 Service")
	}
	if !strings.Contains(w.Body.String(), `"location":{"_id":"l1"`) {
		t.Errorf("响应缺少解析后的地点: %s", w.Body.String())
	}
}

func TestBaseHandler_List_InvalidPopulate(t *testing.T) {
	h := NewBaseHandler(&mockBaseService{})

	r := gin.New()
	r.GET("/bases", h.ListBases)
	w := serve(r, "GET", "/bases?populate=maybe", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestBaseHandler_List_OmitsLocationWithoutPopulate(t *testing.T) {
	mock := &mockBaseService{listResult: []dto.BaseResponse{{ID: "b1", Name: "Camp Foster", LocationName: "Okinawa"}}}
	h := NewBaseHandler(mock)

	r := gin.New()
	r.GET("/bases", h.ListBases)
	w := serve(r, "GET", "/bases", nil)

	if mock.gotPopulate {
		t.Error("默认不应 populate")
	}
	if strings.Contains(w.Body.String(), `"location"`) {
		t.Errorf("未 populate 时不应出现 location 字段: %s", w.Body.String())
	}
}

func TestBaseHandler_Delete_NotFound(t *testing.T) {
	h := NewBaseHandler(&mockBaseService{deleteErr: service.ErrBaseNotFound})

	r := gin.New()
	r.DELETE("/bases/:id", h.DeleteBase)
	w := serve(r, "DELETE", "/bases/missing", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseError(w); resp.Message != "Base not found" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

// ═══════════════════════════════════════════════════════════
// UnitHandler Tests
// ═══════════════════════════════════════════════════════════

func TestUnitHandler_Create_BaseNotFound(t *testing.T) {
	h := NewUnitHandler(&mockUnitService{createErr: service.ErrBaseNotFound})

	r := gin.New()
	r.POST("/units", h.CreateUnit)
	w := serve(r, "POST", "/units", jsonBody(dto.CreateUnitRequest{Name: "3rd MLG", BaseName: "Nowhere"}))

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
	if resp := parseError(w); resp.Message != "Base not found" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestUnitHandler_Create_NameTooLong(t *testing.T) {
	h := NewUnitHandler(&mockUnitService{})

	r := gin.New()
	r.POST("/units", h.CreateUnit)
	w := serve(r, "POST", "/units", jsonBody(dto.CreateUnitRequest{Name: strings.Repeat("x", 101), BaseName: "Camp Foster"}))

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if resp := parseError(w); resp.Message != "Name must be at most 100 characters" {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestUnitHandler_Create_DuplicateSurfacesRawText(t *testing.T) {
	raw := errors.New("duplicate key: " + pkgerrors.ErrDuplicate.Error())
	h := NewUnitHandler(&mockUnitService{createErr: &service.WriteError{Err: raw}})

	r := gin.New()
	r.POST("/units", h.CreateUnit)
	w := serve(r, "POST", "/units", jsonBody(dto.CreateUnitRequest{Name: "3rd MLG", BaseName: "Camp Foster"}))

	if w.Code != http.StatusNotImplemented {
		t.Errorf("expected 501, got %d", w.Code)
	}
	if resp := parseError(w); !strings.HasPrefix(resp.Message, "Store Error: ") {
		t.Errorf("unexpected message: %q", resp.Message)
	}
}

func TestUnitHandler_Get_NotFound(t *testing.T) {
	h := NewUnitHandler(&mockUnitService{getErr: service.ErrUnitNotFound})

	r := gin.New()
	r.GET("/units/:id", h.GetUnit)
	w := serve(r, "GET", "/units/missing", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestUnitHandler_Delete(t *testing.T) {
	h := NewUnitHandler(&mockUnitService{})

	r := gin.New()
	r.DELETE("/units/:id", h.DeleteUnit)
	w := serve(r, "DELETE", "/units/u1", nil)

	if w.Body.String() != `{"message":"Unit deleted successfully"}` {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

// ═══════════════════════════════════════════════════════════
// ExportHandler Tests
// ═══════════════════════════════════════════════════════════

func TestExportHandler_ExportRecords(t *testing.T) {
	h := NewExportHandler(&mockExportService{buf: bytes.NewBufferString("xlsx"), filename: "records_20240309.xlsx"})

	r := gin.New()
	r.GET("/export/records", h.ExportRecords)
	w := serve(r, "GET", "/export/records", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Header().Get("Content-Type"); got != xlsxContentType {
		t.Errorf("unexpected content type: %s", got)
	}
	if got := w.Header().Get("Content-Disposition"); !strings.Contains(got, "records_20240309.xlsx") {
		t.Errorf("unexpected disposition: %s", got)
	}
}

func TestExportHandler_ExportRecords_Failure(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportGenerateFail})

	r := gin.New()
	r.GET("/export/records", h.ExportRecords)
	w := serve(r, "GET", "/export/records", nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}
