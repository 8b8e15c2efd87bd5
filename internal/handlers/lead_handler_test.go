package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/homez-ar/api/internal/logger"
	"github.com/homez-ar/api/internal/middleware"
	"github.com/homez-ar/api/internal/models"
	"github.com/homez-ar/api/internal/repository"
	"github.com/homez-ar/api/internal/services"
)

// MockLeadService is a mock implementation of services.LeadService for testing
type MockLeadService struct {
	mock.Mock
}

func (m *MockLeadService) CreateContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	args := m.Called(ctx, contact)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *MockLeadService) ListContacts(ctx context.Context, page, limit int, status string) (*services.ContactPage, error) {
	args := m.Called(ctx, page, limit, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.ContactPage), args.Error(1)
}

func (m *MockLeadService) UpdateContactStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockLeadService) CreateAppraisal(ctx context.Context, appraisal *models.Appraisal) (*models.Appraisal, error) {
	args := m.Called(ctx, appraisal)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appraisal), args.Error(1)
}

func (m *MockLeadService) ListAppraisals(ctx context.Context) ([]models.Appraisal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Appraisal), args.Error(1)
}

func setupLeadTestRouter(service services.LeadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.New("test")))

	handler := NewLeadHandler(service)
	v1 := router.Group("/api/v1")
	{
		v1.POST("/contacts", handler.CreateContact)
		v1.POST("/appraisals", handler.CreateAppraisal)
		// Admin routes registered without auth middleware; the guard itself
		// is covered by the auth handler tests.
		v1.GET("/admin/contacts", handler.ListContacts)
		v1.PATCH("/admin/contacts/:id", handler.UpdateContactStatus)
		v1.GET("/admin/appraisals", handler.ListAppraisals)
	}

	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCreateContactEndpoint_Success(t *testing.T) {
	// Arrange
	mockService := new(MockLeadService)
	router := setupLeadTestRouter(mockService)

	mockService.On("CreateContact", mock.Anything, mock.AnythingOfType("*models.Contact")).
		Return(&models.Contact{ID: "c-1", Status: models.LeadStatusNew}, nil)

	// Act
	w := postJSON(router, "/api/v1/contacts",
		`{"name": "Juan", "email": "juan@example.com", "message": "Me interesa"}`)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "c-1")
	mockService.AssertExpectations(t)
}

func TestCreateContactEndpoint_MissingFields(t *testing.T) {
	// Arrange
	mockService := new(MockLeadService)
	router := setupLeadTestRouter(mockService)

	// Act: no message
	w := postJSON(router, "/api/v1/contacts",
		`{"name": "Juan", "email": "juan@example.com"}`)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateContact")
}

func TestCreateContactEndpoint_BadEmail(t *testing.T) {
	// Arrange
	mockService := new(MockLeadService)
	router := setupLeadTestRouter(mockService)

	// Act
	w := postJSON(router, "/api/v1/contacts",
		`{"name": "Juan", "email": "not-an-email", "message": "Hola"}`)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateContact")
}

func TestCreateAppraisalEndpoint_Success(t *testing.T) {
	// Arrange
	mockService := new(MockLeadService)
	router := setupLeadTestRouter(mockService)

	mockService.On("CreateAppraisal", mock.Anything, mock.AnythingOfType("*models.Appraisal")).
		Return(&models.Appraisal{ID: "ap-1"}, nil)

	// Act
	w := postJSON(router, "/api/v1/appraisals", `{
		"name": "Ana", "phone": "11-5555-0000", "email": "ana@example.com",
		"address": "Av. Cabildo 2000", "neighborhood": "Belgrano",
		"typology": "departamento", "operation": "venta"
	}`)

	// Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	mockService.AssertExpectations(t)
}

func TestCreateAppraisalEndpoint_WhitelistRejection(t *testing.T) {
	// Arrange
	mockService := new(MockLeadService)
	router := setupLeadTestRouter(mockService)

	mockService.On("CreateAppraisal", mock.Anything, mock.Anything).
		Return(nil, services.ErrInvalidTypology)

	// Act
	w := postJSON(router, "/api/v1/appraisals", `{
		"name": "Ana", "phone": "11-5555-0000", "email": "ana@example.com",
		"address": "Av. Cabildo 2000", "neighborhood": "Belgrano",
		"typology": "castillo", "operation": "venta"
	}`)

	// Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListContactsEndpoint_PassesPagingAndStatus(t *testing.T) {
	// Arrange
	mockService := new(MockLeadService)
	router := setupLeadTestRouter(mockService)

	mockService.On("ListContacts", mock.Anything, 2, 5, "new").
		Return(&services.ContactPage{
			Contacts: []models.Contact{{ID: "c-1"}},
			Page:     2,
			Limit:    5,
			Total:    11,
		}, nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contacts?page=2&limit=5&status=new", nil)
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestUpdateContactStatusEndpoint_NotFound(t *testing.T) {
	// Arrange
	mockService := new(MockLeadService)
	router := setupLeadTestRouter(mockService)

	mockService.On("UpdateContactStatus", mock.Anything, "ghost", "read").
		Return(repository.ErrLeadNotFound)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/contacts/ghost",
		bytes.NewBufferString(`{"status": "read"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateContactStatusEndpoint_Success(t *testing.T) {
	// Arrange
	mockService := new(MockLeadService)
	router := setupLeadTestRouter(mockService)

	mockService.On("UpdateContactStatus", mock.Anything, "c-1", "archived").Return(nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/contacts/c-1",
		bytes.NewBufferString(`{"status": "archived"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "archived")
	mockService.AssertExpectations(t)
}

func TestListAppraisalsEndpoint(t *testing.T) {
	// Arrange
	mockService := new(MockLeadService)
	router := setupLeadTestRouter(mockService)

	mockService.On("ListAppraisals", mock.Anything).
		Return([]models.Appraisal{{ID: "ap-1"}, {ID: "ap-2"}}, nil)

	// Act
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/appraisals", nil)
	router.ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
	mockService.AssertExpectations(t)
}
