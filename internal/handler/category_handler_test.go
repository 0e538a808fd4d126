package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/centavo/centavo-backend/internal/domain"
	"github.com/centavo/centavo-backend/internal/service"
	"github.com/centavo/centavo-backend/internal/testutil"
	"github.com/labstack/echo/v4"
)

func newCategoryHandlerForTest() (*CategoryHandler, *testutil.MockCategoryRepository) {
	categoryRepo := testutil.NewMockCategoryRepository()
	return NewCategoryHandler(service.NewCategoryService(categoryRepo)), categoryRepo
}

func TestCreateCategoryEndpoint_Success(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandlerForTest()

	reqBody := `{"name": "Groceries", "type": "expense", "color": "#e15759"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response domain.Category
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if response.Name != "Groceries" || response.Color != "#e15759" {
		t.Errorf("Unexpected category %+v", response)
	}
}

func TestCreateCategoryEndpoint_Duplicate(t *testing.T) {
	e := echo.New()
	handler, categoryRepo := newCategoryHandlerForTest()
	categoryRepo.AddCategory(&domain.Category{Name: "Groceries", Type: domain.CategoryTypeExpense})

	reqBody := `{"name": "Groceries", "type": "expense"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/categories", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.CreateCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", rec.Code)
	}

	var problem ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("Failed to unmarshal problem: %v", err)
	}
	if problem.Type != ErrorTypeConflict {
		t.Errorf("Expected conflict problem type, got %s", problem.Type)
	}
}

func TestDeleteCategoryEndpoint_InUse(t *testing.T) {
	e := echo.New()
	handler, categoryRepo := newCategoryHandlerForTest()
	category := categoryRepo.AddCategory(&domain.Category{Name: "Groceries", Type: domain.CategoryTypeExpense})
	categoryRepo.InUse[category.ID] = true

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/categories/1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.DeleteCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for a category in use, got %d", rec.Code)
	}
}

func TestGetCategoryEndpoint_InvalidID(t *testing.T) {
	e := echo.New()
	handler, _ := newCategoryHandlerForTest()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/categories/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	if err := handler.GetCategory(c); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}
