package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driversed/driversed-api/internal/adapter/api/dto"
	"github.com/driversed/driversed-api/internal/adapter/repository"
	"github.com/driversed/driversed-api/internal/config"
	"github.com/driversed/driversed-api/pkg/logger"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.InMemoryCertificateRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DefaultInstructor:      "Rihaad",
		CertificateNumPrefix:   "DRA",
		DefaultCertificateType: "Driver Risk Assessment",
		ExpiryWindowDays:       30,
		TrailingMonths:         12,
		RecentCount:            5,
	}
	repo := repository.NewInMemoryCertificateRepository()
	ctrl := NewCertificateController(repo, cfg, logger.NewLogger())

	// Routes registered without the auth middleware so the tests exercise
	// the controller behaviour in isolation
	router := gin.New()
	router.GET("/certificates", ctrl.List)
	router.GET("/certificates/verify/:id", ctrl.Verify)
	router.GET("/certificates/:id", ctrl.Get)
	router.POST("/certificates", ctrl.Create)
	router.PUT("/certificates/:id", ctrl.Update)
	router.DELETE("/certificates/:id", ctrl.Delete)
	router.POST("/certificates/:id/revoke", ctrl.Revoke)
	router.POST("/certificates/:id/reinstate", ctrl.Reinstate)
	return router, repo
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func createCertificate(t *testing.T, router *gin.Engine, body map[string]any) dto.CertificateResponse {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/certificates", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp dto.CertificateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestCertificateControllerCreate(t *testing.T) {
	router, _ := newTestRouter(t)

	t.Run("issues with defaults", func(t *testing.T) {
		resp := createCertificate(t, router, map[string]any{
			"name":    "Miles",
			"surname": "White",
			"city":    "Cape Town",
			"marks":   "94",
		})

		assert.NotEmpty(t, resp.ID)
		assert.Contains(t, resp.CertificateID, "DRA-")
		assert.Equal(t, "Rihaad", resp.Instructor)
		assert.Equal(t, "Driver Risk Assessment", resp.CertificateType)
		assert.Equal(t, 94.0, resp.Result)
		assert.True(t, resp.IsValid)
		assert.Equal(t, "valid", resp.Status)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/certificates", map[string]any{
			"name": "Miles",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects out-of-range marks", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/certificates", map[string]any{
			"name":    "Miles",
			"surname": "White",
			"city":    "Cape Town",
			"marks":   "150",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var errResp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
		assert.Contains(t, errResp.Details, "marks")
	})
}

func TestCertificateControllerGet(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createCertificate(t, router, map[string]any{
		"name": "Miles", "surname": "White", "city": "Cape Town", "marks": "94",
	})

	rec := doJSON(t, router, http.MethodGet, "/certificates/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CertificateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, created.ID, resp.ID)

	rec = doJSON(t, router, http.MethodGet, "/certificates/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCertificateControllerVerify(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createCertificate(t, router, map[string]any{
		"name": "Miles", "surname": "White", "city": "Cape Town", "marks": "94",
	})

	t.Run("by id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/certificates/verify/"+created.ID, nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("by certificate number", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/certificates/verify/"+created.CertificateID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp dto.CertificateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("unknown", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/certificates/verify/DRA-1999-000000", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCertificateControllerUpdate(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createCertificate(t, router, map[string]any{
		"name": "Miles", "surname": "White", "city": "Cape Town", "marks": "94",
	})

	t.Run("applies partial update", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/certificates/"+created.ID, map[string]any{
			"city":  "Durban",
			"marks": "81",
		})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp dto.CertificateResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Durban", resp.City)
		assert.Equal(t, 81.0, resp.Result)
		assert.Equal(t, "Miles", resp.Name)
		assert.Equal(t, created.CertificateID, resp.CertificateID)
	})

	t.Run("rejects invalid fields", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/certificates/"+created.ID, map[string]any{
			"marks": "120",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPut, "/certificates/missing", map[string]any{
			"city": "Durban",
		})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCertificateControllerDelete(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createCertificate(t, router, map[string]any{
		"name": "Miles", "surname": "White", "city": "Cape Town", "marks": "94",
	})

	rec := doJSON(t, router, http.MethodDelete, "/certificates/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/certificates/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/certificates/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCertificateControllerRevokeReinstate(t *testing.T) {
	router, _ := newTestRouter(t)
	created := createCertificate(t, router, map[string]any{
		"name": "Miles", "surname": "White", "city": "Cape Town", "marks": "94",
	})

	rec := doJSON(t, router, http.MethodPost, "/certificates/"+created.ID+"/revoke", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CertificateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.IsValid)
	assert.Equal(t, "invalid", resp.Status)

	rec = doJSON(t, router, http.MethodPost, "/certificates/"+created.ID+"/reinstate", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsValid)
	assert.Equal(t, "valid", resp.Status)
}

func TestCertificateControllerList(t *testing.T) {
	router, _ := newTestRouter(t)
	for _, name := range []string{"Miles", "Sipho", "Anna"} {
		createCertificate(t, router, map[string]any{
			"name": name, "surname": "White", "city": "Cape Town", "marks": "80",
		})
	}

	rec := doJSON(t, router, http.MethodGet, "/certificates?page=1&page_size=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.CertificateListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Certificates, 2)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 2, resp.PageSize)
}
