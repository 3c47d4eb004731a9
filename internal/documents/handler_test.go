package documents

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(sink ArtifactSink) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(newTestService(sink), nil).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_RenderInspection(t *testing.T) {
	w := doJSON(t, newTestRouter(nil), http.MethodPost, "/api/v1/documents/inspections/pdf", sampleInspection())

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "Inspeccion_DC1_2024-03-01_morning.pdf")
	assert.Equal(t, "2", w.Header().Get("X-Page-Count"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func TestHandler_RenderWorkPermit_Store(t *testing.T) {
	sink := NewMemorySink()
	w := doJSON(t, newTestRouter(sink), http.MethodPost, "/api/v1/documents/work-permits/pdf?store=true", samplePermit())

	require.Equal(t, http.StatusCreated, w.Code)
	var artifact Artifact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &artifact))
	assert.Equal(t, "memory://Permiso_Trabajo_P-001_2024-03-01.pdf", artifact.Location)
	assert.Equal(t, 1, sink.Len())
}

func TestHandler_ValidationError(t *testing.T) {
	p := samplePermit()
	p.Name = ""
	w := doJSON(t, newTestRouter(nil), http.MethodPost, "/api/v1/documents/work-permits/pdf", p)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body struct {
		Error   string             `json:"error"`
		Details []*ValidationError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Details, 1)
	assert.Equal(t, "name", body.Details[0].Field)
	assert.Equal(t, ErrCodeRequired, body.Details[0].Code)
}

func TestHandler_MalformedBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/documents/inspections/pdf", strings.NewReader(`{"checklist":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	newTestRouter(nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_StoreWithoutSink(t *testing.T) {
	w := doJSON(t, newTestRouter(nil), http.MethodPost, "/api/v1/documents/inspections/pdf?store=1", sampleInspection())

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_ChecklistTemplate(t *testing.T) {
	w := doJSON(t, newTestRouter(nil), http.MethodGet, "/api/v1/documents/checklist-template", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Items []TemplateItem `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Items, 17)
	assert.Equal(t, CategoryClimate, body.Items[0].Category)
}

func TestHandler_SuggestedShift(t *testing.T) {
	r := newTestRouter(nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/documents/suggested-shift?hour=14", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"shift":"afternoon","label":"Tarde"}`, w.Body.String())

	for _, q := range []string{"", "?hour=24", "?hour=noon"} {
		w := doJSON(t, r, http.MethodGet, "/api/v1/documents/suggested-shift"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}
