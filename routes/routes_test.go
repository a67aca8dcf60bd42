package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestGenerate(t *testing.T) {
	router := Router()

	w := post(t, router, "/generate", `{
		"server_config": {"ip": "10.0.0.5"},
		"user_config": {"name": "Alice", "ext": "1001", "password": "s3cret"},
		"attendants": [{"name": "A", "ext": "100"}, {"name": "B", "ext": "200"}]
	}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/xml", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=1001.cfg", w.Header().Get("Content-Disposition"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, `<?xml version="1.0" encoding="utf-8" standalone="yes"?>`+"\n<polycomConfig>\n"))
	assert.Contains(t, body, `attendant.resourceList.2.label="B"`)
	assert.NotContains(t, body, `attendant.resourceList.3.`)
}

func TestGenerateDefaults(t *testing.T) {
	w := post(t, Router(), "/generate", `{}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=polycom.cfg", w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Body.String(), `up.Pagination.enabled="1"`)
	assert.Contains(t, w.Body.String(), `tcpIpApp.sntp.address="pool.ntp.org"`)
}

func TestGenerateIsIdempotent(t *testing.T) {
	router := Router()
	payload := `{"user_config": {"ext": "1001"}, "phone_settings": {"pagination": "disabled"}}`

	first := post(t, router, "/generate", payload)
	second := post(t, router, "/generate", payload)

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
	assert.Contains(t, first.Body.String(), `up.Pagination.enabled="0"`)
	assert.Contains(t, first.Body.String(), `reg.1.label="1001"`)
}

func TestGenerateMalformedAttendants(t *testing.T) {
	w := post(t, Router(), "/generate", `{"attendants": "100"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Equal(t, "malformed attendants: expected an array", w.Body.String())
}

func TestExportPool(t *testing.T) {
	w := post(t, Router(), "/export_pool", `{"users": [{"x": 1}]}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=user_pool.json", w.Header().Get("Content-Disposition"))
	assert.Equal(t, "[\n    {\n        \"x\": 1\n    }\n]", w.Body.String())

	var users []map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Equal(t, []map[string]int{{"x": 1}}, users)
}

func TestImportPool(t *testing.T) {
	w := post(t, Router(), "/import_pool", `[{"name": "Alice", "ext": "1001"}, {"name": "Bob", "ext": "x"}]`)

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Users []struct {
			ID  int    `json:"id"`
			Ext string `json:"ext"`
		} `json:"users"`
		Invalid []struct {
			Index int `json:"index"`
		} `json:"invalid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	require.Len(t, res.Users, 2)
	assert.Equal(t, 1, res.Users[0].ID)
	assert.Equal(t, 2, res.Users[1].ID)
	require.Len(t, res.Invalid, 1)
	assert.Equal(t, 1, res.Invalid[0].Index)

	w = post(t, Router(), "/import_pool", `garbage`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid JSON format")
}

func TestPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/generate", nil)
	w := httptest.NewRecorder()

	Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Body.String())
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "OK"}`, w.Body.String())
}

func TestPanicBecomesPlain500(t *testing.T) {
	router := Router()
	router.GET("/boom", func(c *gin.Context) {
		panic("builder exploded")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "builder exploded", w.Body.String())
}
