package ginerr_test

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"codeberg.org/mutker/errschema/schema"
	"codeberg.org/mutker/errschema/web"
	"codeberg.org/mutker/errschema/web/ginerr"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type detailBody struct {
	Detail []map[string]any `json:"detail"`
}

func newRouter(opts ...ginerr.Option) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ginerr.Middleware(opts...))
	return r
}

func serve(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, detailBody) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded detailBody
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestMiddlewareRendersRecords(t *testing.T) {
	r := newRouter()
	r.GET("/files", func(c *gin.Context) {
		ginerr.Abort(c,
			web.File.NotFound("report.csv", web.WithLoc(web.Key("query"), web.Key("name"))),
			nil,
		)
	})

	w, body := serve(t, r, http.MethodGet, "/files", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.Len(t, body.Detail, 1)
	assert.Equal(t, "file_error", body.Detail[0]["type"])
	assert.Equal(t, "File 'report.csv' not found.", body.Detail[0]["msg"])
	assert.Equal(t, []any{"query", "name"}, body.Detail[0]["loc"])
	assert.NotContains(t, body.Detail[0], "ui_msg")
}

func TestMiddlewareClassifiesPlainErrors(t *testing.T) {
	type order struct {
		Amount int `json:"amount"`
	}

	r := newRouter(ginerr.WithTarget(web.TargetFrontend))
	r.POST("/orders", func(c *gin.Context) {
		var req order
		if err := c.ShouldBindJSON(&req); err != nil {
			_ = c.Error(err)
			_ = c.Error(fs.ErrNotExist)
			return
		}
		c.Status(http.StatusCreated)
	})

	w, body := serve(t, r, http.MethodPost, "/orders", `{"amount":"many"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Len(t, body.Detail, 2)
	assert.Equal(t, schema.CategoryValidation.DefaultUIMsg(), body.Detail[0]["msg"])
	assert.Equal(t, schema.CategoryFile.DefaultUIMsg(), body.Detail[1]["msg"])
	assert.NotContains(t, body.Detail[0], "type")

	w, _ = serve(t, r, http.MethodPost, "/orders", `{"amount":3}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestMiddlewareLeavesWrittenResponses(t *testing.T) {
	r := newRouter()
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "done")
		_ = c.Error(errors.New("logged only"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "done", w.Body.String())
}

func TestWithMapper(t *testing.T) {
	m := schema.NewMapper(nil, nil)
	require.NoError(t, m.SetFallback(schema.CategoryDocker))

	r := newRouter(ginerr.WithMapper(m))
	r.GET("/jobs", func(c *gin.Context) {
		ginerr.Abort(c, errors.New("engine unreachable"))
	})

	w, body := serve(t, r, http.MethodGet, "/jobs", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	require.Len(t, body.Detail, 1)
	assert.Equal(t, "Docker error: engine unreachable", body.Detail[0]["msg"])
}

func TestStatusFor(t *testing.T) {
	tests := map[schema.Category]int{
		schema.CategoryValidation: http.StatusUnprocessableEntity,
		schema.CategoryValue:      http.StatusBadRequest,
		schema.CategoryParse:      http.StatusBadRequest,
		schema.CategoryDict:       http.StatusBadRequest,
		schema.CategoryFile:       http.StatusNotFound,
		schema.CategoryTimeout:    http.StatusGatewayTimeout,
		schema.CategoryDocker:     http.StatusBadGateway,
		schema.CategoryDatabase:   http.StatusInternalServerError,
		schema.CategoryRuntime:    http.StatusInternalServerError,
	}

	for c, want := range tests {
		t.Run(string(c), func(t *testing.T) {
			assert.Equal(t, want, ginerr.StatusFor(c))
		})
	}
}

func TestMiddlewareReportsBindingFailures(t *testing.T) {
	type signup struct {
		Name string `json:"name" binding:"required"`
	}

	r := newRouter()
	r.POST("/signup", func(c *gin.Context) {
		var req signup
		if err := c.ShouldBindJSON(&req); err != nil {
			ginerr.Abort(c, err)
			return
		}
		c.Status(http.StatusCreated)
	})

	w, body := serve(t, r, http.MethodPost, "/signup", `{}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Len(t, body.Detail, 1)
	assert.Equal(t, "validation_error", body.Detail[0]["type"])
}
