// Package ginerr renders errors collected on a gin context as a web error
// group.
//
//	r := gin.New()
//	r.Use(ginerr.Middleware(ginerr.WithTarget(web.TargetFrontend)))
//	r.POST("/orders", func(c *gin.Context) {
//		var req orderRequest
//		if err := c.ShouldBindJSON(&req); err != nil {
//			ginerr.Abort(c, err)
//			return
//		}
//	})
package ginerr

import (
	"net/http"

	"codeberg.org/mutker/errschema/internal/logger"
	"codeberg.org/mutker/errschema/schema"
	"codeberg.org/mutker/errschema/web"
	"github.com/gin-gonic/gin"
)

type options struct {
	target web.Target
	mapper *schema.Mapper
}

type Option func(*options)

// WithTarget selects the view of each record in responses. Default is
// web.TargetBackend.
func WithTarget(t web.Target) Option {
	return func(o *options) {
		if t.IsValid() {
			o.target = t
		}
	}
}

// WithMapper classifies plain errors with m instead of web.DefaultMapper.
func WithMapper(m *schema.Mapper) Option {
	return func(o *options) {
		if m != nil {
			o.mapper = m
		}
	}
}

// Middleware writes {"detail": [...]} once the handlers return, if any of
// them recorded errors with c.Error and nothing was written yet. The status
// is the highest one among the records.
func Middleware(opts ...Option) gin.HandlerFunc {
	o := options{target: web.TargetBackend, mapper: web.DefaultMapper}
	for _, opt := range opts {
		opt(&o)
	}

	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		g := web.NewGroup()
		status := 0
		for _, e := range c.Errors {
			s := web.FromErrorWith(o.mapper, e.Err)
			if err := g.Append(s); err != nil {
				logger.Error().Err(err).Msg("Failed to collect request error")
				continue
			}
			status = max(status, StatusFor(s.Type))
			logger.WithSchema(logger.Debug(), string(s.Type), s.Msg).
				Str("path", c.Request.URL.Path).
				Msg("Request error")
		}

		detail, err := g.ToTargetDicts(o.target)
		if err != nil {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(status, gin.H{"detail": detail})
	}
}

// Abort records errs on the context and stops the handler chain. Nil errors
// are skipped.
func Abort(c *gin.Context, errs ...error) {
	for _, err := range errs {
		if err != nil {
			_ = c.Error(err)
		}
	}
	c.Abort()
}

// StatusFor is the HTTP status reported for a category.
func StatusFor(c schema.Category) int {
	switch c {
	case schema.CategoryValidation:
		return http.StatusUnprocessableEntity
	case schema.CategoryValue, schema.CategoryParse, schema.CategoryDict:
		return http.StatusBadRequest
	case schema.CategoryFile:
		return http.StatusNotFound
	case schema.CategoryTimeout:
		return http.StatusGatewayTimeout
	case schema.CategoryDocker:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
