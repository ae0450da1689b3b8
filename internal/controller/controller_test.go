package controller

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/config"
	"github.com/lshigami/atcprep/internal/auth"
	"github.com/lshigami/atcprep/internal/document"
	"github.com/lshigami/atcprep/internal/model"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/lshigami/atcprep/internal/service"
	"github.com/lshigami/atcprep/internal/session"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", service.ErrNotFound), http.StatusNotFound},
		{session.ErrSessionNotFound, http.StatusNotFound},
		{service.ErrInvalidInput, http.StatusBadRequest},
		{session.ErrIndexOutOfRange, http.StatusBadRequest},
		{document.ErrUnsupportedFileType, http.StatusBadRequest},
		{session.ErrUnauthenticated, http.StatusUnauthorized},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrConflict, http.StatusConflict},
		{document.ErrUploadTooLarge, http.StatusRequestEntityTooLarge},
		{document.ErrDecodeCorrupted, http.StatusUnprocessableEntity},
		{fmt.Errorf("%w: %w", session.ErrSubmissionFailed, repository.ErrStorageExhausted), http.StatusInsufficientStorage},
		{session.ErrSubmissionFailed, http.StatusInternalServerError},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := auth.NewTokenManager(&config.Config{Auth: config.Auth{JWTSecret: "secret", JWTTTLHours: 1}})
	userToken, _, _ := tokens.Issue(&model.User{ID: "u1", Role: model.RoleUser})
	adminToken, _, _ := tokens.Issue(&model.User{ID: "a1", Role: model.RoleAdmin})

	r := gin.New()
	r.Use(Authenticate(tokens))
	r.GET("/open", func(ctx *gin.Context) {
		if CurrentIdentity(ctx) == nil {
			ctx.String(http.StatusOK, "anonymous")
			return
		}
		ctx.String(http.StatusOK, CurrentIdentity(ctx).UserID)
	})
	r.GET("/user", RequireUser(), func(ctx *gin.Context) { ctx.Status(http.StatusOK) })
	r.GET("/admin", RequireAdmin(), func(ctx *gin.Context) { ctx.Status(http.StatusOK) })

	tests := []struct {
		name   string
		path   string
		header string
		want   int
		body   string
	}{
		{name: "anonymous open", path: "/open", want: http.StatusOK, body: "anonymous"},
		{name: "user open", path: "/open", header: "Bearer " + userToken, want: http.StatusOK, body: "u1"},
		{name: "bad token", path: "/open", header: "Bearer nope", want: http.StatusUnauthorized},
		{name: "bad scheme", path: "/open", header: "Basic abc", want: http.StatusUnauthorized},
		{name: "anonymous user route", path: "/user", want: http.StatusUnauthorized},
		{name: "user route", path: "/user", header: "Bearer " + userToken, want: http.StatusOK},
		{name: "user on admin route", path: "/admin", header: "Bearer " + userToken, want: http.StatusForbidden},
		{name: "admin route", path: "/admin", header: "Bearer " + adminToken, want: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d", w.Code, tt.want)
			}
			if tt.body != "" && w.Body.String() != tt.body {
				t.Errorf("body = %q, want %q", w.Body.String(), tt.body)
			}
		})
	}
}
