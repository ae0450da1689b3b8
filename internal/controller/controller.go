package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/atcprep/internal/auth"
	"github.com/lshigami/atcprep/internal/document"
	"github.com/lshigami/atcprep/internal/dto"
	"github.com/lshigami/atcprep/internal/metrics"
	"github.com/lshigami/atcprep/internal/repository"
	"github.com/lshigami/atcprep/internal/service"
	"github.com/lshigami/atcprep/internal/session"
	"github.com/rs/zerolog/log"
)

const identityKey = "identity"

// Authenticate resolves the caller from a bearer token. Requests without a
// token continue anonymously; a bad token is rejected.
func Authenticate(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Next()
			return
		}
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			RespondError(ctx, "Invalid Authorization header", auth.ErrInvalidToken)
			ctx.Abort()
			return
		}
		identity, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			RespondError(ctx, "Invalid or expired token", err)
			ctx.Abort()
			return
		}
		ctx.Set(identityKey, identity)
		ctx.Next()
	}
}

func RequireUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if CurrentIdentity(ctx) == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		ctx.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity := CurrentIdentity(ctx)
		if identity == nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
			return
		}
		if !identity.IsAdmin() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Message: "Administrator role required"})
			return
		}
		ctx.Next()
	}
}

// CurrentIdentity returns the authenticated caller or nil.
func CurrentIdentity(ctx *gin.Context) *auth.Identity {
	v, ok := ctx.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*auth.Identity)
	return identity
}

func StatusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrStorageExhausted):
		return http.StatusInsufficientStorage
	case errors.Is(err, service.ErrNotFound), errors.Is(err, session.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrUnauthenticated), errors.Is(err, service.ErrUnknownEmail), errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrConflict), errors.Is(err, session.ErrSessionClosed):
		return http.StatusConflict
	case errors.Is(err, document.ErrUploadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, document.ErrDecodeCorrupted):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, session.ErrIndexOutOfRange),
		errors.Is(err, session.ErrInvalidSelection),
		errors.Is(err, document.ErrUnsupportedFileType),
		errors.Is(err, document.ErrEmptyFile):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as a dto.ErrorResponse with the matching status.
func RespondError(ctx *gin.Context, message string, err error) {
	status := StatusFor(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("method", ctx.Request.Method).Str("path", ctx.FullPath()).Int("status", status).Msg(message)
	ctx.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

// BindError answers a request whose body or form failed to bind.
func BindError(ctx *gin.Context, err error) {
	log.Warn().Err(err).Str("path", ctx.FullPath()).Msg("Failed to bind request")
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
}

// ReadUpload reads a multipart file field. A missing field yields nil. The
// declared size is checked before anything is read.
func ReadUpload(ctx *gin.Context, field string, pipeline *document.Pipeline) (*service.FileUpload, error) {
	header, err := ctx.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidInput, err)
	}
	if err := pipeline.CheckSize(header.Size); err != nil {
		metrics.UploadsRejected.WithLabelValues("too_large").Inc()
		return nil, err
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, pipeline.MaxUploadBytes()+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if err := pipeline.CheckSize(int64(len(data))); err != nil {
		metrics.UploadsRejected.WithLabelValues("too_large").Inc()
		return nil, err
	}
	return &service.FileUpload{Name: header.Filename, Data: data}, nil
}
