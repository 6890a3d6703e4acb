package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kisanmitra/kisan-service/internal/domain/dto"
	"github.com/kisanmitra/kisan-service/internal/fetcher"
	"github.com/kisanmitra/kisan-service/internal/middleware"
	"github.com/kisanmitra/kisan-service/internal/service"
)

// respondError writes a standardized error envelope with the request ID.
func respondError(c *gin.Context, status int, message string) {
	resp := dto.NewError(dto.ErrCodeFromStatus(status), message).
		WithRequestID(middleware.GetRequestID(c))
	c.JSON(status, resp)
}

// respondServiceError maps service and fetch errors onto HTTP statuses.
// Fetch failures carry user-facing messages from the upstream taxonomy;
// anything unclassified is a 500 with a generic message.
func respondServiceError(c *gin.Context, err error) {
	var vErr *dto.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondError(c, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, service.ErrCropNotFound),
		errors.Is(err, service.ErrExpenseNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidStage):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserExists):
		respondError(c, http.StatusConflict, err.Error())
	default:
		respondFetchError(c, err)
	}
}

// respondFetchError maps the upstream fetch taxonomy onto HTTP statuses.
func respondFetchError(c *gin.Context, err error) {
	var fErr *fetcher.Error
	if !errors.As(err, &fErr) {
		respondError(c, http.StatusInternalServerError, "An unexpected error occurred")
		return
	}

	switch fErr.Kind {
	case fetcher.KindNotFound:
		respondError(c, http.StatusNotFound, fErr.Message)
	case fetcher.KindConfigMissing:
		respondError(c, http.StatusServiceUnavailable, fErr.Message)
	case fetcher.KindNetwork:
		respondError(c, http.StatusServiceUnavailable, fErr.Message)
	default:
		respondError(c, http.StatusBadGateway, fErr.Message)
	}
}
