package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jobboardly/backend/internal/logger"
	"github.com/jobboardly/backend/internal/services"
	log "github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError maps the service error taxonomy to HTTP statuses. The message
// always carries the underlying error text so the UI can show it.
func respondError(c *gin.Context, err error) {

	var validationErrs validator.ValidationErrors

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrAlreadyApplied):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrJobNotOpen):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrCompanyNotApproved):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.As(err, &validationErrs):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrBadAIResponse):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).Errorf("request failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}
