package handler

import (
	"errors"

	"edushare/usecase"
	"edushare/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service error kinds onto HTTP responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, usecase.ErrForbidden):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, usecase.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, usecase.ErrConflict):
		utils.Conflict(c, err.Error())
	default:
		utils.InternalError(c, "internal error")
	}
}
