package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/mahimamj/bdspro/models"
)

type Error struct {
	Message string `json:"message"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, Error{Message: message})
}

func wrapOkJSON(c *gin.Context, response map[string]interface{}) {
	c.JSON(http.StatusOK, response)
}

// handleServiceError maps service errors onto the response taxonomy:
// validation 400, unknown id 404, illegal transition 409, everything else a
// generic 500.
func handleServiceError(c *gin.Context, err error) {
	var ve models.ValidationError
	switch {
	case errors.As(err, &ve):
		newErrorResponse(c, http.StatusBadRequest, ve.Error())
	case errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInsufficientFunds):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrIllegalTransition),
		errors.Is(err, models.ErrAlreadyProcessed):
		newErrorResponse(c, http.StatusConflict, err.Error())
	default:
		logrus.Errorf("internal error: %s", err)
		newErrorResponse(c, http.StatusInternalServerError, "Internal server error")
	}
}
