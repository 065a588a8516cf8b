package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mahimamj/bdspro/models"
)

func (h *Handler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "All fields are required")
		return
	}

	resp, err := h.service.Authorization.Register(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"data":    resp,
	})
}
