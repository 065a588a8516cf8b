package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/middleware"
)

func (h *Handler) CreateWithdrawal(c *gin.Context) {
	var input models.CreateWithdrawalInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "amount, network and walletAddress are required")
		return
	}

	withdrawal, err := h.service.Withdrawals.Create(c.Request.Context(), middleware.UserID(c), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success":    true,
		"withdrawal": withdrawal,
	})
}

func (h *Handler) ListWithdrawals(c *gin.Context) {
	status := models.WithdrawalStatus(c.Query("status"))

	withdrawals, err := h.service.Withdrawals.List(c.Request.Context(), status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success":     true,
		"withdrawals": withdrawals,
	})
}

func (h *Handler) UpdateWithdrawal(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid withdrawal id")
		return
	}

	var input models.UpdateWithdrawalInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	if err := h.service.Withdrawals.Update(c.Request.Context(), id, input); err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success": true,
		"message": "Withdrawal status updated successfully",
	})
}
