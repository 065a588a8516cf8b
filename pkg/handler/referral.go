package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetReferralSummary(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "user_id is required")
		return
	}

	summary, err := h.service.Referrals.Summary(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success":    true,
		"user":       summary.User,
		"referrals":  summary.Referrals,
		"statistics": summary.Statistics,
	})
}

func (h *Handler) ListTransactions(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "user_id is required")
		return
	}

	transactions, err := h.service.Transactions.List(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success":      true,
		"transactions": transactions,
	})
}
