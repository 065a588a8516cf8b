package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahimamj/bdspro/models"
)

// ConvertRate prices an amount of crypto in a fiat currency, e.g.
// /api/rates/convert?amount=100&from=USDT&to=INR.
func (h *Handler) ConvertRate(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.Query("amount"), 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "amount is required")
		return
	}

	resp, err := h.service.Rates.Convert(models.ConvertRequest{
		Amount: amount,
		From:   c.Query("from"),
		To:     c.Query("to"),
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success": true,
		"data":    resp,
	})
}
