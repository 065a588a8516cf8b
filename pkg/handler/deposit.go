package handler

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mahimamj/bdspro/models"
	"github.com/mahimamj/bdspro/pkg/service"
)

// SubmitDeposit accepts the multipart proof form: fullName, email, amount,
// network, transactionHash and the screenshot file.
func (h *Handler) SubmitDeposit(c *gin.Context) {
	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid amount")
		return
	}

	fileHeader, err := c.FormFile("transactionScreenshot")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Transaction screenshot is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer file.Close()
	data, err := io.ReadAll(io.LimitReader(file, models.MaxProofImageSize+1))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	input := service.SubmitDepositInput{
		FullName:        c.PostForm("fullName"),
		Email:           c.PostForm("email"),
		Amount:          amount,
		Network:         c.PostForm("network"),
		TransactionHash: c.PostForm("transactionHash"),
		FileName:        fileHeader.Filename,
		ContentType:     fileHeader.Header.Get("Content-Type"),
		FileSize:        fileHeader.Size,
		FileData:        data,
	}

	deposit, err := h.service.Deposits.Submit(c.Request.Context(), input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success": true,
		"message": "Payment submitted successfully",
		"data":    deposit,
	})
}

func (h *Handler) ListUserDeposits(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		newErrorResponse(c, http.StatusBadRequest, "email is required")
		return
	}

	deposits, err := h.service.Deposits.ListByEmail(c.Request.Context(), email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success":  true,
		"deposits": deposits,
	})
}

func (h *Handler) ListDeposits(c *gin.Context) {
	status := models.DepositStatus(c.Query("status"))

	deposits, err := h.service.Deposits.List(c.Request.Context(), status)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success":      true,
		"transactions": deposits,
	})
}

func (h *Handler) UpdateDeposit(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid deposit id")
		return
	}

	var input models.UpdateDepositInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "status is required")
		return
	}

	if err := h.service.Deposits.Verify(c.Request.Context(), id, input); err != nil {
		handleServiceError(c, err)
		return
	}

	wrapOkJSON(c, map[string]interface{}{
		"success": true,
		"message": "Transaction status updated successfully",
	})
}
