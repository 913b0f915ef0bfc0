package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Retrend821/inventory-saas-sub000/internal/apierror"
	"github.com/Retrend821/inventory-saas-sub000/internal/service"
)

type LedgerHandler struct{ svc service.LedgerService }

func NewLedgerHandler(svc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// DownloadPDF godoc
// @Summary 古物台帳PDFのダウンロード
// @Tags ledger
// @Produce application/pdf
// @Param month query string true "YYYY-MM"
// @Success 200 {file} binary
// @Router /v1/ledger/pdf [get]
func (h *LedgerHandler) DownloadPDF(c *gin.Context) {
	month := c.Query("month")
	path, err := h.svc.GeneratePDF(c.Request.Context(), month)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.FileAttachment(path, "ledger_"+month+".pdf")
}
