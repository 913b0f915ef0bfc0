package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Retrend821/inventory-saas-sub000/internal/apierror"
	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/service"
)

type BulkHandler struct{ svc service.BulkService }

func NewBulkHandler(svc service.BulkService) *BulkHandler { return &BulkHandler{svc: svc} }

func (h *BulkHandler) CreatePurchase(c *gin.Context) {
	var req dto.CreateBulkPurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreatePurchase(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BulkHandler) ListPurchases(c *gin.Context) {
	resp, err := h.svc.ListPurchases(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("まとめ仕入れ一覧の取得に失敗しました"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BulkHandler) GetPurchase(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetPurchase(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BulkHandler) UpdatePurchase(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBulkPurchaseRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdatePurchase(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BulkHandler) DeletePurchase(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePurchase(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BulkHandler) AddSale(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateBulkSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AddSale(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *BulkHandler) UpdateSale(c *gin.Context) {
	id, ok := pathID(c, "sale_id")
	if !ok {
		return
	}
	var req dto.UpdateBulkSaleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateSale(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BulkHandler) DeleteSale(c *gin.Context) {
	id, ok := pathID(c, "sale_id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSale(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
