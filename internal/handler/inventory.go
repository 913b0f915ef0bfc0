package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Retrend821/inventory-saas-sub000/internal/apierror"
	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/service"
)

type InventoryHandler struct{ svc service.InventoryService }

func NewInventoryHandler(svc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req dto.CreateInventoryItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List godoc
// @Summary 在庫一覧
// @Tags inventory
// @Produce json
// @Param status query string false "在庫 | 売却済み"
// @Param q query string false "商品名・ブランドの部分一致"
// @Success 200 {object} dto.InventoryListResponse
// @Router /v1/inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	var filter dto.InventoryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("在庫一覧の取得に失敗しました"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// EditCell applies one spreadsheet-style cell write and returns the whole
// updated row, because a single edit can cascade into several columns.
func (h *InventoryHandler) EditCell(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.CellEditRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.EditCell(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) ListReturns(c *gin.Context) {
	resp, err := h.svc.ListReturns(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("返品一覧の取得に失敗しました"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InventoryHandler) MarkReturn(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.MarkReturnRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.MarkReturn(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
