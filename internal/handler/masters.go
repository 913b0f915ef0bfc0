package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Retrend821/inventory-saas-sub000/internal/apierror"
	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/service"
)

type MastersHandler struct{ svc service.MasterService }

func NewMastersHandler(svc service.MasterService) *MastersHandler {
	return &MastersHandler{svc: svc}
}

// ── Platforms (sale destinations) ────────────────────────────────────────────

func (h *MastersHandler) CreatePlatform(c *gin.Context) {
	var req dto.CreatePlatformRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreatePlatform(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MastersHandler) ListPlatforms(c *gin.Context) {
	includeHidden := c.Query("include_hidden") == "true"
	resp, err := h.svc.ListPlatforms(c.Request.Context(), includeHidden)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("販売先一覧の取得に失敗しました"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MastersHandler) UpdatePlatform(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePlatformRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdatePlatform(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MastersHandler) DeactivatePlatform(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeactivatePlatform(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Suppliers (purchase sources) ─────────────────────────────────────────────

func (h *MastersHandler) CreateSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *MastersHandler) ListSuppliers(c *gin.Context) {
	includeHidden := c.Query("include_hidden") == "true"
	resp, err := h.svc.ListSuppliers(c.Request.Context(), includeHidden)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("仕入先一覧の取得に失敗しました"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MastersHandler) UpdateSupplier(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateSupplier(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *MastersHandler) DeactivateSupplier(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeactivateSupplier(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
