package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Retrend821/inventory-saas-sub000/internal/apierror"
	"github.com/Retrend821/inventory-saas-sub000/internal/dto"
	"github.com/Retrend821/inventory-saas-sub000/internal/service"
)

// maxCSVBytes caps uploaded CSV size at 20MB.
const maxCSVBytes = 20 << 20

type ImportHandler struct{ svc service.ImportService }

func NewImportHandler(svc service.ImportService) *ImportHandler {
	return &ImportHandler{svc: svc}
}

// Inspect godoc
// @Summary CSV取込の事前チェック
// @Tags import
// @Accept mpfd
// @Produce json
// @Param file formData file true "CSVファイル"
// @Success 200 {object} dto.ImportInspectResponse
// @Router /v1/inventory/import/inspect [post]
func (h *ImportHandler) Inspect(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("CSVファイルが指定されていません"))
		return
	}
	raw, err := readUpload(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	resp, err := h.svc.Inspect(c.Request.Context(), fileHeader.Filename, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Commit takes the same CSV again plus the confirmed options as form fields.
// For Aucnet an optional second file carries the image-URL export.
func (h *ImportHandler) Commit(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("CSVファイルが指定されていません"))
		return
	}
	raw, err := readUpload(fileHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	var imageRaw []byte
	if imageHeader, err := c.FormFile("image_file"); err == nil {
		imageRaw, err = readUpload(imageHeader)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
			return
		}
	}

	req := dto.ImportCommitRequest{
		Dialect:  c.PostForm("dialect"),
		FileName: fileHeader.Filename,
	}
	if v := c.PostForm("file_name"); v != "" {
		req.FileName = v
	}
	if v := c.PostForm("purchase_source"); v != "" {
		req.PurchaseSource = &v
	}
	if v := c.PostForm("purchase_date"); v != "" {
		req.PurchaseDate = &v
	}
	if v := c.PostForm("mapping"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Mapping); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("mappingの形式が不正です"))
			return
		}
	}
	if req.Dialect == "" {
		c.JSON(http.StatusBadRequest, apierror.New("dialectが指定されていません"))
		return
	}

	resp, err := h.svc.Commit(c.Request.Context(), raw, imageRaw, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ingest is the JSON intake endpoint used by the mail-scraper job.
func (h *ImportHandler) Ingest(c *gin.Context) {
	var items []dto.APIIngestItem
	if err := c.ShouldBindJSON(&items); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSONの形式が不正です: "+err.Error()))
		return
	}
	for i := range items {
		if err := validate.Struct(&items[i]); err != nil {
			c.JSON(http.StatusUnprocessableEntity, apierror.New("入力内容に誤りがあります"))
			return
		}
	}

	resp, err := h.svc.Ingest(c.Request.Context(), items)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	if fh.Size > maxCSVBytes {
		return nil, errFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxCSVBytes))
}

var errFileTooLarge = errors.New("ファイルサイズが大きすぎます（上限20MB）")
