package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

// UploadFormField is the multipart field carrying the image
const UploadFormField = "image"

type UploadHandler struct {
	uploadUsecase *usecases.UploadUsecase
}

func NewUploadHandler(uploadUsecase *usecases.UploadUsecase) *UploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase}
}

// UploadImage relays the image to the media host and returns its URL as a JSON string.
// POST /api/v1/upload
func (h *UploadHandler) UploadImage(c *gin.Context) {
	header, err := c.FormFile(UploadFormField)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("image file is required"))
		return
	}

	file, err := header.Open()
	if err != nil {
		response.Error(c, domainerrors.BadRequest("image file could not be read"))
		return
	}
	defer file.Close()

	url, err := h.uploadUsecase.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, url)
}
