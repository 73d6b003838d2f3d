package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/interfaces/http/response"
	"portfolio.backend/internal/usecases"
)

// CertificateHandler serves certificates. There is no reorder route; lists sort by year.
type CertificateHandler struct {
	certificateUsecase *usecases.CertificateUsecase
}

func NewCertificateHandler(certificateUsecase *usecases.CertificateUsecase) *CertificateHandler {
	return &CertificateHandler{certificateUsecase: certificateUsecase}
}

// GET /api/v1/certificates
func (h *CertificateHandler) ListCertificates(c *gin.Context) {
	items, err := h.certificateUsecase.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// GET /api/v1/certificates/all
func (h *CertificateHandler) ListAllCertificates(c *gin.Context) {
	items, err := h.certificateUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// POST /api/v1/certificates
func (h *CertificateHandler) CreateCertificate(c *gin.Context) {
	var input entities.CreateCertificateInput
	if !bindJSON(c, &input) {
		return
	}

	certificate, err := h.certificateUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, certificate)
}

// PUT /api/v1/certificates/:id
func (h *CertificateHandler) UpdateCertificate(c *gin.Context) {
	id, ok := pathID(c, "certificate")
	if !ok {
		return
	}
	var input entities.UpdateCertificateInput
	if !bindJSON(c, &input) {
		return
	}

	certificate, err := h.certificateUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		resourceError(c, "certificate", err)
		return
	}
	response.Success(c, http.StatusOK, certificate)
}

// DELETE /api/v1/certificates/:id
func (h *CertificateHandler) DeleteCertificate(c *gin.Context) {
	id, ok := pathID(c, "certificate")
	if !ok {
		return
	}
	if err := h.certificateUsecase.Delete(c.Request.Context(), id); err != nil {
		resourceError(c, "certificate", err)
		return
	}
	response.Message(c, http.StatusOK, "Certificate deleted")
}
