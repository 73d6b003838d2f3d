package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio.backend/internal/interfaces/http/middleware"
	"portfolio.backend/internal/usecases"
)

func newUploadRouter(uploader *uploaderStub) *gin.Engine {
	h := NewUploadHandler(usecases.NewUploadUsecase(uploader))
	r := newTestRouter()
	r.POST("/upload", middleware.AdminAuthMiddleware(testJWT), h.UploadImage)
	return r
}

func multipartRequest(t *testing.T, field string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile(field, "photo.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadHandler_Success(t *testing.T) {
	uploader := &uploaderStub{url: "https://res.cloudinary.com/demo/image/upload/photo.png"}
	r := newUploadRouter(uploader)

	req := multipartRequest(t, UploadFormField, []byte("png-bytes"))
	req.AddCookie(sessionCookie(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `"https://res.cloudinary.com/demo/image/upload/photo.png"`, w.Body.String())
	assert.Equal(t, []byte("png-bytes"), uploader.got)
}

func TestUploadHandler_MissingFile(t *testing.T) {
	r := newUploadRouter(&uploaderStub{})

	req := multipartRequest(t, "other", []byte("x"))
	req.AddCookie(sessionCookie(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/upload", nil, sessionCookie(t))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_ProviderFailure(t *testing.T) {
	r := newUploadRouter(&uploaderStub{err: errors.New("timeout")})

	req := multipartRequest(t, UploadFormField, []byte("x"))
	req.AddCookie(sessionCookie(t))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_UPLOAD_FAILED")
}

func TestUploadHandler_RequiresSession(t *testing.T) {
	uploader := &uploaderStub{}
	r := newUploadRouter(uploader)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, multipartRequest(t, UploadFormField, []byte("x")))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, uploader.got)
}
