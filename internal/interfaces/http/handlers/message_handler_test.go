package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio.backend/internal/domain/entities"
	"portfolio.backend/internal/interfaces/http/middleware"
	"portfolio.backend/internal/usecases"
)

type failingQueue struct{}

func (failingQueue) Enqueue(*entities.Message) bool { return false }

func newMessageRouter(repo *messageRepoStub, queue usecases.NotificationQueue) *gin.Engine {
	h := NewMessageHandler(usecases.NewMessageUsecase(repo, queue))
	r := newTestRouter()
	r.POST("/messages", h.CreateMessage)
	admin := r.Group("/messages", middleware.AdminAuthMiddleware(testJWT))
	admin.GET("", h.ListMessages)
	admin.PUT("/:id/read", h.MarkMessageRead)
	admin.DELETE("/:id", h.DeleteMessage)
	return r
}

func TestMessageHandler_ContactScenario(t *testing.T) {
	repo := newMessageRepo()
	queue := &queueStub{}
	r := newMessageRouter(repo, queue)

	w := doJSON(r, http.MethodPost, "/messages", gin.H{"name": "Jane", "email": "jane@x.com", "message": "Hi"}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	msg := decode[entities.Message](t, w)
	assert.False(t, msg.IsRead)
	assert.Equal(t, 1, repo.count())
	require.Len(t, queue.sent, 1)
	assert.Equal(t, "Jane", queue.sent[0].Name)
}

func TestMessageHandler_NotificationOutageDoesNotFailRequest(t *testing.T) {
	repo := newMessageRepo()
	r := newMessageRouter(repo, failingQueue{})

	w := doJSON(r, http.MethodPost, "/messages", gin.H{"name": "Jane", "email": "jane@x.com", "message": "Hi"}, nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, repo.count())
}

func TestMessageHandler_Validation(t *testing.T) {
	repo := newMessageRepo()
	r := newMessageRouter(repo, &queueStub{})

	for _, body := range []gin.H{
		{"email": "jane@x.com", "message": "Hi"},
		{"name": "Jane", "email": "not-an-email", "message": "Hi"},
		{"name": "Jane", "email": "jane@x.com"},
	} {
		assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodPost, "/messages", body, nil).Code)
	}
	assert.Equal(t, 0, repo.count())
}

func TestMessageHandler_AdminOperations(t *testing.T) {
	repo := newMessageRepo()
	r := newMessageRouter(repo, nil)
	cookie := sessionCookie(t)

	msg := decode[entities.Message](t, doJSON(r, http.MethodPost, "/messages", gin.H{"name": "Jane", "email": "jane@x.com", "message": "Hi"}, nil))

	assert.Equal(t, http.StatusUnauthorized, doJSON(r, http.MethodGet, "/messages", nil, nil).Code)
	list := decode[[]entities.Message](t, doJSON(r, http.MethodGet, "/messages", nil, cookie))
	require.Len(t, list, 1)

	w := doJSON(r, http.MethodPut, "/messages/"+msg.ID.String()+"/read", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, decode[entities.Message](t, w).IsRead)

	w = doJSON(r, http.MethodPut, "/messages/"+msg.ID.String()+"/read", gin.H{"isRead": false}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decode[entities.Message](t, w).IsRead)

	missing := "/messages/0190b6a4-0000-7000-8000-000000000000"
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodPut, missing+"/read", nil, cookie).Code)
	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, missing, nil, cookie).Code)

	assert.Equal(t, http.StatusOK, doJSON(r, http.MethodDelete, "/messages/"+msg.ID.String(), nil, cookie).Code)
	assert.Equal(t, 0, repo.count())
}

func TestMessageHandler_MarkReadMalformedBody(t *testing.T) {
	repo := newMessageRepo()
	r := newMessageRouter(repo, nil)
	cookie := sessionCookie(t)
	msg := decode[entities.Message](t, doJSON(r, http.MethodPost, "/messages", gin.H{"name": "Jane", "email": "jane@x.com", "message": "Hi"}, nil))

	w := doJSON(r, http.MethodPut, "/messages/"+msg.ID.String()+"/read", `{"isRead":`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
