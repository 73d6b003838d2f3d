package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"portfolio.backend/internal/domain/entities"
	domainerrors "portfolio.backend/internal/domain/errors"
	"portfolio.backend/internal/interfaces/http/middleware"
	"portfolio.backend/pkg/jwt"
)

// memRepo is an in-memory store shared by the resource repository stubs
type memRepo[T any] struct {
	mu      sync.Mutex
	items   []*T
	idOf    func(*T) uuid.UUID
	visible func(*T) bool
	order   func(*T) *int
}

func (r *memRepo[T]) Create(_ context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *item
	r.items = append(r.items, &copied)
	return nil
}

func (r *memRepo[T]) GetByID(_ context.Context, id uuid.UUID) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if r.idOf(item) == id {
			copied := *item
			return &copied, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *memRepo[T]) sorted(filter bool) []*T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*T, 0, len(r.items))
	for _, item := range r.items {
		if !filter || r.visible(item) {
			copied := *item
			out = append(out, &copied)
		}
	}
	if r.order != nil {
		sort.SliceStable(out, func(i, j int) bool { return *r.order(out[i]) < *r.order(out[j]) })
	}
	return out
}

func (r *memRepo[T]) ListPublic(context.Context) ([]*T, error) { return r.sorted(true), nil }
func (r *memRepo[T]) ListAdmin(context.Context) ([]*T, error)  { return r.sorted(false), nil }

func (r *memRepo[T]) Update(_ context.Context, item *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if r.idOf(existing) == r.idOf(item) {
			copied := *item
			r.items[i] = &copied
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (r *memRepo[T]) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, item := range r.items {
		if r.idOf(item) == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (r *memRepo[T]) NextOrder(context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	next := 0
	for _, item := range r.items {
		if o := *r.order(item); o >= next {
			next = o + 1
		}
	}
	return next, nil
}

func (r *memRepo[T]) OrderTaken(_ context.Context, order int, exclude uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if r.idOf(item) != exclude && *r.order(item) == order {
			return true, nil
		}
	}
	return false, nil
}

func (r *memRepo[T]) UpdateOrder(_ context.Context, id uuid.UUID, order int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if r.idOf(item) == id {
			*r.order(item) = order
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (r *memRepo[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func newSkillRepo() *memRepo[entities.Skill] {
	return &memRepo[entities.Skill]{
		idOf:    func(s *entities.Skill) uuid.UUID { return s.ID },
		visible: func(s *entities.Skill) bool { return s.IsVisible },
		order:   func(s *entities.Skill) *int { return &s.Order },
	}
}

func newProjectRepo() *memRepo[entities.Project] {
	return &memRepo[entities.Project]{
		idOf:    func(p *entities.Project) uuid.UUID { return p.ID },
		visible: func(p *entities.Project) bool { return p.IsPublished },
		order:   func(p *entities.Project) *int { return &p.Order },
	}
}

func newEducationRepo() *memRepo[entities.Education] {
	return &memRepo[entities.Education]{
		idOf:    func(e *entities.Education) uuid.UUID { return e.ID },
		visible: func(e *entities.Education) bool { return e.IsVisible },
		order:   func(e *entities.Education) *int { return &e.Order },
	}
}

func newExperienceRepo() *memRepo[entities.Experience] {
	return &memRepo[entities.Experience]{
		idOf:    func(e *entities.Experience) uuid.UUID { return e.ID },
		visible: func(e *entities.Experience) bool { return e.IsVisible },
		order:   func(e *entities.Experience) *int { return &e.Order },
	}
}

func newCertificateRepo() *memRepo[entities.Certificate] {
	return &memRepo[entities.Certificate]{
		idOf:    func(c *entities.Certificate) uuid.UUID { return c.ID },
		visible: func(c *entities.Certificate) bool { return c.IsVisible },
	}
}

type messageRepoStub struct {
	*memRepo[entities.Message]
}

func newMessageRepo() *messageRepoStub {
	return &messageRepoStub{&memRepo[entities.Message]{
		idOf: func(m *entities.Message) uuid.UUID { return m.ID },
	}}
}

func (r *messageRepoStub) List(ctx context.Context) ([]*entities.Message, error) {
	return r.ListAdmin(ctx)
}

func (r *messageRepoStub) SetRead(ctx context.Context, id uuid.UUID, isRead bool) error {
	msg, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	msg.IsRead = isRead
	return r.Update(ctx, msg)
}

type profileRepoStub struct {
	profile *entities.Profile
}

func (r *profileRepoStub) Get(context.Context) (*entities.Profile, error) {
	if r.profile == nil {
		return nil, domainerrors.ErrNotFound
	}
	copied := *r.profile
	return &copied, nil
}

func (r *profileRepoStub) Save(_ context.Context, profile *entities.Profile) error {
	copied := *profile
	r.profile = &copied
	return nil
}

type adminRepoStub struct {
	admins []*entities.Admin
}

func (r *adminRepoStub) Count(context.Context) (int64, error) { return int64(len(r.admins)), nil }

func (r *adminRepoStub) Create(_ context.Context, admin *entities.Admin) error {
	r.admins = append(r.admins, admin)
	return nil
}

func (r *adminRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *adminRepoStub) GetByUsername(_ context.Context, username string) (*entities.Admin, error) {
	for _, a := range r.admins {
		if a.Username == username {
			return a, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (r *adminRepoStub) GetFirst(context.Context) (*entities.Admin, error) {
	if len(r.admins) == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.admins[0], nil
}

func (r *adminRepoStub) UpdateCredentials(_ context.Context, id uuid.UUID, username, hash string) error {
	for _, a := range r.admins {
		if a.ID == id {
			a.Username = username
			a.PasswordHash = hash
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) }

type queueStub struct {
	mu   sync.Mutex
	sent []*entities.Message
}

func (q *queueStub) Enqueue(msg *entities.Message) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sent = append(q.sent, msg)
	return true
}

type uploaderStub struct {
	url string
	err error
	got []byte
}

func (u *uploaderStub) Upload(_ context.Context, file io.Reader) (string, error) {
	u.got, _ = io.ReadAll(file)
	return u.url, u.err
}

var testJWT = jwt.NewJWTService("handler-test-secret", time.Hour)

// sessionCookie returns a valid admin session cookie
func sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	token, _, err := testJWT.GenerateToken(uuid.New(), "admin")
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: token}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(r http.Handler, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
