package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	authapi "github.com/umstad/quizgen/internal/api/auth"
	informationapi "github.com/umstad/quizgen/internal/api/information"
	questionapi "github.com/umstad/quizgen/internal/api/question"
	"github.com/umstad/quizgen/internal/config"
	"github.com/umstad/quizgen/internal/entity"
	"go.uber.org/zap"
)

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, password string) error {
	switch password {
	case "":
		return entity.ErrPasswordRequired
	case "secret":
		return nil
	default:
		return entity.ErrInvalidPassword
	}
}

type fakeInformations struct {
	listCategory string
}

func (f *fakeInformations) Create(_ context.Context, req *entity.CreateInformationRequest) (*entity.Information, error) {
	return &entity.Information{ID: "i1", Text: req.Text, Category: req.Category}, nil
}

func (f *fakeInformations) List(_ context.Context, category string) ([]*entity.Information, error) {
	f.listCategory = category
	return []*entity.Information{{ID: "i1", Text: "t", Category: category}}, nil
}

func (f *fakeInformations) Get(_ context.Context, id string) (*entity.Information, error) {
	return nil, entity.ErrInformationNotFound
}

func (f *fakeInformations) Update(_ context.Context, req *entity.UpdateInformationRequest) (*entity.Information, error) {
	return &entity.Information{ID: req.ID, Text: req.Text, Category: req.Category}, nil
}

func (f *fakeInformations) Delete(_ context.Context, id string) error {
	if id != "i1" {
		return entity.ErrInformationNotFound
	}
	return nil
}

type fakeQuestions struct {
	generated *entity.GenerateQuestionsRequest
	patch     *entity.QuestionPatch
}

func (f *fakeQuestions) List(_ context.Context, category string) ([]*entity.Question, error) {
	return []*entity.Question{{ID: "q1", Category: category}}, nil
}

func (f *fakeQuestions) Get(_ context.Context, id string) (*entity.Question, error) {
	if id != "q1" {
		return nil, entity.ErrQuestionNotFound
	}
	return &entity.Question{ID: "q1"}, nil
}

func (f *fakeQuestions) Review(_ context.Context, id string, patch *entity.QuestionPatch) (*entity.Question, error) {
	f.patch = patch
	return &entity.Question{ID: id, Checked: patch.Checked != nil && *patch.Checked}, nil
}

func (f *fakeQuestions) Delete(_ context.Context, id string) error {
	return nil
}

func (f *fakeQuestions) Generate(_ context.Context, req *entity.GenerateQuestionsRequest) (*entity.GenerateQuestionsResponse, error) {
	f.generated = req
	return &entity.GenerateQuestionsResponse{Message: "Questions generated successfully", Count: len(req.Contexts)}, nil
}

func (f *fakeQuestions) Export(_ context.Context, req *entity.ExportRequest) (*entity.ExportResult, error) {
	return &entity.ExportResult{Filename: req.Category + ".md", ContentType: "text/markdown", Content: []byte("# x")}, nil
}

type testServer struct {
	handler   http.Handler
	infos     *fakeInformations
	questions *fakeQuestions
}

func newTestServer() *testServer {
	authCfg := config.AuthConfig{Password: "secret", CookieName: "auth", CookieMaxAge: 24 * time.Hour}
	infos := &fakeInformations{}
	questions := &fakeQuestions{}

	h := SetupRouter(Handlers{
		Auth:        authapi.NewHandler(fakeAuth{}, authCfg),
		Information: informationapi.NewHandler(infos),
		Question:    questionapi.NewHandler(questions),
	}, RouterConfig{AuthCookieName: "auth", GenerateTimeout: time.Minute}, zap.NewNop())

	return &testServer{handler: h, infos: infos, questions: questions}
}

func (s *testServer) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.AddCookie(&http.Cookie{Name: "auth", Value: "true"})
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer()
	rec := s.do(http.MethodGet, "/health", "", false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogin(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodPost, "/api/auth/login", `{"password":""}`, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", `{"password":"nope"}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/api/auth/login", `{"password":"secret"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth", cookies[0].Name)
	assert.Equal(t, "true", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
	assert.Equal(t, 86400, cookies[0].MaxAge)
}

func TestLogout_ClearsCookie(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodPost, "/api/auth/logout", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "", cookies[0].Value)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestAuthGate(t *testing.T) {
	s := newTestServer()

	for _, target := range []string{"/api/informations", "/api/questions?category=ilk_cag", "/api/topics"} {
		rec := s.do(http.MethodGet, target, "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)

		var body entity.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "Unauthorized", body.Error)
	}
}

func TestInformations(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/api/informations?category=ilk_cag", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ilk_cag", s.infos.listCategory)

	rec = s.do(http.MethodPost, "/api/informations", `{"text":"Sümerler","category":"ilk_cag"}`, true)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(http.MethodPost, "/api/informations", `{bad json`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPut, "/api/informations", `{"id":"i1","text":"x","category":"ilk_cag"}`, true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/informations/i1", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodDelete, "/api/informations/zzz", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuestions(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/api/questions", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/questions?category=ilk_cag", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodPost, "/api/questions?category=ilk_cag", `{"contexts":["a","b"]}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ilk_cag", s.questions.generated.Category)
	assert.Equal(t, []string{"a", "b"}, s.questions.generated.Contexts)

	rec = s.do(http.MethodPost, "/api/questions", `{"contexts":["a"]}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodGet, "/api/questions/q1", "", true)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/questions/missing", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPatch, "/api/questions/q1", `{"checked":true,"preferredCorrectAnswer":2}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, s.questions.patch.PreferredCorrectAnswer)
	assert.Equal(t, 2, *s.questions.patch.PreferredCorrectAnswer)

	rec = s.do(http.MethodGet, "/api/questions/export?category=ilk_cag", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="ilk_cag.md"`, rec.Header().Get("Content-Disposition"))
}

func TestTopics(t *testing.T) {
	s := newTestServer()

	rec := s.do(http.MethodGet, "/api/topics", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var topics []entity.Topic
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&topics))
	assert.Len(t, topics, len(entity.HistoryTopics))
}
