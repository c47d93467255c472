package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduforum-dev/eduforum/internal/api"
	"github.com/eduforum-dev/eduforum/internal/domain"
	"github.com/eduforum-dev/eduforum/internal/handler"
	"github.com/eduforum-dev/eduforum/internal/jwt"
	"github.com/eduforum-dev/eduforum/internal/markdown"
	"github.com/eduforum-dev/eduforum/internal/middleware"
	"github.com/eduforum-dev/eduforum/internal/service"
	"github.com/eduforum-dev/eduforum/internal/setup"
	"github.com/eduforum-dev/eduforum/internal/storage/memory"
	"github.com/eduforum-dev/eduforum/internal/utils"
)

type testEnv struct {
	server *httptest.Server
	jwt    jwt.JwtService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	storage := memory.New()
	registry := service.NewCategoryRegistry([]domain.Category{
		{Id: "general", Name: "General Discussion"},
		{
			Id:           "announcements",
			Name:         "Announcements",
			IsRestricted: true,
			AllowedRoles: []domain.Role{domain.RoleAdministrator, domain.RoleTeacher},
		},
	})
	forum := service.NewForum(storage, registry, &utils.PostValidator{}, &utils.CommentValidator{})
	jwtService := jwt.New("test-secret", time.Hour)

	deps := &setup.Dependencies{
		Storage:        storage,
		Handler:        handler.New(forum, markdown.New(), storage),
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}

	server := httptest.NewServer(New(deps))
	t.Cleanup(server.Close)
	return &testEnv{server: server, jwt: jwtService}
}

func (e *testEnv) token(t *testing.T, id string, role domain.Role) string {
	t.Helper()
	token, err := e.jwt.NewToken(domain.Principal{Id: id, Name: "Test " + id, Role: role})
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	resp := env.do(t, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, "GET", "/ready", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestCreateAndListPosts(t *testing.T) {
	env := newTestEnv(t)
	teacher := env.token(t, "t1", domain.RoleTeacher)

	t.Run("unauthenticated create is rejected", func(t *testing.T) {
		resp := env.do(t, "POST", "/v1/posts", "", api.CreatePostRequest{
			Title: "x", Content: "y", Category: "general",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("create then list", func(t *testing.T) {
		resp := env.do(t, "POST", "/v1/posts", teacher, api.CreatePostRequest{
			Title:    "Field trip",
			Content:  "Permission slips due **Friday**",
			Category: "general",
			Tags:     []string{"Trips"},
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		created := decode[api.PostResponse](t, resp)
		assert.NotEmpty(t, created.Id)
		assert.Equal(t, domain.RoleTeacher, created.AuthorRole)
		assert.Equal(t, domain.Tags{"trips"}, created.Tags)

		listResp := env.do(t, "GET", "/v1/posts", "", nil)
		require.Equal(t, http.StatusOK, listResp.StatusCode)
		list := decode[api.ListPostsResponse](t, listResp)
		require.Len(t, list.Posts, 1)
		assert.Equal(t, created.Id, list.Posts[0].Id)
	})

	t.Run("student cannot post announcements", func(t *testing.T) {
		student := env.token(t, "s1", domain.RoleStudent)
		resp := env.do(t, "POST", "/v1/posts", student, api.CreatePostRequest{
			Title: "Hi", Content: "Hello", Category: "announcements",
		})
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("missing required fields", func(t *testing.T) {
		other := env.token(t, "t2", domain.RoleTeacher)
		resp := env.do(t, "POST", "/v1/posts", other, map[string]string{"title": "no content"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestCommentAndVoteFlow(t *testing.T) {
	env := newTestEnv(t)
	admin := env.token(t, "a1", domain.RoleAdministrator)
	student := env.token(t, "s1", domain.RoleStudent)

	resp := env.do(t, "POST", "/v1/posts", admin, api.CreatePostRequest{
		Title: "Welcome", Content: "Say hello below", Category: "general",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decode[api.PostResponse](t, resp)

	t.Run("comment and reply", func(t *testing.T) {
		resp := env.do(t, "POST", fmt.Sprintf("/v1/posts/%s/comments", post.Id), student, api.CreateCommentRequest{Content: "hello!"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		comment := decode[api.CommentResponse](t, resp)

		resp = env.do(t, "POST", fmt.Sprintf("/v1/posts/%s/comments", post.Id), admin, api.CreateCommentRequest{Content: "welcome", ParentId: &comment.Id})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		reply := decode[api.CommentResponse](t, resp)

		// depth is capped at one
		resp = env.do(t, "POST", fmt.Sprintf("/v1/posts/%s/comments", post.Id), student, api.CreateCommentRequest{Content: "too deep", ParentId: &reply.Id})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()

		getResp := env.do(t, "GET", "/v1/posts/"+post.Id, "", nil)
		require.Equal(t, http.StatusOK, getResp.StatusCode)
		full := decode[api.PostWithCommentsResponse](t, getResp)
		assert.Equal(t, 2, full.CommentCount)
		require.Len(t, full.Comments, 1)
		require.Len(t, full.Comments[0].Replies, 1)
		assert.Contains(t, full.Comments[0].ContentHtml, "hello!")
	})

	t.Run("vote toggle", func(t *testing.T) {
		votePath := fmt.Sprintf("/v1/posts/%s/vote", post.Id)

		resp := env.do(t, "POST", votePath, student, api.VoteRequest{Vote: "upvote"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		vote := decode[api.VoteResponse](t, resp)
		assert.Equal(t, 1, vote.Upvotes)
		assert.Equal(t, domain.VoteUp, vote.UserVote)

		resp = env.do(t, "POST", votePath, student, api.VoteRequest{Vote: "upvote"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		vote = decode[api.VoteResponse](t, resp)
		assert.Equal(t, 0, vote.Upvotes)
		assert.Equal(t, domain.VoteNone, vote.UserVote)

		resp = env.do(t, "POST", votePath, student, api.VoteRequest{Vote: "invalid"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("missing post is 404", func(t *testing.T) {
		resp := env.do(t, "GET", "/v1/posts/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestPinIsAdminOnly(t *testing.T) {
	env := newTestEnv(t)
	admin := env.token(t, "a1", domain.RoleAdministrator)
	teacher := env.token(t, "t1", domain.RoleTeacher)

	resp := env.do(t, "POST", "/v1/posts", admin, api.CreatePostRequest{
		Title: "Rules", Content: "Read me", Category: "general",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	post := decode[api.PostResponse](t, resp)

	pinPath := fmt.Sprintf("/v1/admin/posts/%s/pin", post.Id)

	resp = env.do(t, "POST", pinPath, teacher, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, "POST", pinPath, admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	result := decode[map[string]bool](t, resp)
	assert.True(t, result["is_pinned"])

	listResp := env.do(t, "GET", "/v1/posts?pinned=true", "", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	list := decode[api.ListPostsResponse](t, listResp)
	require.Len(t, list.Posts, 1)
	assert.True(t, list.Posts[0].IsPinned)
}
