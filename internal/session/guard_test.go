package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raghulkannan/portfolio-api/internal/auth"
	authhttp "github.com/raghulkannan/portfolio-api/internal/auth/http"
)

// newTestServer runs the real auth routes plus canned listing
// endpoints, so the guard is exercised against genuine verification
// behavior rather than a scripted double.
func newTestServer(t *testing.T) (*httptest.Server, *auth.Tokens) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokens("secret123", "signing-secret", 24*time.Hour)

	r := gin.New()
	api := r.Group("/api")
	admin := api.Group("/admin")
	authhttp.NewHandler(tokens).Register(admin)

	api.GET("/projects", func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"title": "a"}, {"title": "b"}, {"title": "c"}})
	})
	admin.GET("/contacts", auth.RequireAdmin(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, []gin.H{{"name": "x"}})
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, tokens
}

func newGuardedClient(t *testing.T) (*Client, *Guard) {
	t.Helper()
	srv, _ := newTestServer(t)
	client := NewClient(srv.URL, srv.Client(), NewMemoryStore())
	return client, NewGuard(client)
}

func TestGuard_NoCachedToken(t *testing.T) {
	_, guard := newGuardedClient(t)

	// Absent token redirects without any round trip.
	assert.Equal(t, StateRedirecting, guard.Check(context.Background()))
}

func TestGuard_ValidToken(t *testing.T) {
	client, guard := newGuardedClient(t)

	require.NoError(t, client.Login(context.Background(), "secret123"))
	require.NotEmpty(t, client.Store().Token())

	assert.Equal(t, StateAdmitted, guard.Check(context.Background()))
	// The cached token survives an admitted check.
	assert.NotEmpty(t, client.Store().Token())
}

func TestGuard_RejectedTokenClearsCache(t *testing.T) {
	client, guard := newGuardedClient(t)

	client.Store().SetToken("not-a-real-token")

	assert.Equal(t, StateRedirecting, guard.Check(context.Background()))
	assert.Empty(t, client.Store().Token(), "rejected token must be cleared")
}

func TestGuard_NetworkErrorClearsCache(t *testing.T) {
	srv, _ := newTestServer(t)
	client := NewClient(srv.URL, srv.Client(), NewMemoryStore())
	guard := NewGuard(client)

	require.NoError(t, client.Login(context.Background(), "secret123"))
	srv.Close()

	assert.Equal(t, StateRedirecting, guard.Check(context.Background()))
	assert.Empty(t, client.Store().Token())
}

func TestLogin_WrongPassword(t *testing.T) {
	client, _ := newGuardedClient(t)

	err := client.Login(context.Background(), "wrong")
	require.Error(t, err)
	assert.Empty(t, client.Store().Token())
}

func TestDashboardCounts(t *testing.T) {
	client, _ := newGuardedClient(t)
	require.NoError(t, client.Login(context.Background(), "secret123"))

	projects, contacts, err := client.DashboardCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, projects)
	assert.Equal(t, 1, contacts)
}

func TestDashboardCounts_UnauthenticatedFails(t *testing.T) {
	client, _ := newGuardedClient(t)

	_, _, err := client.DashboardCounts(context.Background())
	assert.Error(t, err)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "checking", StateChecking.String())
	assert.Equal(t, "admitted", StateAdmitted.String())
	assert.Equal(t, "redirecting", StateRedirecting.String())
}

// Guard responses decode exactly the shapes the API serves; a drift
// in the login payload would surface here.
func TestLogin_StoresServerIssuedToken(t *testing.T) {
	srv, tokens := newTestServer(t)
	client := NewClient(srv.URL, srv.Client(), NewMemoryStore())

	require.NoError(t, client.Login(context.Background(), "secret123"))

	claims, err := tokens.Verify(client.Store().Token())
	require.NoError(t, err)
	assert.True(t, claims.Admin)

	raw, _ := json.Marshal(claims)
	assert.Contains(t, string(raw), `"admin":true`)
}
