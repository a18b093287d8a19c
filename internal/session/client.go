package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Client is a thin API client for the admin surface: login, token
// verification and the dashboard queries. Timeouts are whatever the
// supplied http.Client carries; there is no retry policy.
type Client struct {
	base  string
	http  *http.Client
	store TokenStore
}

func NewClient(baseURL string, httpClient *http.Client, store TokenStore) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if store == nil {
		store = NewMemoryStore()
	}
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		http:  httpClient,
		store: store,
	}
}

func (c *Client) Store() TokenStore { return c.store }

// Login exchanges the admin password for a token and caches it.
func (c *Client) Login(ctx context.Context, password string) error {
	body, _ := json.Marshal(map[string]string{"password": password})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/admin/login", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("login failed: status %d", resp.StatusCode)
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}

	c.store.SetToken(out.Token)
	return nil
}

// Verify asks the server whether the cached token is still valid.
func (c *Client) Verify(ctx context.Context) error {
	resp, err := c.get(ctx, "/api/admin/verify", true)
	if err != nil {
		return err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("verify failed: status %d", resp.StatusCode)
	}
	return nil
}

// DashboardCounts fetches the project and contact totals the admin
// dashboard shows. The two calls run concurrently purely for latency
// hiding; neither depends on the other.
func (c *Client) DashboardCounts(ctx context.Context) (projects, contacts int, err error) {
	var wg sync.WaitGroup
	var projErr, contErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		projects, projErr = c.count(ctx, "/api/projects", false)
	}()
	go func() {
		defer wg.Done()
		contacts, contErr = c.count(ctx, "/api/admin/contacts", true)
	}()
	wg.Wait()

	if projErr != nil {
		return 0, 0, projErr
	}
	if contErr != nil {
		return 0, 0, contErr
	}
	return projects, contacts, nil
}

func (c *Client) count(ctx context.Context, path string, authed bool) (int, error) {
	resp, err := c.get(ctx, path, authed)
	if err != nil {
		return 0, err
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
	}

	var items []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return 0, err
	}
	return len(items), nil
}

func (c *Client) get(ctx context.Context, path string, authed bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path, nil)
	if err != nil {
		return nil, err
	}
	if authed {
		if token := c.store.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return c.http.Do(req)
}

func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
