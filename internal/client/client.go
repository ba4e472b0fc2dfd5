// Package client talks to the CRM API over HTTP and keeps the login in a
// Session.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/crm-api/internal/dto"
)

type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New builds a client for baseURL (e.g. http://localhost:8080). A nil
// session keeps credentials in memory only.
func New(baseURL string, session *Session, opts ...Option) *Client {
	if session == nil {
		session = &Session{}
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/") + "/api",
		http:    &http.Client{Timeout: 15 * time.Second},
		session: session,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Session() *Session {
	return c.session
}

// do sends one request. Any 401 drops the stored session.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		if err := c.session.Clear(); err != nil {
			return err
		}
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
			apiErr.Code = "http_error"
			apiErr.Message = resp.Status
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// IsUnauthenticated reports a 401 from the API.
func IsUnauthenticated(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.Status != 0 {
		q.Set("status", strconv.Itoa(p.Status))
	}
	if p.All {
		q.Set("all", "1")
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	return q
}

func fetch[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var out item[T]
	if err := c.do(ctx, method, path, nil, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out.Data, nil
}

func list[T any](ctx context.Context, c *Client, path string, p ListParams) (*Page[T], error) {
	var out Page[T]
	if err := c.do(ctx, http.MethodGet, path, p.values(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func idPath(resource string, id uint) string {
	return fmt.Sprintf("/%s/%d", resource, id)
}

// ======================================================
// AUTH
// ======================================================

func (c *Client) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	var out AuthResult
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, c.remember(&out)
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, c.remember(&out)
}

func (c *Client) remember(res *AuthResult) error {
	c.session.Set(res.Token, res.User)
	return c.session.Save()
}

// Logout revokes the token server-side and always clears the session.
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil, nil)
	if clearErr := c.session.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}
	return err
}

func (c *Client) Me(ctx context.Context) (*dto.UserDTO, error) {
	var out struct {
		User *dto.UserDTO `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.User, nil
}

func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := c.do(ctx, http.MethodPost, "/auth/forgot-password", nil, map[string]string{"email": email}, &out)
	return out.Message, err
}

func (c *Client) ResetPassword(ctx context.Context, in ResetPasswordInput) error {
	return c.do(ctx, http.MethodPost, "/auth/reset-password", nil, in, nil)
}

// ======================================================
// USERS
// ======================================================

func (c *Client) ListUsers(ctx context.Context, p ListParams) (*Page[dto.UserDTO], error) {
	return list[dto.UserDTO](ctx, c, "/users", p)
}

func (c *Client) GetUser(ctx context.Context, id uint) (*dto.UserDTO, error) {
	return fetch[*dto.UserDTO](ctx, c, http.MethodGet, idPath("users", id), nil)
}

func (c *Client) CreateUser(ctx context.Context, name, email, password string) (*dto.UserDTO, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	return fetch[*dto.UserDTO](ctx, c, http.MethodPost, "/users", body)
}

func (c *Client) UpdateUser(ctx context.Context, id uint, in UserInput) (*dto.UserDTO, error) {
	return fetch[*dto.UserDTO](ctx, c, http.MethodPut, idPath("users", id), in)
}

func (c *Client) DeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, idPath("users", id), nil, nil, nil)
}

// ======================================================
// CONTACTS
// ======================================================

func (c *Client) ListContacts(ctx context.Context, p ListParams) (*Page[dto.ContactDTO], error) {
	return list[dto.ContactDTO](ctx, c, "/contacts", p)
}

func (c *Client) GetContact(ctx context.Context, id uint) (*dto.ContactDTO, error) {
	return fetch[*dto.ContactDTO](ctx, c, http.MethodGet, idPath("contacts", id), nil)
}

func (c *Client) CreateContact(ctx context.Context, in ContactInput) (*dto.ContactDTO, error) {
	return fetch[*dto.ContactDTO](ctx, c, http.MethodPost, "/contacts", in)
}

func (c *Client) UpdateContact(ctx context.Context, id uint, in ContactInput) (*dto.ContactDTO, error) {
	return fetch[*dto.ContactDTO](ctx, c, http.MethodPut, idPath("contacts", id), in)
}

func (c *Client) DeleteContact(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, idPath("contacts", id), nil, nil, nil)
}

// ======================================================
// PROJECTS
// ======================================================

func (c *Client) ListProjects(ctx context.Context, p ListParams) (*Page[dto.ProjectDTO], error) {
	return list[dto.ProjectDTO](ctx, c, "/projects", p)
}

func (c *Client) GetProject(ctx context.Context, id uint) (*dto.ProjectDTO, error) {
	return fetch[*dto.ProjectDTO](ctx, c, http.MethodGet, idPath("projects", id), nil)
}

func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (*dto.ProjectDTO, error) {
	return fetch[*dto.ProjectDTO](ctx, c, http.MethodPost, "/projects", in)
}

func (c *Client) UpdateProject(ctx context.Context, id uint, in ProjectInput) (*dto.ProjectDTO, error) {
	return fetch[*dto.ProjectDTO](ctx, c, http.MethodPut, idPath("projects", id), in)
}

func (c *Client) DeleteProject(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, idPath("projects", id), nil, nil, nil)
}

// ======================================================
// DASHBOARD
// ======================================================

func (c *Client) DashboardStats(ctx context.Context) (*Stats, error) {
	return fetch[*Stats](ctx, c, http.MethodGet, "/dashboard/stats", nil)
}
