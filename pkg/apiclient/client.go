// Package apiclient is a typed client for the workspace REST API. It is the
// single source of truth for the wire contract: every operation is one HTTP
// round trip with no retries, and every failure is an *Error with a Kind.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultTimeout = 15 * time.Second

// Client talks to the workspace API at a fixed base URL.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) { c.httpc = httpc }
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client for the API rooted at baseURL, e.g.
// "http://localhost:3001".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: defaultTimeout},
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Auth ---

func (c *Client) Login(ctx context.Context, username, password string) (User, error) {
	body := map[string]string{"username": username, "password": password}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", nil, body, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *Client) Register(ctx context.Context, username, password, name, email string) (User, error) {
	body := map[string]string{
		"username": username,
		"password": password,
		"name":     name,
	}
	if email != "" {
		body["email"] = email
	}
	var user User
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", nil, body, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

// --- Tasks ---

func (c *Client) ListTasks(ctx context.Context, userID int64) ([]Task, error) {
	var tasks []Task
	if err := c.do(ctx, http.MethodGet, "/api/tasks", userQuery(userID), nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (c *Client) CreateTask(ctx context.Context, userID int64, title, dueDate string) (Task, error) {
	body := map[string]any{"title": title, "userId": userID}
	if dueDate != "" {
		body["dueDate"] = dueDate
	}
	var task Task
	if err := c.do(ctx, http.MethodPost, "/api/tasks", nil, body, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

func (c *Client) UpdateTask(ctx context.Context, userID, taskID int64, patch TaskPatch) (Task, error) {
	body := struct {
		TaskPatch
		UserID int64 `json:"userId"`
	}{TaskPatch: patch, UserID: userID}

	var task Task
	path := "/api/tasks/" + strconv.FormatInt(taskID, 10)
	if err := c.do(ctx, http.MethodPut, path, nil, body, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task and returns the deleted record.
func (c *Client) DeleteTask(ctx context.Context, userID, taskID int64) (Task, error) {
	var task Task
	path := "/api/tasks/" + strconv.FormatInt(taskID, 10)
	if err := c.do(ctx, http.MethodDelete, path, userQuery(userID), nil, &task); err != nil {
		return Task{}, err
	}
	return task, nil
}

// --- Notes ---

func (c *Client) ListNotes(ctx context.Context, userID int64) ([]Note, error) {
	var notes []Note
	if err := c.do(ctx, http.MethodGet, "/api/notes", userQuery(userID), nil, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, userID int64, title, body string) (Note, error) {
	payload := map[string]any{"title": title, "body": body, "userId": userID}
	var note Note
	if err := c.do(ctx, http.MethodPost, "/api/notes", nil, payload, &note); err != nil {
		return Note{}, err
	}
	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, userID, noteID int64, patch NotePatch) (Note, error) {
	body := struct {
		NotePatch
		UserID int64 `json:"userId"`
	}{NotePatch: patch, UserID: userID}

	var note Note
	path := "/api/notes/" + strconv.FormatInt(noteID, 10)
	if err := c.do(ctx, http.MethodPut, path, nil, body, &note); err != nil {
		return Note{}, err
	}
	return note, nil
}

func (c *Client) DeleteNote(ctx context.Context, userID, noteID int64) (Note, error) {
	var note Note
	path := "/api/notes/" + strconv.FormatInt(noteID, 10)
	if err := c.do(ctx, http.MethodDelete, path, userQuery(userID), nil, &note); err != nil {
		return Note{}, err
	}
	return note, nil
}

// Ping probes GET /api/health.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil, nil)
}

// --- Transport ---

// envelope mirrors the server's {success, data?, message?, count?} shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
}

// do performs one request/response round trip. dataOut, when non-nil,
// receives the envelope's data field.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dataOut any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Message: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(raw)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return &Error{Kind: KindValidation, Message: fmt.Sprintf("build request: %v", err)}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("transport failure")
		return &Error{Kind: KindNetwork, Message: NetworkErrMessage}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindNetwork, Message: NetworkErrMessage}
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 400 {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &Error{Kind: kindForStatus(resp.StatusCode), Message: msg, StatusCode: resp.StatusCode}
	}

	if decodeErr != nil {
		return &Error{Kind: KindServer, Message: "malformed response", StatusCode: resp.StatusCode}
	}

	if dataOut != nil {
		if len(env.Data) == 0 {
			return &Error{Kind: KindServer, Message: "response missing data", StatusCode: resp.StatusCode}
		}
		if err := json.Unmarshal(env.Data, dataOut); err != nil {
			return &Error{Kind: KindServer, Message: "malformed response", StatusCode: resp.StatusCode}
		}
	}
	return nil
}

func kindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindAuth
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status >= 500:
		return KindServer
	default:
		return KindValidation
	}
}

func userQuery(userID int64) url.Values {
	return url.Values{"userId": []string{strconv.FormatInt(userID, 10)}}
}
