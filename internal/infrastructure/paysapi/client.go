package paysapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"paysadmin/internal/domain/entities"
)

var (
	// ErrNoToken means the login response was 2xx but carried no recognizable token field.
	ErrNoToken = errors.New("no token in login response")
	// ErrUnrecognizedEnvelope means a list/profile response matched none of the known shapes.
	ErrUnrecognizedEnvelope = errors.New("unrecognized response envelope")
)

// UpstreamError carries the status and the server-provided message of a failed
// upstream call, extracted from an {error} or {message} body when present.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.Status, e.Message)
}

// Client talks to the 19Pays admin REST API.
//
// No timeout is set on the HTTP client; this layer relies on the transport's
// defaults and the per-request context.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// AdminLogin exchanges operator credentials for an upstream bearer token.
// The token field has drifted across upstream deploys; all known spellings
// are accepted.
func (c *Client) AdminLogin(ctx context.Context, email, password string) (string, error) {
	body, err := c.postJSON(ctx, "/api/adminlogin", "", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return "", err
	}

	var resp struct {
		Token       string `json:"token"`
		JWT         string `json:"jwt"`
		AccessToken string `json:"access_token"`
		Data        struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}

	for _, tok := range []string{resp.Token, resp.JWT, resp.AccessToken, resp.Data.Token} {
		if tok != "" {
			c.logger.Info("admin login succeeded", zap.String("email", email))
			return tok, nil
		}
	}
	c.logger.Warn("login response carried no token", zap.String("email", email))
	return "", ErrNoToken
}

// ListUsers fetches every user summary. The upstream nests the list under
// varying keys; each known shape is tried in order and anything else fails
// the format check rather than decaying to an empty list.
func (c *Client) ListUsers(ctx context.Context, token string) ([]entities.User, error) {
	body, err := c.postJSON(ctx, "/api/users", token, struct{}{})
	if err != nil {
		return nil, err
	}

	raw, err := extractList(body)
	if err != nil {
		c.logger.Error("user list envelope not recognized", zap.Error(err))
		return nil, err
	}

	users := make([]entities.User, 0, len(raw))
	for _, item := range raw {
		var w wireUser
		if err := json.Unmarshal(item, &w); err != nil {
			return nil, fmt.Errorf("failed to decode user record: %w", err)
		}
		users = append(users, w.toEntity())
	}
	c.logger.Info("fetched users", zap.Int("count", len(users)))
	return users, nil
}

// extractList tries the known list envelopes: a bare array, then the list
// nested under "users", "data" or "result".
func extractList(body []byte) ([]json.RawMessage, error) {
	var bare []json.RawMessage
	if err := json.Unmarshal(body, &bare); err == nil {
		return bare, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, ErrUnrecognizedEnvelope
	}
	for _, key := range []string{"users", "data", "result"} {
		nested, ok := envelope[key]
		if !ok {
			continue
		}
		var list []json.RawMessage
		if err := json.Unmarshal(nested, &list); err == nil {
			return list, nil
		}
	}
	return nil, ErrUnrecognizedEnvelope
}

// GetUserProfile fetches the aggregate view for one user. The debt field may
// arrive as a single object or an array; both come back as a slice.
func (c *Client) GetUserProfile(ctx context.Context, token, uniqueID string) (entities.UserProfile, error) {
	body, err := c.postJSON(ctx, "/api/userdetails", token, map[string]string{
		"unique_user_id": uniqueID,
	})
	if err != nil {
		return entities.UserProfile{}, err
	}

	var w wireProfile
	if err := json.Unmarshal(body, &w); err != nil {
		c.logger.Error("profile envelope not recognized", zap.Error(err))
		return entities.UserProfile{}, ErrUnrecognizedEnvelope
	}
	profile := w.toEntity()
	c.logger.Info("fetched profile", zap.String("unique_id", uniqueID), zap.Int("debts", len(profile.Debts)))
	return profile, nil
}

// UpdateUserDebt submits one debt patch and returns the server's message.
func (c *Client) UpdateUserDebt(ctx context.Context, token string, upd entities.DebtUpdate) (string, error) {
	body, err := c.postJSON(ctx, "/api/updateuserdebt", token, upd)
	if err != nil {
		return "", err
	}

	var resp struct {
		Message string `json:"message"`
	}
	// The success body is optional; ignore bodies that aren't the envelope.
	_ = json.Unmarshal(body, &resp)
	c.logger.Info("debt update accepted",
		zap.String("debt_id", upd.DebtID),
		zap.String("approved", string(upd.Approved)),
		zap.Bool("paid", upd.Paid))
	return resp.Message, nil
}

// FetchAadhaar retrieves a KYC document. An image content type (declared or
// sniffed) classifies the payload as an image; everything else is treated as
// a PDF for inline display.
func (c *Client) FetchAadhaar(ctx context.Context, token, documentPath string) (entities.AadhaarDocument, error) {
	endpoint := c.baseURL + "/api/aadhaar/" + url.PathEscape(documentPath)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return entities.AadhaarDocument{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("aadhaar fetch failed", zap.Error(err))
		return entities.AadhaarDocument{}, fmt.Errorf("failed to fetch aadhaar document: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return entities.AadhaarDocument{}, fmt.Errorf("failed to read aadhaar document: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return entities.AadhaarDocument{}, upstreamError(resp.StatusCode, data)
	}

	contentType := resp.Header.Get("Content-Type")
	doc := entities.AadhaarDocument{
		Data:        data,
		ContentType: contentType,
		Kind:        classifyDocument(contentType, data),
	}
	if doc.Kind == entities.DocumentPDF && !strings.Contains(contentType, "pdf") {
		doc.ContentType = "application/pdf"
	}
	c.logger.Info("fetched aadhaar document",
		zap.String("content_type", doc.ContentType),
		zap.Int("bytes", len(data)))
	return doc, nil
}

func classifyDocument(contentType string, data []byte) entities.DocumentKind {
	if strings.HasPrefix(contentType, "image/") {
		return entities.DocumentImage
	}
	if strings.HasPrefix(http.DetectContentType(data), "image/") {
		return entities.DocumentImage
	}
	return entities.DocumentPDF
}

// postJSON issues one POST and returns the raw body of a 2xx response.
// Non-2xx responses become UpstreamError with the extracted server message.
func (c *Client) postJSON(ctx context.Context, path, token string, payload any) ([]byte, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("upstream request failed", zap.String("path", path), zap.Error(err))
		return nil, fmt.Errorf("failed to reach upstream: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Warn("upstream returned error",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, upstreamError(resp.StatusCode, body)
	}
	return body, nil
}

// upstreamError pulls a human-readable message out of an error body,
// preferring {error}, then {message}, then the raw text.
func upstreamError(status int, body []byte) *UpstreamError {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return &UpstreamError{Status: status, Message: envelope.Error}
		}
		if envelope.Message != "" {
			return &UpstreamError{Status: status, Message: envelope.Message}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return &UpstreamError{Status: status, Message: text}
	}
	return &UpstreamError{Status: status, Message: fmt.Sprintf("request failed with status %d", status)}
}

// parseTime tolerates the timestamp spellings seen in upstream payloads.
func parseTime(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05.000Z0700"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
