package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/go-scim-owner/internal/config"
	"github.com/MKhiriev/go-scim-owner/internal/logger"
	"github.com/MKhiriev/go-scim-owner/internal/utils"
	"github.com/MKhiriev/go-scim-owner/models"
)

const (
	apiVersion = "2022-11-28"

	usersPath = "/scim/v2/enterprises/{enterprise}/Users"
	userPath  = "/scim/v2/enterprises/{enterprise}/Users/{id}"
)

type scimAdapter struct {
	client  *utils.HTTPClient
	limiter *rate.Limiter

	mu          sync.RWMutex
	directoryID string
	token       string

	logger *logger.Logger
}

// NewSCIMAdapter constructs the resty implementation of [DirectoryAdapter].
// It normalises cfg.APIURL, applies the request timeout and, when
// cfg.RateLimit is positive, paces requests to that many per second. Pacing
// only delays requests; nothing is ever re-sent.
//
// Returns an error if cfg.APIURL is empty or cannot be parsed.
func NewSCIMAdapter(cfg config.ClientAdapter, logger *logger.Logger) (DirectoryAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.APIURL)
	if err != nil {
		return nil, fmt.Errorf("invalid directory api url: %w", err)
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL: baseURL,
		Timeout: cfg.RequestTimeout,
		Headers: map[string]string{
			"Accept":               utils.ContentTypeSCIM,
			"X-GitHub-Api-Version": apiVersion,
		},
		Logger: logger,
	})

	a := &scimAdapter{client: client, logger: logger}
	if cfg.RateLimit > 0 {
		burst := int(math.Ceil(cfg.RateLimit))
		a.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (a *scimAdapter) SetCredentials(directoryID, token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.directoryID = strings.TrimSpace(directoryID)
	a.token = strings.TrimSpace(token)
}

func (a *scimAdapter) Reset() {
	a.SetCredentials("", "")
}

func (a *scimAdapter) DirectoryID() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.directoryID
}

func (a *scimAdapter) ProbeUsers(ctx context.Context) (models.ListResponse, error) {
	return a.listUsers(ctx, "probe users", map[string]string{"count": "1"})
}

func (a *scimAdapter) ListUsers(ctx context.Context, page models.PageRequest) (models.ListResponse, error) {
	return a.listUsers(ctx, "list users", map[string]string{
		"startIndex": strconv.Itoa(page.StartIndex),
		"count":      strconv.Itoa(page.Count),
	})
}

func (a *scimAdapter) listUsers(ctx context.Context, op string, query map[string]string) (models.ListResponse, error) {
	req, err := a.authedRequest(ctx, op)
	if err != nil {
		return models.ListResponse{}, err
	}

	resp, err := req.SetQueryParams(query).Get(usersPath)
	if err != nil {
		return models.ListResponse{}, fmt.Errorf("%w: %s request: %w", ErrTransport, op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListResponse{}, err
	}

	var list models.ListResponse
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.ListResponse{}, fmt.Errorf("decode %s response: %w", op, err)
	}

	return list, nil
}

func (a *scimAdapter) GetUser(ctx context.Context, id string) (models.ScimUser, error) {
	req, err := a.authedRequest(ctx, "get user")
	if err != nil {
		return models.ScimUser{}, err
	}

	resp, err := req.SetPathParam("id", id).Get(userPath)
	if err != nil {
		return models.ScimUser{}, fmt.Errorf("%w: get user request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ScimUser{}, err
	}

	var user models.ScimUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.ScimUser{}, fmt.Errorf("decode get user response: %w", err)
	}

	return user, nil
}

func (a *scimAdapter) ReplaceRoles(ctx context.Context, id, roleID string) error {
	req, err := a.authedRequest(ctx, "replace roles")
	if err != nil {
		return err
	}

	body, err := json.Marshal(models.NewReplaceRolesPatch(roleID))
	if err != nil {
		return fmt.Errorf("encode patch: %w", err)
	}

	resp, err := req.
		SetHeader("Content-Type", utils.ContentTypeSCIM).
		SetPathParam("id", id).
		SetBody(body).
		Patch(userPath)
	if err != nil {
		return fmt.Errorf("%w: replace roles request: %w", ErrTransport, err)
	}

	return mapHTTPError(resp)
}

// authedRequest waits for the rate limiter and returns a request carrying
// the bearer token and the enterprise path parameter.
func (a *scimAdapter) authedRequest(ctx context.Context, op string) (*resty.Request, error) {
	a.mu.RLock()
	directoryID, token := a.directoryID, a.token
	a.mu.RUnlock()

	if directoryID == "" || token == "" {
		return nil, ErrNotConfigured
	}

	if a.limiter != nil {
		if err := a.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: %s rate limit wait: %w", ErrTransport, op, err)
		}
	}

	return a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		SetPathParam("enterprise", directoryID), nil
}
