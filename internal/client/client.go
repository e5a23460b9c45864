package client

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/types"
)

// UsersResponse mirrors the /users payload.
type UsersResponse struct {
	Users   []types.UserSummary `json:"users"`
	IsAdmin bool                `json:"isAdmin"`
	Message string              `json:"message"`
}

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// APIClient talks to the access layer over HTTP.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

func NewAPIClient(baseURL string, log *logger.Logger) *APIClient {
	return &APIClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		log:        log.With("component", "APIClient"),
	}
}

func (c *APIClient) FetchUserData(ctx context.Context, user, currentUser string) (types.DashboardData, error) {
	endpoint := fmt.Sprintf("%s/user-data?user=%s&currentUser=%s",
		c.baseURL, url.QueryEscape(user), url.QueryEscape(currentUser))

	var data types.DashboardData
	if err := c.getJSON(ctx, endpoint, &data); err != nil {
		return types.DashboardData{}, err
	}
	return data, nil
}

func (c *APIClient) FetchUsers(ctx context.Context, currentUser string) (UsersResponse, error) {
	endpoint := fmt.Sprintf("%s/users?currentUser=%s", c.baseURL, url.QueryEscape(currentUser))

	var resp UsersResponse
	if err := c.getJSON(ctx, endpoint, &resp); err != nil {
		return UsersResponse{}, err
	}
	return resp, nil
}

func (c *APIClient) FetchRecentActivity(ctx context.Context) ([]types.ActivityEntry, error) {
	var entries []types.ActivityEntry
	if err := c.getJSON(ctx, c.baseURL+"/recent-activity", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SubscribeActivity opens the push feed at /activity/stream and invokes
// onEvent for every insert notification. Blocks until the context is
// canceled or the stream closes; heartbeat comments are skipped.
func (c *APIClient) SubscribeActivity(ctx context.Context, onEvent func(entry types.ActivityEntry)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activity/stream", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	scanner := bufio.NewScanner(resp.Body)
	var data string
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case line == "":
			if data == "" {
				continue
			}
			var ev struct {
				Name   string `json:"name"`
				Action string `json:"action"`
				Time   string `json:"time"`
			}
			if err := json.Unmarshal([]byte(data), &ev); err != nil {
				c.log.Warn("Dropping malformed push event", "error", err)
			} else {
				onEvent(types.ActivityEntry{Name: ev.Name, Action: ev.Action, Time: ev.Time})
			}
			data = ""
		case strings.HasPrefix(line, "data:"):
			data = strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return scanner.Err()
}

func (c *APIClient) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil {
			if apiErr.Error != "" {
				return fmt.Errorf("%s", apiErr.Error)
			}
			if apiErr.Message != "" {
				return fmt.Errorf("%s", apiErr.Message)
			}
		}
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
