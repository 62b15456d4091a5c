package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"stockdex/internal/models"
)

// Client is a minimal GitLab v4 API client covering the two calls the
// activity importer needs: user lookup and per-user event listing.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a GitLab client for the given instance URL and private
// token.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

type gitlabUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type gitlabEvent struct {
	ActionName string `json:"action_name"`
}

// UserID resolves a GitLab username to its numeric user ID.
func (c *Client) UserID(ctx context.Context, username string) (int64, error) {
	var users []gitlabUser
	params := url.Values{"username": {username}}
	if err := c.get(ctx, "/api/v4/users", params, &users); err != nil {
		return 0, err
	}
	if len(users) == 0 {
		return 0, fmt.Errorf("gitlab user %q not found", username)
	}
	return users[0].ID, nil
}

// DayActivity counts a user's events for the given day, keyed by action
// name with spaces replaced by underscores, plus a "total" entry. The events
// API filters with exclusive after/before bounds, so the query spans the
// surrounding days.
func (c *Client) DayActivity(ctx context.Context, userID int64, day time.Time) (models.ActivityDelta, error) {
	after := day.AddDate(0, 0, -1).Format("2006-01-02")
	before := day.AddDate(0, 0, 1).Format("2006-01-02")

	activity := models.ActivityDelta{}
	for page := 1; ; page++ {
		params := url.Values{
			"after":    {after},
			"before":   {before},
			"per_page": {"100"},
			"page":     {strconv.Itoa(page)},
		}
		var events []gitlabEvent
		path := fmt.Sprintf("/api/v4/users/%d/events", userID)
		if err := c.get(ctx, path, params, &events); err != nil {
			return nil, err
		}
		for _, event := range events {
			key := strings.ReplaceAll(event.ActionName, " ", "_")
			activity[key]++
			activity["total"]++
		}
		if len(events) < 100 {
			break
		}
	}
	return activity, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("PRIVATE-TOKEN", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gitlab request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gitlab request %s returned %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
