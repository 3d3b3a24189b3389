package navigation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/samber/oops"
)

// CodeNetwork tags failures talking to the admin API.
const CodeNetwork = "network_error"

// Client calls the admin API's membership check.
type Client struct {
	baseURL string
	client  *http.Client
}

type checkAdminResponse struct {
	IsAdmin bool `json:"isAdmin"`
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) CheckAdmin(ctx context.Context, username string) (bool, error) {
	errb := oops.In("navigation").Code(CodeNetwork).With("username", username)

	u := c.baseURL + "/api/admin/check-admin?" + url.Values{"username": {username}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, errb.Wrapf(err, "create request")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return false, errb.Wrapf(err, "do request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, errb.With("status", resp.StatusCode, "body", string(body)).Errorf("unexpected status: %d", resp.StatusCode)
	}

	var res checkAdminResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return false, errb.Wrapf(err, "decode response")
	}
	return res.IsAdmin, nil
}
