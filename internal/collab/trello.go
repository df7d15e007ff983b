// File: internal/collab/trello.go
package collab

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"employee_onboarding/internal/common"
	"employee_onboarding/internal/config"
	"employee_onboarding/internal/shared"
)

const trelloDefaultBaseURL = "https://api.trello.com"

// TrelloInviter adds members to a Trello organization, authenticating with
// the configured key/token pair in the query string (Trello's scheme).
type TrelloInviter struct {
	baseURL    string
	org        string
	key        string
	token      string
	httpClient *http.Client
	out        io.Writer
	logger     *zap.Logger
}

var _ shared.OrgInviter = (*TrelloInviter)(nil)

func NewTrelloInviter(cfg *config.Config, out io.Writer, logger *zap.Logger) *TrelloInviter {
	return &TrelloInviter{
		baseURL:    trelloDefaultBaseURL,
		org:        cfg.TrelloOrg,
		key:        cfg.TrelloKey,
		token:      cfg.TrelloToken,
		httpClient: http.DefaultClient,
		out:        out,
		logger:     logger.Named("TrelloInviter"),
	}
}

func (t *TrelloInviter) ServiceName() string { return "Trello" }

// InviteToOrg adds username to the org as a normal member and prints the
// raw response.
func (t *TrelloInviter) InviteToOrg(ctx context.Context, username string) error {
	fmt.Fprintf(t.out, "Inviting %s to Trello org %s\n", username, t.org)

	query := url.Values{}
	query.Set("key", t.key)
	query.Set("token", t.token)
	query.Set("type", "normal")

	reqURL := fmt.Sprintf("%s/1/organizations/%s/members/%s?%s", t.baseURL, t.org, username, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, nil)
	if err != nil {
		return common.NewNetworkError("unable to build Trello membership request").Wrap(err)
	}

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return common.NewNetworkError("Trello membership request failed").Wrap(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Fprintln(t.out, string(body))
	if resp.StatusCode >= 300 {
		t.logger.Warn("Trello membership request returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("username", username))
	}
	return nil
}
