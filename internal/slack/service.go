// File: internal/slack/service.go
package slack

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

const defaultBaseURL = "https://slack.com"

// InviteService issues workspace invites through the admin invite endpoint.
// It is fire-and-report: the raw response body is printed for the operator
// and a non-success HTTP status never turns into an error, so a broken
// Slack integration cannot abort the rest of the onboarding run.
type InviteService struct {
	baseURL    string
	token      string
	httpClient *http.Client
	out        io.Writer
	logger     *zap.Logger
}

var _ shared.ChatInviter = (*InviteService)(nil)

// NewInviteService creates a Slack invite client from the static bearer
// token in the configuration.
func NewInviteService(cfg *config.Config, out io.Writer, logger *zap.Logger) *InviteService {
	return &InviteService{
		baseURL:    defaultBaseURL,
		token:      cfg.SlackToken,
		httpClient: http.DefaultClient,
		out:        out,
		logger:     logger.Named("SlackInviteService"),
	}
}

// Invite requests a workspace invitation for the given identity. Only a
// transport-level failure is returned as an error, and even that is treated
// as best-effort by the caller.
func (s *InviteService) Invite(ctx context.Context, firstName, lastName, email string) error {
	fmt.Fprintf(s.out, "Inviting %s %s (%s) to Slack\n", firstName, lastName, email)

	query := url.Values{}
	query.Set("token", s.token)
	query.Set("email", email)
	query.Set("first_name", firstName)
	query.Set("last_name", lastName)

	reqURL := s.baseURL + "/api/users.admin.invite?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return common.NewNetworkError("unable to build Slack invite request").Wrap(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return common.NewNetworkError("Slack invite request failed").Wrap(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Fprintln(s.out, string(body))
	if resp.StatusCode >= 300 {
		// Logged with a distinct status field, but still not an error.
		s.logger.Warn("Slack invite returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("email", email))
	}
	return nil
}
