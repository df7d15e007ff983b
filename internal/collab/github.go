// File: internal/collab/github.go
package collab

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"employee_onboarding/internal/common"
	"employee_onboarding/internal/config"
	"employee_onboarding/internal/shared"
)

const githubDefaultBaseURL = "https://api.github.com"

// GitHubInviter adds members to a GitHub organization via the memberships
// endpoint, authenticating with the configured machine user and key. Same
// fire-and-report contract as the other best-effort integrations.
type GitHubInviter struct {
	baseURL    string
	org        string
	user       string
	key        string
	httpClient *http.Client
	out        io.Writer
	logger     *zap.Logger
}

var _ shared.OrgInviter = (*GitHubInviter)(nil)

func NewGitHubInviter(cfg *config.Config, out io.Writer, logger *zap.Logger) *GitHubInviter {
	return &GitHubInviter{
		baseURL:    githubDefaultBaseURL,
		org:        cfg.GitHubOrg,
		user:       cfg.GitHubUser,
		key:        cfg.GitHubKey,
		httpClient: http.DefaultClient,
		out:        out,
		logger:     logger.Named("GitHubInviter"),
	}
}

func (g *GitHubInviter) ServiceName() string { return "GitHub" }

// InviteToOrg sets an org membership for username. Creating the membership
// sends GitHub's own invitation email; the raw response is printed for the
// operator to read.
func (g *GitHubInviter) InviteToOrg(ctx context.Context, username string) error {
	fmt.Fprintf(g.out, "Inviting %s to GitHub org %s\n", username, g.org)

	reqURL := fmt.Sprintf("%s/orgs/%s/memberships/%s", g.baseURL, g.org, username)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, nil)
	if err != nil {
		return common.NewNetworkError("unable to build GitHub membership request").Wrap(err)
	}
	req.SetBasicAuth(g.user, g.key)
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return common.NewNetworkError("GitHub membership request failed").Wrap(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Fprintln(g.out, string(body))
	if resp.StatusCode >= 300 {
		g.logger.Warn("GitHub membership request returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.String("username", username))
	}
	return nil
}
