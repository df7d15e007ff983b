// File: internal/onboarding/session.go
package onboarding

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"employee_onboarding/internal/shared"
)

// Session sequences one onboarding run across the four integrations. The
// directory branch is the only one whose failures alter control flow (and
// only within that branch); chat and collaboration-org invites are
// best-effort by design.
type Session struct {
	directory shared.DirectoryService
	chat      shared.ChatInviter
	github    shared.OrgInviter
	trello    shared.OrgInviter
	prompter  Prompter
	out       io.Writer
	logger    *zap.Logger

	stepColor *color.Color
}

// NewSession wires the session with its collaborators.
func NewSession(
	directory shared.DirectoryService,
	chat shared.ChatInviter,
	github shared.OrgInviter,
	trello shared.OrgInviter,
	prompter Prompter,
	out io.Writer,
	logger *zap.Logger,
) *Session {
	return &Session{
		directory: directory,
		chat:      chat,
		github:    github,
		trello:    trello,
		prompter:  prompter,
		out:       out,
		logger:    logger.Named("Session"),
		stepColor: color.New(color.FgCyan, color.Bold),
	}
}

// Run executes the plan. It returns an error only for failures outside the
// per-branch policy; today every failure is scoped to its branch, printed,
// and the run continues, so the session always reaches the end.
func (s *Session) Run(ctx context.Context, plan *Plan) error {
	if plan.directoryReady() {
		s.runDirectoryBranch(ctx, plan)
	} else if plan.CreateDirectoryAccount {
		fmt.Fprintln(s.out, "Skipping account creation: first name, last name and temporary password are all required.")
	}

	if plan.AddToGitHub && plan.GitHubUsername != "" {
		s.inviteToOrg(ctx, s.github, plan.GitHubUsername)
	}
	if plan.AddToTrello && plan.TrelloUsername != "" {
		s.inviteToOrg(ctx, s.trello, plan.TrelloUsername)
	}
	return nil
}

// runDirectoryBranch creates the account and, on success, runs the group
// and chat sub-steps. A creation failure aborts this branch only.
func (s *Session) runDirectoryBranch(ctx context.Context, plan *Plan) {
	s.stepColor.Fprintln(s.out, "Creating user in Google Workspace")
	user, err := s.directory.CreateUser(ctx, plan.FirstName, plan.LastName, plan.TemporaryPassword)
	if err != nil {
		fmt.Fprintf(s.out, "Account creation failed: %v\n", err)
		s.logger.Error("directory user creation failed", zap.Error(err))
		return
	}
	fmt.Fprintf(s.out, "Created %s (id %s)\n", user.PrimaryEmail, user.ID)

	if plan.AssignGroups {
		s.assignGroups(ctx, user)
	}
	if plan.InviteToChat {
		if err := s.chat.Invite(ctx, plan.FirstName, plan.LastName, user.PrimaryEmail); err != nil {
			fmt.Fprintf(s.out, "Slack invite failed: %v\n", err)
			s.logger.Warn("chat invite failed", zap.Error(err))
		}
	}
}

// assignGroups lists the customer's groups, collects index selections until
// a blank line, and adds the user to each confirmed group. One group
// failing never stops the rest.
func (s *Session) assignGroups(ctx context.Context, user *shared.DirectoryUser) {
	s.stepColor.Fprintln(s.out, "Assigning groups")
	groups, err := s.directory.ListGroups(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Unable to list groups: %v\n", err)
		s.logger.Error("group listing failed", zap.Error(err))
		return
	}
	if len(groups) == 0 {
		fmt.Fprintln(s.out, "No groups found.")
		return
	}

	for i, g := range groups {
		fmt.Fprintf(s.out, "%d: %s\n", i, g.Name)
	}

	var selected []shared.Group
	for {
		answer := s.prompter.Ask("Enter a group number to add (blank to stop)")
		if answer == "" {
			break
		}
		idx, err := strconv.Atoi(answer)
		if err != nil || idx < 0 || idx >= len(groups) {
			fmt.Fprintf(s.out, "Invalid selection %q\n", answer)
			continue
		}
		selected = append(selected, groups[idx])
	}
	if len(selected) == 0 {
		return
	}

	names := make([]string, len(selected))
	for i, g := range selected {
		names[i] = g.Name
	}
	fmt.Fprintf(s.out, "Selected groups: %s\n", strings.Join(names, ", "))
	if !s.prompter.Confirm("Add " + user.PrimaryEmail + " to these groups") {
		fmt.Fprintln(s.out, "No groups added.")
		return
	}

	for _, g := range selected {
		if err := s.directory.AddUserToGroup(ctx, user, g); err != nil {
			fmt.Fprintf(s.out, "Adding to group %s failed: %v\n", g.Name, err)
			s.logger.Warn("group add failed", zap.String("group", g.Name), zap.Error(err))
			continue
		}
		fmt.Fprintf(s.out, "Added to %s\n", g.Name)
	}
}

func (s *Session) inviteToOrg(ctx context.Context, inviter shared.OrgInviter, username string) {
	s.stepColor.Fprintf(s.out, "Adding %s account to org\n", inviter.ServiceName())
	if err := inviter.InviteToOrg(ctx, username); err != nil {
		fmt.Fprintf(s.out, "%s invite failed: %v\n", inviter.ServiceName(), err)
		s.logger.Warn("org invite failed",
			zap.String("service", inviter.ServiceName()),
			zap.String("username", username),
			zap.Error(err))
	}
}
