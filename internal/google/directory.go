// File: internal/google/directory.go
package google

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"employee_onboarding/internal/common"
	"employee_onboarding/internal/config"
	"employee_onboarding/internal/shared"
)

const memberRole = "MEMBER"

// DirectoryClient wraps the Admin SDK Directory API. The underlying service
// is built lazily on first use so that credential acquisition (including the
// interactive consent flow) only happens if the directory branch actually
// runs.
type DirectoryClient struct {
	cfg    *config.Config
	in     io.Reader
	out    io.Writer
	logger *zap.Logger
	svc    *admin.Service
}

var _ shared.DirectoryService = (*DirectoryClient)(nil)

// NewDirectoryClient creates a directory client. in/out are the operator's
// terminal streams, used only by the consent flow.
func NewDirectoryClient(cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger) *DirectoryClient {
	return &DirectoryClient{
		cfg:    cfg,
		in:     in,
		out:    out,
		logger: logger.Named("DirectoryClient"),
	}
}

func (c *DirectoryClient) ensureService(ctx context.Context) error {
	if c.svc != nil {
		return nil
	}
	store, err := NewCredentialStore(c.cfg, c.in, c.out, c.logger)
	if err != nil {
		return err
	}
	ts, err := store.TokenSource(ctx)
	if err != nil {
		return err
	}
	svc, err := admin.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return common.NewAuthError("unable to initialize directory service").Wrap(err)
	}
	c.svc = svc
	return nil
}

// PrimaryEmail derives the canonical address for a new employee: lowercase
// first name, dot, lowercase last name, at the org domain. No other
// transformation is applied.
func PrimaryEmail(firstName, lastName, domain string) string {
	return strings.ToLower(firstName) + "." + strings.ToLower(lastName) + "@" + domain
}

// CreateUser inserts a new directory account with a temporary password that
// must be changed at next login. One shot: a non-success response is
// returned with the raw body for the operator to read, never retried.
func (c *DirectoryClient) CreateUser(ctx context.Context, firstName, lastName, temporaryPassword string) (*shared.DirectoryUser, error) {
	if err := c.ensureService(ctx); err != nil {
		return nil, err
	}
	email := PrimaryEmail(firstName, lastName, c.cfg.OrgDomain)
	user := &admin.User{
		PrimaryEmail: email,
		Name: &admin.UserName{
			GivenName:  firstName,
			FamilyName: lastName,
			FullName:   firstName + " " + lastName,
		},
		Password:                  temporaryPassword,
		ChangePasswordAtNextLogin: true,
	}
	created, err := c.svc.Users.Insert(user).Context(ctx).Do()
	if err != nil {
		return nil, directoryError("unable to create user "+email, err)
	}
	c.logger.Info("created directory user",
		zap.String("id", created.Id),
		zap.String("primary_email", created.PrimaryEmail))
	return &shared.DirectoryUser{
		ID:           created.Id,
		PrimaryEmail: created.PrimaryEmail,
		GivenName:    firstName,
		FamilyName:   lastName,
	}, nil
}

// ListGroups fetches a single page of groups for the configured customer,
// in the order the service returns them. Deliberately no pagination: the
// list is only used for index-based selection at the terminal.
func (c *DirectoryClient) ListGroups(ctx context.Context) ([]shared.Group, error) {
	if err := c.ensureService(ctx); err != nil {
		return nil, err
	}
	res, err := c.svc.Groups.List().
		Customer(c.cfg.GoogleCustomerID).
		MaxResults(c.cfg.GroupPageSize).
		Context(ctx).Do()
	if err != nil {
		return nil, directoryError("unable to list groups", err)
	}
	groups := make([]shared.Group, 0, len(res.Groups))
	for _, g := range res.Groups {
		groups = append(groups, shared.Group{ID: g.Id, Name: g.Name, Email: g.Email})
	}
	return groups, nil
}

// AddUserToGroup inserts a membership record for user into group. Failures
// are scoped to this one group; callers continue with their remaining
// selections.
func (c *DirectoryClient) AddUserToGroup(ctx context.Context, user *shared.DirectoryUser, group shared.Group) error {
	if err := c.ensureService(ctx); err != nil {
		return err
	}
	member := &admin.Member{Id: user.ID, Role: memberRole}
	if _, err := c.svc.Members.Insert(group.ID, member).Context(ctx).Do(); err != nil {
		return directoryError(fmt.Sprintf("unable to add %s to group %s", user.PrimaryEmail, group.Name), err)
	}
	c.logger.Info("added user to group",
		zap.String("primary_email", user.PrimaryEmail),
		zap.String("group", group.Name))
	return nil
}

// directoryError classifies an Admin SDK failure: an API-level error keeps
// its raw response body for diagnosis, anything else is a transport failure.
func directoryError(message string, err error) *common.StepError {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		return common.NewDirectoryAPIError(message).WithDetails(gerr.Body).Wrap(err)
	}
	return common.NewNetworkError(message).Wrap(err)
}
