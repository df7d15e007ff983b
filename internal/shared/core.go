package shared

import "context"

// DirectoryUser represents an account created in the directory service.
// It exists only for the duration of the session; the authoritative copy
// lives in the remote directory.
type DirectoryUser struct {
	ID           string
	PrimaryEmail string
	GivenName    string
	FamilyName   string
}

// Group represents a directory group, fetched fresh each session.
type Group struct {
	ID    string
	Name  string
	Email string
}

// DirectoryService is the contract for the identity-provider account
// management API. All three operations require a valid credential; the
// implementation acquires one lazily so that an aborted consent flow only
// takes down the directory branch.
type DirectoryService interface {
	CreateUser(ctx context.Context, firstName, lastName, temporaryPassword string) (*DirectoryUser, error)
	ListGroups(ctx context.Context) ([]Group, error)
	AddUserToGroup(ctx context.Context, user *DirectoryUser, group Group) error
}

// ChatInviter invites a user to the team-chat service. Implementations are
// best-effort: a non-success response is reported, not returned as an error.
type ChatInviter interface {
	Invite(ctx context.Context, firstName, lastName, email string) error
}

// OrgInviter adds a username to a collaboration-service organization.
// Same best-effort semantics as ChatInviter.
type OrgInviter interface {
	InviteToOrg(ctx context.Context, username string) error
	ServiceName() string
}
