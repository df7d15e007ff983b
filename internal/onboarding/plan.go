// File: internal/onboarding/plan.go
package onboarding

// Plan captures every operator decision and collected field before any
// network call is made. It is pure data: the session consumes it, which is
// what makes the orchestration testable with fakes.
type Plan struct {
	CreateDirectoryAccount bool
	FirstName              string
	LastName               string
	TemporaryPassword      string

	AssignGroups bool
	InviteToChat bool

	AddToGitHub    bool
	GitHubUsername string

	AddToTrello    bool
	TrelloUsername string
}

// CollectPlan gathers the whole plan interactively, decisions first. Blank
// required fields are kept as-is; the session later skips the dependent
// branch rather than treating them as errors.
func CollectPlan(pr Prompter) *Plan {
	plan := &Plan{}

	plan.CreateDirectoryAccount = pr.Confirm("Create Google Workspace account")
	if plan.CreateDirectoryAccount {
		plan.FirstName = pr.Ask("Enter employee first name")
		plan.LastName = pr.Ask("Enter employee last name")
		plan.TemporaryPassword = pr.Ask("Enter temporary password")
		plan.AssignGroups = pr.Confirm("Assign to groups")
		plan.InviteToChat = pr.Confirm("Invite to Slack")
	}

	plan.AddToGitHub = pr.Confirm("Add GitHub account to org")
	if plan.AddToGitHub {
		plan.GitHubUsername = pr.Ask("Enter employee GitHub username")
	}

	plan.AddToTrello = pr.Confirm("Add Trello account to org")
	if plan.AddToTrello {
		plan.TrelloUsername = pr.Ask("Enter employee Trello username")
	}

	return plan
}

// directoryReady reports whether the directory branch should run: the
// operator said yes and all three required fields are non-empty.
func (p *Plan) directoryReady() bool {
	return p.CreateDirectoryAccount && p.FirstName != "" && p.LastName != "" && p.TemporaryPassword != ""
}
