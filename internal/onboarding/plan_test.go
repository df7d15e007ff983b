package onboarding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func collectFromInput(t *testing.T, input string) *Plan {
	t.Helper()
	return CollectPlan(NewStdioPrompter(strings.NewReader(input), &bytes.Buffer{}))
}

func TestCollectPlanFullRun(t *testing.T) {
	plan := collectFromInput(t, strings.Join([]string{
		"y",        // create account
		"  Alice ", // first name, trimmed
		"Smith",    // last name
		"Temp123",  // temporary password
		"y",        // assign groups
		"y",        // invite to Slack
		"y",        // GitHub
		"asmith",   // GitHub username
		"n",        // Trello
	}, "\n") + "\n")

	assert.True(t, plan.CreateDirectoryAccount)
	assert.Equal(t, "Alice", plan.FirstName)
	assert.Equal(t, "Smith", plan.LastName)
	assert.Equal(t, "Temp123", plan.TemporaryPassword)
	assert.True(t, plan.AssignGroups)
	assert.True(t, plan.InviteToChat)
	assert.True(t, plan.AddToGitHub)
	assert.Equal(t, "asmith", plan.GitHubUsername)
	assert.False(t, plan.AddToTrello)
	assert.Empty(t, plan.TrelloUsername)
}

func TestCollectPlanSkipsDirectoryQuestionsWhenDeclined(t *testing.T) {
	plan := collectFromInput(t, "n\nn\ny\njdoe\n")

	assert.False(t, plan.CreateDirectoryAccount)
	assert.Empty(t, plan.FirstName)
	assert.False(t, plan.AssignGroups)
	assert.False(t, plan.InviteToChat)
	assert.False(t, plan.AddToGitHub)
	assert.True(t, plan.AddToTrello)
	assert.Equal(t, "jdoe", plan.TrelloUsername)
}

func TestCollectPlanAnythingButYIsNo(t *testing.T) {
	// "yes", "Y" and blank all read as no.
	plan := collectFromInput(t, "yes\nY\n\n")
	assert.False(t, plan.CreateDirectoryAccount)
	assert.False(t, plan.AddToGitHub)
	assert.False(t, plan.AddToTrello)
}

func TestDirectoryReady(t *testing.T) {
	plan := &Plan{CreateDirectoryAccount: true, FirstName: "Alice", LastName: "Smith", TemporaryPassword: "Temp123"}
	assert.True(t, plan.directoryReady())

	blankPassword := *plan
	blankPassword.TemporaryPassword = ""
	assert.False(t, blankPassword.directoryReady())

	declined := *plan
	declined.CreateDirectoryAccount = false
	assert.False(t, declined.directoryReady())
}
