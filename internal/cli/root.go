// Package cli contains the cobra commands for the onboarding tool.
package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"employee_onboarding/internal/collab"
	"employee_onboarding/internal/config"
	"employee_onboarding/internal/google"
	"employee_onboarding/internal/onboarding"
	"employee_onboarding/internal/platform/logger"
	"employee_onboarding/internal/slack"
)

var (
	clientSecretPath string
	credentialsCache string
	verbose          bool
	version          = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Interactive employee onboarding across Google Workspace, Slack, GitHub and Trello",
	Long: `onboard walks an operator through provisioning a new employee:

  - create a Google Workspace account (temporary password, forced change at next login)
  - optionally add the account to directory groups
  - optionally invite the new address to Slack
  - optionally add GitHub and Trello accounts to their orgs

Every decision is collected up front; only the directory steps are fatal to
their own branch, everything else is best-effort and merely reported.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&clientSecretPath, "client-secret", "", "path to the OAuth client secret file (overrides GOOGLE_CLIENT_SECRET_FILE)")
	rootCmd.PersistentFlags().StringVar(&credentialsCache, "credentials-cache", "", "path to the cached OAuth credential (overrides GOOGLE_CREDENTIALS_CACHE)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if clientSecretPath != "" {
		cfg.GoogleClientSecretFile = clientSecretPath
	}
	if credentialsCache != "" {
		cfg.GoogleCredentialsCache = credentialsCache
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	appLogger, err := logger.New(cfg)
	if err != nil {
		return err
	}
	defer appLogger.Sync() //nolint:errcheck
	appLogger = appLogger.With(zap.String("session_id", uuid.NewString()))

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	prompter := onboarding.NewStdioPrompter(in, out)

	session := onboarding.NewSession(
		google.NewDirectoryClient(cfg, in, out, appLogger),
		slack.NewInviteService(cfg, out, appLogger),
		collab.NewGitHubInviter(cfg, out, appLogger),
		collab.NewTrelloInviter(cfg, out, appLogger),
		prompter,
		out,
		appLogger,
	)

	plan := onboarding.CollectPlan(prompter)
	return session.Run(cmd.Context(), plan)
}
