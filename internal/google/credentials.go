// File: internal/google/credentials.go
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	admin "google.golang.org/api/admin/directory/v1"

	"employee_onboarding/internal/common"
	"employee_onboarding/internal/config"
	"employee_onboarding/internal/platform/crypto"
)

// CredentialStore obtains the OAuth credential used for directory calls.
// It reads a cached token from disk first; when the cache is missing or
// expired it runs the interactive authorization-code flow and rewrites the
// cache file. One store serves exactly one run of the tool.
type CredentialStore struct {
	conf      *oauth2.Config
	cachePath string
	in        io.Reader
	out       io.Writer
	logger    *zap.Logger
}

// NewCredentialStore parses the client-secret descriptor referenced by the
// configuration. A missing or malformed descriptor is an auth failure: it
// takes down the directory branch, not the whole session.
func NewCredentialStore(cfg *config.Config, in io.Reader, out io.Writer, logger *zap.Logger) (*CredentialStore, error) {
	b, err := os.ReadFile(cfg.GoogleClientSecretFile)
	if err != nil {
		return nil, common.NewAuthError(
			fmt.Sprintf("unable to read client secret file %s", cfg.GoogleClientSecretFile)).Wrap(err)
	}
	conf, err := googleoauth.ConfigFromJSON(b, admin.AdminDirectoryUserScope, admin.AdminDirectoryGroupScope)
	if err != nil {
		return nil, common.NewAuthError("unable to parse client secret file").Wrap(err)
	}
	return &CredentialStore{
		conf:      conf,
		cachePath: cfg.GoogleCredentialsCache,
		in:        in,
		out:       out,
		logger:    logger.Named("CredentialStore"),
	}, nil
}

// Token returns a valid credential, preferring the cache over a fresh
// interactive consent round trip.
func (s *CredentialStore) Token(ctx context.Context) (*oauth2.Token, error) {
	tok, err := s.tokenFromCache()
	if err == nil && tok.Valid() {
		s.logger.Debug("using cached credential", zap.String("cache_path", s.cachePath))
		return tok, nil
	}
	tok, err = s.tokenFromConsent(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.saveToken(tok); err != nil {
		s.logger.Warn("failed to persist credential cache", zap.Error(err))
	}
	return tok, nil
}

// TokenSource wraps Token for the API client; the returned source refreshes
// transparently for the rest of the session.
func (s *CredentialStore) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	tok, err := s.Token(ctx)
	if err != nil {
		return nil, err
	}
	return s.conf.TokenSource(ctx, tok), nil
}

func (s *CredentialStore) tokenFromCache() (*oauth2.Token, error) {
	f, err := os.Open(s.cachePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, err
	}
	return tok, nil
}

func (s *CredentialStore) tokenFromConsent(ctx context.Context) (*oauth2.Token, error) {
	state, err := crypto.GenerateStateToken(16)
	if err != nil {
		return nil, common.NewAuthError("unable to generate state token").Wrap(err)
	}
	authURL := s.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
	fmt.Fprintf(s.out, "Go to the following link in your browser, authorize the app, then paste the code below:\n%v\n", authURL)
	fmt.Fprint(s.out, "Authorization code: ")

	var code string
	if _, err := fmt.Fscan(s.in, &code); err != nil {
		return nil, common.NewAuthError("authorization flow aborted").Wrap(err)
	}
	tok, err := s.conf.Exchange(ctx, code)
	if err != nil {
		return nil, common.NewAuthError("unable to exchange authorization code").Wrap(err)
	}
	return tok, nil
}

func (s *CredentialStore) saveToken(tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(s.cachePath), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(s.cachePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	fmt.Fprintf(s.out, "Storing credentials to %s\n", s.cachePath)
	return json.NewEncoder(f).Encode(tok)
}
