package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	admin "google.golang.org/api/admin/directory/v1"
	"google.golang.org/api/option"

	"employee_onboarding/internal/common"
	"employee_onboarding/internal/config"
	"employee_onboarding/internal/shared"
)

func testConfig() *config.Config {
	return &config.Config{
		OrgDomain:        "connected-ventures.com",
		GoogleCustomerID: "my_customer",
		GroupPageSize:    200,
	}
}

// newTestDirectoryClient points the Admin SDK at an httptest server; the
// pre-built service means ensureService never reaches for credentials.
func newTestDirectoryClient(t *testing.T, handler http.Handler) *DirectoryClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc, err := admin.NewService(context.Background(),
		option.WithEndpoint(srv.URL+"/"),
		option.WithHTTPClient(srv.Client()))
	require.NoError(t, err)

	return &DirectoryClient{
		cfg:    testConfig(),
		logger: zap.NewNop(),
		svc:    svc,
	}
}

func TestPrimaryEmail(t *testing.T) {
	assert.Equal(t, "jane.doe@connected-ventures.com", PrimaryEmail("Jane", "Doe", "connected-ventures.com"))
	assert.Equal(t, "alice.smith@example.org", PrimaryEmail("ALICE", "Smith", "example.org"))
}

func TestCreateUser(t *testing.T) {
	var got admin.User
	client := newTestDirectoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/directory/v1/users", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-123","primaryEmail":"jane.doe@connected-ventures.com"}`))
	}))

	user, err := client.CreateUser(context.Background(), "Jane", "Doe", "Temp123")
	require.NoError(t, err)

	assert.Equal(t, "jane.doe@connected-ventures.com", got.PrimaryEmail)
	assert.Equal(t, "Jane", got.Name.GivenName)
	assert.Equal(t, "Doe", got.Name.FamilyName)
	assert.Equal(t, "Jane Doe", got.Name.FullName)
	assert.Equal(t, "Temp123", got.Password)
	assert.True(t, got.ChangePasswordAtNextLogin)

	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "jane.doe@connected-ventures.com", user.PrimaryEmail)
}

func TestCreateUserAPIFailureKeepsRawBody(t *testing.T) {
	const rawBody = `{"error":{"code":409,"message":"Entity already exists."}}`
	client := newTestDirectoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(rawBody))
	}))

	_, err := client.CreateUser(context.Background(), "Jane", "Doe", "Temp123")
	require.Error(t, err)

	stepErr, ok := common.IsStepError(err)
	require.True(t, ok)
	assert.Equal(t, common.KindDirectoryAPI, stepErr.Kind)
	assert.Contains(t, stepErr.Details, "Entity already exists.")
}

func TestListGroups(t *testing.T) {
	client := newTestDirectoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/admin/directory/v1/groups", r.URL.Path)
		assert.Equal(t, "my_customer", r.URL.Query().Get("customer"))
		assert.Equal(t, "200", r.URL.Query().Get("maxResults"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"groups":[
			{"id":"g-eng","name":"Engineering","email":"eng@connected-ventures.com"},
			{"id":"g-all","name":"Everyone","email":"all@connected-ventures.com"}
		]}`))
	}))

	groups, err := client.ListGroups(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// Service order is preserved: selections are index-based.
	assert.Equal(t, shared.Group{ID: "g-eng", Name: "Engineering", Email: "eng@connected-ventures.com"}, groups[0])
	assert.Equal(t, "Everyone", groups[1].Name)
}

func TestAddUserToGroup(t *testing.T) {
	var got admin.Member
	client := newTestDirectoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/directory/v1/groups/g-eng/members", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"user-123","role":"MEMBER"}`))
	}))

	user := &shared.DirectoryUser{ID: "user-123", PrimaryEmail: "jane.doe@connected-ventures.com"}
	err := client.AddUserToGroup(context.Background(), user, shared.Group{ID: "g-eng", Name: "Engineering"})
	require.NoError(t, err)

	assert.Equal(t, "user-123", got.Id)
	assert.Equal(t, "MEMBER", got.Role)
}

func TestAddUserToGroupFailure(t *testing.T) {
	client := newTestDirectoryClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"Not Authorized"}}`))
	}))

	user := &shared.DirectoryUser{ID: "user-123", PrimaryEmail: "jane.doe@connected-ventures.com"}
	err := client.AddUserToGroup(context.Background(), user, shared.Group{ID: "g-eng", Name: "Engineering"})
	require.Error(t, err)

	stepErr, ok := common.IsStepError(err)
	require.True(t, ok)
	assert.Equal(t, common.KindDirectoryAPI, stepErr.Kind)
}
