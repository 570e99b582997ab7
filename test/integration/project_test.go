package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProject(t *testing.T, app *TestApp, token, name string) string {
	t.Helper()

	resp := app.doJSON(t, http.MethodPost, "/api/projects", token, map[string]string{
		"name": name,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var project struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &project)
	require.NotEmpty(t, project.ID)
	return project.ID
}

func TestProjectMembershipGate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	aliceToken := app.registerAndLogin(t, "Alice", "alice@example.com", "supersecret")
	bobToken := app.registerAndLogin(t, "Bob", "bob@example.com", "supersecret")

	projectID := createProject(t, app, aliceToken, "Apollo")

	// Bob is not a member yet.
	resp := app.doJSON(t, http.MethodGet, "/api/projects/"+projectID, bobToken, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Alice invites Bob.
	resp = app.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/members", aliceToken, map[string]string{
		"email": "bob@example.com",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The identical request now succeeds.
	resp = app.doJSON(t, http.MethodGet, "/api/projects/"+projectID, bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var project struct {
		Name    string `json:"name"`
		Members []struct {
			Name string `json:"name"`
		} `json:"members"`
	}
	decodeBody(t, resp, &project)
	assert.Equal(t, "Apollo", project.Name)
	assert.Len(t, project.Members, 2)
}

func TestAddMember_Conflicts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	aliceToken := app.registerAndLogin(t, "Alice", "alice@example.com", "supersecret")
	projectID := createProject(t, app, aliceToken, "Apollo")

	// Inviting an unknown user.
	resp := app.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/members", aliceToken, map[string]string{
		"email": "nobody@example.com",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Inviting an existing member.
	resp = app.doJSON(t, http.MethodPost, "/api/projects/"+projectID+"/members", aliceToken, map[string]string{
		"email": "alice@example.com",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestProjectList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	aliceToken := app.registerAndLogin(t, "Alice", "alice@example.com", "supersecret")
	bobToken := app.registerAndLogin(t, "Bob", "bob@example.com", "supersecret")

	for i := range 3 {
		createProject(t, app, aliceToken, fmt.Sprintf("Project %d", i))
	}

	resp := app.doJSON(t, http.MethodGet, "/api/projects", aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var aliceProjects []map[string]any
	decodeBody(t, resp, &aliceProjects)
	assert.Len(t, aliceProjects, 3)

	// Bob sees none of them.
	resp = app.doJSON(t, http.MethodGet, "/api/projects", bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bobProjects []map[string]any
	decodeBody(t, resp, &bobProjects)
	assert.Empty(t, bobProjects)
}

func TestProjectUpdateAndDelete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	aliceToken := app.registerAndLogin(t, "Alice", "alice@example.com", "supersecret")
	projectID := createProject(t, app, aliceToken, "Apollo")

	resp := app.doJSON(t, http.MethodPut, "/api/projects/"+projectID, aliceToken, map[string]string{
		"name":        "Artemis",
		"description": "successor program",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Artemis", updated.Name)
	assert.Equal(t, "successor program", updated.Description)

	resp = app.doJSON(t, http.MethodDelete, "/api/projects/"+projectID, aliceToken, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = app.doJSON(t, http.MethodGet, "/api/projects/"+projectID, aliceToken, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
