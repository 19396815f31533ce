package powerbi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workspacesResponse = `{
	"value": [
		{
			"id": "d975d1c2-9dcf-401a-b794-8f158c51a4e1",
			"name": "Sales",
			"isReadOnly": false,
			"isOnDedicatedCapacity": true,
			"type": "Workspace"
		},
		{
			"id": "0f084df7-c13d-451b-af5f-ed0c466403b2",
			"name": "Finance",
			"isReadOnly": true,
			"isOnDedicatedCapacity": false,
			"type": "Workspace"
		}
	]
}`

func TestListWorkspaces(t *testing.T) {
	t.Run("fields pass through", func(t *testing.T) {
		server, client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/v1.0/myorg/groups", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(workspacesResponse))
		}))
		defer server.Close()

		workspaces, err := client.ListWorkspaces(context.Background())
		require.NoError(t, err)
		require.Len(t, workspaces, 2)

		assert.Equal(t, "d975d1c2-9dcf-401a-b794-8f158c51a4e1", workspaces[0].ID)
		assert.Equal(t, "Sales", workspaces[0].Name)
		assert.False(t, workspaces[0].IsReadOnly)
		assert.True(t, workspaces[0].IsOnDedicatedCapacity)
		assert.Equal(t, "Workspace", workspaces[0].Type)
		assert.Equal(t, "Finance", workspaces[1].Name)
		assert.True(t, workspaces[1].IsReadOnly)
	})

	t.Run("unauthorized", func(t *testing.T) {
		server, client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("unauthorized"))
		}))
		defer server.Close()

		workspaces, err := client.ListWorkspaces(context.Background())
		assert.Error(t, err)
		assert.Nil(t, workspaces)
		assert.True(t, IsUnauthorized(err))
		assert.Contains(t, err.Error(), "unauthorized")
	})

	t.Run("malformed json", func(t *testing.T) {
		server, client := createTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("here comes the garbage"))
		}))
		defer server.Close()

		workspaces, err := client.ListWorkspaces(context.Background())
		assert.Error(t, err)
		assert.Nil(t, workspaces)
	})
}
