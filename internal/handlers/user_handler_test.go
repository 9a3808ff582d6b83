package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepmate/interview-coach/internal/models"
)

func TestCreateUser(t *testing.T) {
	stack := newTestStack(t)

	resp, body := stack.request(t, http.MethodPost, "/api/v1/users", models.CreateUserRequest{
		Name:        "Priya Sharma",
		Email:       "priya@example.com",
		CollegeName: "State University",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var user models.UserProfile
	require.NoError(t, json.Unmarshal(body, &user))
	assert.Equal(t, "Priya Sharma", user.Name)
	assert.Equal(t, "priya@example.com", user.Email)
	assert.NotEmpty(t, user.ID)

	// retrievable right away
	resp, body = stack.request(t, http.MethodGet, "/api/v1/users/"+user.ID.String(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var fetched models.UserProfile
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, user.ID, fetched.ID)
}

func TestCreateUserValidation(t *testing.T) {
	stack := newTestStack(t)

	resp, _ := stack.request(t, http.MethodPost, "/api/v1/users", models.CreateUserRequest{Email: "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = stack.request(t, http.MethodPost, "/api/v1/users", models.CreateUserRequest{Name: "No Email"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetUserNotFound(t *testing.T) {
	stack := newTestStack(t)

	resp, _ := stack.request(t, http.MethodGet, "/api/v1/users/00000000-0000-0000-0000-000000000001", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = stack.request(t, http.MethodGet, "/api/v1/users/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
