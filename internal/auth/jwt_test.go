package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShivanshS635/phantom-cleaning-sub000/internal/model"
)

func TestIssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	user := model.User{ID: uuid.New(), Role: model.RoleAdmin}

	token, err := manager.Issue(user)
	require.NoError(t, err)

	principal, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.True(t, principal.IsAdmin())
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Issue(model.User{ID: uuid.New(), Role: model.RoleCleaner})
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)
	token, err := manager.Issue(model.User{ID: uuid.New(), Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = manager.Parse(token)
	assert.Error(t, err)
}
