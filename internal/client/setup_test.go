package client

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/campuspulse/engage-go/config"
	"github.com/campuspulse/engage-go/internal/stub"
)

// setupTestEnvironment serves the platform stub over httptest and returns a
// client already logged in as the seeded demo user alice.
func setupTestEnvironment(t *testing.T) (*Client, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	config.LoadConfig()

	db, err := stub.OpenMemory()
	require.NoError(t, err)
	require.NoError(t, stub.Seed(db))

	server := stub.NewServer(db)
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	c, err := New(Config{BaseURL: ts.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = c.Login(ctx, "alice", "password")
	require.NoError(t, err)

	return c, db
}
