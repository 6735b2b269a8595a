package stub

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campuspulse/engage-go/internal/domain/user"
)

func (s *Server) login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := s.repos.User.FindByUsername(input.Username)
	if err != nil || account.Password != input.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := generateToken(account, 24*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user.TokenResponse{
		Token:    token,
		UserID:   account.ID,
		Username: account.Username,
	})
}

func (s *Server) searchUsers(c *gin.Context) {
	query := c.Query("query")
	if len(query) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query must be at least 2 characters"})
		return
	}

	accounts, err := s.repos.User.Search(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	members := make([]user.TeamMember, len(accounts))
	for i, a := range accounts {
		members[i] = a.AsTeamMember()
	}
	c.JSON(http.StatusOK, members)
}
