package stub

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuspulse/engage-go/internal/domain/feed"
)

func (s *Server) listPosts(c *gin.Context) {
	posts, err := s.repos.Feed.FindPosts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (s *Server) createPost(c *gin.Context) {
	var input feed.CreatePostInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := feed.Post{
		ID:       uuid.NewString(),
		AuthorID: userIDFromContext(c),
		Content:  input.Content,
		ImageURL: input.ImageURL,
	}
	if err := s.repos.Feed.CreatePost(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (s *Server) createComment(c *gin.Context) {
	post, err := s.repos.Feed.FindPostByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var input feed.CreateCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := feed.Comment{
		ID:       uuid.NewString(),
		PostID:   post.ID,
		AuthorID: userIDFromContext(c),
		Content:  input.Content,
	}
	if err := s.repos.Feed.CreateComment(&comment); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (s *Server) likePost(c *gin.Context) {
	if _, err := s.repos.Feed.FindPostByID(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	if err := s.repos.Feed.IncrementLikes(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	post, err := s.repos.Feed.FindPostByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}
