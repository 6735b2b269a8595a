package stub

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuspulse/engage-go/internal/domain/event"
)

func (s *Server) listEvents(c *gin.Context) {
	events, err := s.repos.Event.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (s *Server) getEvent(c *gin.Context) {
	e, err := s.repos.Event.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) registerForEvent(c *gin.Context) {
	e, err := s.repos.Event.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
		return
	}

	var input event.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if e.RegistrationFormID != nil && input.FormSubmissionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "this event requires the registration form to be submitted first"})
		return
	}

	userID := userIDFromContext(c)
	already, err := s.repos.Event.HasRegistration(e.ID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if already {
		c.JSON(http.StatusConflict, gin.H{"error": "you are already registered for this event"})
		return
	}

	if e.Capacity > 0 {
		n, err := s.repos.Event.CountRegistrations(e.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if n >= int64(e.Capacity) {
			c.JSON(http.StatusConflict, gin.H{"error": "event is full"})
			return
		}
	}

	reg := event.Registration{
		ID:      uuid.NewString(),
		EventID: e.ID,
		UserID:  userID,
	}
	if input.FormSubmissionID != "" {
		reg.FormSubmissionID = &input.FormSubmissionID
	}
	if err := s.repos.Event.CreateRegistration(&reg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reg)
}
