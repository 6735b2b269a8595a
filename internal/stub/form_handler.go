package stub

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campuspulse/engage-go/internal/domain/form"
	"github.com/campuspulse/engage-go/internal/forms"
)

func (s *Server) listForms(c *gin.Context) {
	all, err := s.repos.Form.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, all)
}

func (s *Server) getForm(c *gin.Context) {
	f, err := s.repos.Form.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (s *Server) createForm(c *gin.Context) {
	var input form.CreateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	f := form.Form{
		ID:                     uuid.NewString(),
		Title:                  input.Title,
		Description:            input.Description,
		AllowMultipleResponses: input.AllowMultipleResponses,
		TargetAudience:         input.TargetAudience,
		IsActive:               true,
	}
	if input.StartDate != "" {
		if t, err := time.Parse(time.RFC3339, input.StartDate); err == nil {
			f.StartDate = t
		}
	}
	if input.EndDate != "" {
		if t, err := time.Parse(time.RFC3339, input.EndDate); err == nil {
			f.EndDate = t
		}
	}

	for i, q := range input.Questions {
		meta, err := forms.Lookup(q.Type)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// The >=2 options rule is enforced here, at creation time only.
		if meta.RequiresOptions && len(q.Options) < 2 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("question %q requires at least 2 options", q.Title),
			})
			return
		}

		question := form.Question{
			ID:          uuid.NewString(),
			FormID:      f.ID,
			Title:       q.Title,
			Description: q.Description,
			Type:        q.Type,
			IsRequired:  q.IsRequired,
			Order:       q.Order,
		}
		if question.Order == 0 {
			question.Order = i + 1
		}
		for _, opt := range q.Options {
			question.Options = append(question.Options, form.Option{
				ID:         uuid.NewString(),
				QuestionID: question.ID,
				OptionText: opt.OptionText,
			})
		}
		f.Questions = append(f.Questions, question)
	}

	if err := s.repos.Form.Create(&f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (s *Server) updateForm(c *gin.Context) {
	f, err := s.repos.Form.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
		return
	}
	if f.IsPublished {
		c.JSON(http.StatusConflict, gin.H{"error": "published forms cannot be edited"})
		return
	}

	var input form.UpdateFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Title != nil {
		f.Title = *input.Title
	}
	if input.Description != nil {
		f.Description = *input.Description
	}
	if input.IsActive != nil {
		f.IsActive = *input.IsActive
	}

	if err := s.repos.Form.Save(f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (s *Server) publishForm(c *gin.Context) {
	f, err := s.repos.Form.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
		return
	}
	f.IsPublished = true
	if err := s.repos.Form.Save(f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, f)
}

func (s *Server) deleteForm(c *gin.Context) {
	if err := s.repos.Form.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "form deleted"})
}

func (s *Server) submitForm(c *gin.Context) {
	f, err := s.repos.Form.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "form not found"})
		return
	}
	if !f.IsPublished || !f.IsActive {
		c.JSON(http.StatusConflict, gin.H{"error": "form is not accepting responses"})
		return
	}

	var input form.SubmitFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := userIDFromContext(c)
	if !f.AllowMultipleResponses {
		n, err := s.repos.Form.CountSubmissions(f.ID, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if n > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "you have already responded to this form"})
			return
		}
	}

	sub := form.Submission{
		ID:     uuid.NewString(),
		FormID: f.ID,
		UserID: userID,
	}
	var optionIDs []string
	for _, a := range input.Answers {
		sub.Answers = append(sub.Answers, form.StoredAnswer{
			ID:            uuid.NewString(),
			SubmissionID:  sub.ID,
			QuestionID:    a.QuestionID,
			OptionID:      a.OptionID,
			ResponseValue: a.ResponseValue,
			TeamMemberIDs: strings.Join(a.TeamMemberIDs, ","),
		})
		if a.OptionID != "" {
			optionIDs = append(optionIDs, a.OptionID)
		}
	}

	if err := s.repos.Form.CreateSubmission(&sub, optionIDs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, form.SubmitFormResult{ID: sub.ID})
}

func (s *Server) listSubmissions(c *gin.Context) {
	subs, err := s.repos.Form.ListSubmissions(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}
