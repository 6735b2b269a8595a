package stub

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/campuspulse/engage-go/internal/domain/poll"
)

func (s *Server) listPolls(c *gin.Context) {
	polls, err := s.repos.Poll.FindAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, polls)
}

func (s *Server) getPoll(c *gin.Context) {
	p, err := s.repos.Poll.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "poll not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) vote(c *gin.Context) {
	p, err := s.repos.Poll.FindByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "poll not found"})
		return
	}
	if !p.IsActive {
		c.JSON(http.StatusConflict, gin.H{"error": "poll is closed"})
		return
	}

	var input poll.VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !p.MultiChoice && len(input.OptionIDs) > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "poll accepts a single choice"})
		return
	}

	for _, optionID := range input.OptionIDs {
		if err := s.repos.Poll.IncrementVote(p.ID, optionID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unknown option " + optionID})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	results, err := s.tally(p.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	s.hub.Broadcast(*results)
	c.JSON(http.StatusOK, results)
}

func (s *Server) pollResults(c *gin.Context) {
	results, err := s.tally(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "poll not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}

func (s *Server) tally(pollID string) (*poll.Results, error) {
	p, err := s.repos.Poll.FindByID(pollID)
	if err != nil {
		return nil, err
	}
	results := &poll.Results{PollID: p.ID}
	for _, opt := range p.Options {
		results.Options = append(results.Options, poll.OptionResult{
			OptionID: opt.ID,
			Text:     opt.Text,
			Votes:    opt.Votes,
		})
		results.TotalVotes += opt.Votes
	}
	return results, nil
}

// watchPoll upgrades the connection and streams tally updates until the
// client goes away.
func (s *Server) watchPoll(c *gin.Context) {
	pollID := c.Param("id")
	if _, err := s.repos.Poll.FindByID(pollID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "poll not found"})
		return
	}

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket: %v", err)
		return
	}
	// Push the current tally before registering, so subscribers render
	// without waiting for the next vote. Once the conn is in the hub, only
	// Broadcast may write to it: gorilla conns allow a single writer, and a
	// vote landing mid-handshake would otherwise race this write.
	if results, err := s.tally(pollID); err == nil {
		conn.WriteJSON(results)
	}
	s.hub.Register(pollID, conn)

	go func() {
		defer func() {
			s.hub.Unregister(pollID, conn)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
