package server

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Ibraheem715/syllabus-to-calendar/constants"
	"github.com/Ibraheem715/syllabus-to-calendar/internal/entity"
)

var (
	reDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	reClock = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	errEmptyTitle = errors.New("title must not be empty")
	errBadDate    = errors.New("date must be YYYY-MM-DD")
	errBadTime    = errors.New("time must be HH:MM")
)

func (s *Server) handleListEvents(c *gin.Context) {
	events, err := s.store.ListEvents(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (s *Server) handleGetEvent(c *gin.Context) {
	ev, err := s.store.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// eventPatch carries the user-editable fields; nil means "leave unchanged".
type eventPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Type        *string `json:"type"`
	Priority    *string `json:"priority"`
	Location    *string `json:"location"`
	Course      *string `json:"course"`
}

func (s *Server) handleUpdateEvent(c *gin.Context) {
	ev, err := s.store.GetEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	var patch eventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}
	if err := applyPatch(ev, patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.store.UpdateEvent(c.Request.Context(), *ev); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	if err := s.store.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func applyPatch(ev *entity.CalendarEvent, patch eventPatch) error {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return errEmptyTitle
		}
		ev.Title = title
	}
	if patch.Description != nil {
		ev.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Date != nil {
		date := strings.TrimSpace(*patch.Date)
		if !reDate.MatchString(date) {
			return errBadDate
		}
		ev.Date = date
	}
	if patch.Time != nil {
		t := strings.TrimSpace(*patch.Time)
		if t != "" && !reClock.MatchString(t) {
			return errBadTime
		}
		ev.Time = t
	}
	if patch.Type != nil {
		ev.Type, _ = constants.CoerceEventType(*patch.Type)
	}
	if patch.Priority != nil {
		ev.Priority, _ = constants.CoercePriority(*patch.Priority)
	}
	if patch.Location != nil {
		ev.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.Course != nil {
		ev.Course = strings.TrimSpace(*patch.Course)
	}
	return nil
}
