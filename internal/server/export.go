package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ibraheem715/syllabus-to-calendar/internal/export"
)

func (s *Server) handleExportICS(c *gin.Context) {
	events, err := s.store.ListEvents(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	ical, err := export.BuildICS(events)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="syllabus.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ical))
}

func (s *Server) handleExportXLSX(c *gin.Context) {
	events, err := s.store.ListEvents(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}
	book, err := export.BuildXLSX(events)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="syllabus.xlsx"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", book)
}
