package server

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ibraheem715/syllabus-to-calendar/constants"
)

// handleExtract accepts a multipart syllabus upload, runs the extraction
// pipeline, persists the resulting events, and returns the full result.
func (s *Server) handleExtract(c *gin.Context) {
	start := time.Now()

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, constants.MaxUploadBytes)
	file, header, err := c.Request.FormFile("syllabus")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing syllabus file upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read upload"})
		return
	}

	s.logger.Info("server.extract.start",
		"filename", header.Filename, "bytes", len(data))

	result, err := s.extractor.Extract(c.Request.Context(), data)
	if err != nil {
		s.fail(c, err)
		return
	}

	if err := s.store.SaveEvents(c.Request.Context(), result.Events); err != nil {
		s.logger.Error("server.extract.save_failed", "error", err)
		s.fail(c, err)
		return
	}

	s.logger.Info("server.extract.ok",
		"filename", header.Filename,
		"events", len(result.Events),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	c.JSON(http.StatusOK, result)
}
