// Package http exposes the console over plain HTTP: session creation,
// command dispatch, autocomplete, and the project catalog. The web
// terminal embedded in the site is the intended client.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/casefolio/console/internal/console"
	"github.com/casefolio/console/internal/content"
	"github.com/casefolio/console/internal/logging"
	"github.com/casefolio/console/internal/monitoring"
	"github.com/casefolio/console/internal/session"
	"github.com/casefolio/console/internal/shared/id"
	"github.com/casefolio/console/internal/vfs"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	sessions *session.Manager
	fs       *vfs.FS
	records  []content.Record
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set.
func NewHandlers(
	sessions *session.Manager,
	fs *vfs.FS,
	records []content.Record,
	metrics *monitoring.Metrics,
	logger *logging.Logger,
) *Handlers {
	return &Handlers{
		sessions: sessions,
		fs:       fs,
		records:  records,
		metrics:  metrics,
		logger:   logger,
	}
}

// ExecuteRequest is the body of POST /sessions/:id/execute.
type ExecuteRequest struct {
	Line string `json:"line" binding:"required"`
}

// Root handles the health check.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "online",
		"service":  "casefolio-console",
		"projects": len(h.records),
		"sessions": h.sessions.Count(),
	})
}

// CreateSession opens a new console session.
func (h *Handlers) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	h.logger.Info("session created", zap.String("session_id", string(s.ID)))

	c.JSON(http.StatusCreated, gin.H{
		"session_id": s.ID,
		"cwd":        s.Console.Cwd(),
	})
}

// CloseSession drops a session.
func (h *Handlers) CloseSession(c *gin.Context) {
	sid := id.SessionID(c.Param("id"))
	h.sessions.Remove(sid)
	c.JSON(http.StatusOK, gin.H{"closed": sid})
}

// Execute dispatches one command line on a session.
func (h *Handlers) Execute(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}

	var req ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	res := s.Dispatch(req.Line)
	h.metrics.RecordDispatch(req.Line, res, time.Since(start))

	if res.Exit {
		h.sessions.Remove(s.ID)
	}
	c.JSON(http.StatusOK, resultPayload(res, s.Console.Cwd()))
}

// Complete returns suggestions for a partial line.
func (h *Handlers) Complete(c *gin.Context) {
	s, ok := h.lookupSession(c)
	if !ok {
		return
	}

	line := c.Query("line")
	suggestions := s.Complete(line)
	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// Catalog lists record summaries with their tree locations.
func (h *Handlers) Catalog(c *gin.Context) {
	type summary struct {
		ID    string `json:"id"`
		Title string `json:"title"`
		Role  string `json:"role"`
		Path  string `json:"path,omitempty"`
	}

	out := make([]summary, 0, len(h.records))
	for _, rec := range h.records {
		s := summary{ID: rec.ID, Title: rec.Title, Role: rec.Role}
		if path, ok := h.fs.PathForProjectID(rec.ID); ok {
			s.Path = path
		}
		out = append(out, s)
	}
	c.JSON(http.StatusOK, gin.H{"projects": out})
}

func (h *Handlers) lookupSession(c *gin.Context) (*session.Session, bool) {
	sid := id.SessionID(c.Param("id"))
	s, ok := h.sessions.Get(sid)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return nil, false
	}
	return s, true
}

// resultPayload flattens a dispatch result into the wire contract the
// terminal front end consumes.
func resultPayload(res console.Result, cwd string) gin.H {
	payload := gin.H{
		"output": res.Output,
		"error":  res.Err != nil,
		"exit":   res.Exit,
		"clear":  res.Clear,
		"cwd":    cwd,
	}
	if res.Err != nil {
		payload["error_kind"] = res.Err.Kind.String()
		payload["message"] = res.Err.Message
	}
	if res.Navigation != nil {
		payload["navigation"] = res.Navigation
	}
	return payload
}
