// Package ws serves the console over a WebSocket: one connection is
// one session, with its own interpreter. Messages are small JSON
// envelopes; the connection reader is the only goroutine touching the
// interpreter, which keeps the single-caller contract for free.
package ws

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/casefolio/console/internal/console"
	"github.com/casefolio/console/internal/logging"
	"github.com/casefolio/console/internal/monitoring"
	"github.com/casefolio/console/internal/shared/id"
	"github.com/casefolio/console/internal/vfs"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// the embedding site fronts this service; CORS is enforced there
		return true
	},
}

// Message is the client-to-server envelope.
type Message struct {
	Type string `json:"type"` // "execute", "complete", "ping"
	Line string `json:"line,omitempty"`
}

// Handler manages WebSocket console connections.
type Handler struct {
	fs      *vfs.FS
	metrics *monitoring.Metrics
	logger  *logging.Logger
}

// NewHandler creates a new WebSocket handler.
func NewHandler(fs *vfs.FS, metrics *monitoring.Metrics, logger *logging.Logger) *Handler {
	return &Handler{fs: fs, metrics: metrics, logger: logger}
}

// HandleConnection upgrades the request and runs the session loop
// until the client disconnects or the console exits.
func (h *Handler) HandleConnection(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	h.metrics.WSConnections.Inc()
	defer h.metrics.WSConnections.Dec()

	sid := id.NewSessionID()
	interp := console.New(h.fs)
	h.logger.Info("websocket session opened", zap.String("session_id", string(sid)))

	h.send(conn, gin.H{
		"type":       "system",
		"session_id": sid,
		"cwd":        interp.Cwd(),
	})

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			h.logger.Debug("websocket closed", zap.String("session_id", string(sid)), zap.Error(err))
			return
		}

		switch msg.Type {
		case "execute":
			if h.handleExecute(conn, interp, msg.Line) {
				return
			}
		case "complete":
			h.send(conn, gin.H{
				"type":        "suggestions",
				"suggestions": interp.Complete(msg.Line),
			})
		case "ping":
			h.send(conn, gin.H{"type": "pong"})
		default:
			h.sendError(conn, "unknown message type")
		}
	}
}

// handleExecute dispatches one line and reports whether the session
// asked to end.
func (h *Handler) handleExecute(conn *websocket.Conn, interp *console.Interpreter, line string) (exit bool) {
	start := time.Now()
	res := interp.Dispatch(line)
	h.metrics.RecordDispatch(line, res, time.Since(start))

	payload := gin.H{
		"type":   "result",
		"output": res.Output,
		"error":  res.Err != nil,
		"exit":   res.Exit,
		"clear":  res.Clear,
		"cwd":    interp.Cwd(),
	}
	if res.Err != nil {
		payload["error_kind"] = res.Err.Kind.String()
		payload["message"] = res.Err.Message
	}
	if res.Navigation != nil {
		payload["navigation"] = res.Navigation
	}
	h.send(conn, payload)
	return res.Exit
}

func (h *Handler) send(conn *websocket.Conn, payload gin.H) {
	if err := conn.WriteJSON(payload); err != nil {
		h.logger.Debug("websocket write failed", zap.Error(err))
	}
}

func (h *Handler) sendError(conn *websocket.Conn, message string) {
	h.send(conn, gin.H{"type": "error", "message": message})
}
