package monitoring

import (
	"strings"
	"time"

	"github.com/casefolio/console/internal/console"
)

// RecordDispatch labels one interpreter dispatch for the command
// metrics. The command label is the first whitespace-separated input
// token; blank lines count under "blank".
func (m *Metrics) RecordDispatch(line string, res console.Result, duration time.Duration) {
	command := "blank"
	if fields := strings.Fields(line); len(fields) > 0 {
		command = fields[0]
	}
	status := "ok"
	if res.Failed() {
		status = "error"
	}
	m.RecordCommand(command, status, duration)
}
