package monitoring

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/casefolio/console/internal/console"
)

func TestRecordCommand(t *testing.T) {
	m := New()

	m.RecordCommand("list", "ok", 2*time.Millisecond)
	m.RecordCommand("list", "ok", time.Millisecond)
	m.RecordCommand("list", "error", time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CommandsTotal.WithLabelValues("list", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CommandsTotal.WithLabelValues("list", "error")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.SearchesTotal))
}

func TestRecordDispatch(t *testing.T) {
	m := New()

	m.RecordDispatch("ls /projects", console.Result{}, time.Millisecond)
	m.RecordDispatch("ls | grep x", console.Result{
		Err: &console.CommandError{Kind: console.UnsupportedShellSyntax, Message: "not supported"},
	}, time.Millisecond)
	m.RecordDispatch("   ", console.Result{}, time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.CommandsTotal.WithLabelValues("ls", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CommandsTotal.WithLabelValues("ls", "error")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CommandsTotal.WithLabelValues("blank", "ok")))
}

func TestRecordSearchIncrementsCounter(t *testing.T) {
	m := New()

	m.RecordCommand("search", "ok", time.Millisecond)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SearchesTotal))
}

func TestRecordHTTPRequest(t *testing.T) {
	m := New()

	m.RecordHTTPRequest("GET", "/catalog", "200", time.Millisecond)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/catalog", "200")))
}

func TestIndependentRegistries(t *testing.T) {
	// two collectors must not collide
	a, b := New(), New()
	a.SessionsActive.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(a.SessionsActive))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.SessionsActive))
}
