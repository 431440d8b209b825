package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally/v6"
)

func TestNewEndpointMetrics(t *testing.T) {
	scope := tally.NewTestScope("recommendation", nil)
	m := NewEndpointMetrics(scope, "http", "insert")

	m.Calls.Inc(1)
	m.Calls.Inc(1)
	m.ConflictErrors.Inc(1)
	m.Successes.Inc(1)
	m.Latency.Record(time.Millisecond)

	snapshot := scope.Snapshot()
	counters := map[string]int64{}
	for _, c := range snapshot.Counters() {
		if c.Value() == 0 {
			continue
		}
		key := c.Name()
		if kind, ok := c.Tags()["error"]; ok {
			key += "." + kind
		}
		assert.Equal(t, "insert", c.Tags()["endpoint"])
		assert.Equal(t, "http", c.Tags()["handler"])
		counters[key] = c.Value()
	}
	assert.Equal(t, map[string]int64{
		"recommendation.calls":          2,
		"recommendation.error.conflict": 1,
		"recommendation.success":        1,
	}, counters)
	assert.Len(t, snapshot.Timers(), 1)
}
