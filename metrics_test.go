package veclen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}
	assert.Zero(t, mc.GetStats().AvgPassTime)

	mc.RecordPass(Scalar, 10, 30*time.Millisecond)
	mc.RecordPass(Scalar, 10, 10*time.Millisecond)
	mc.RecordPass(Scalar, 10, 20*time.Millisecond)
	mc.RecordRun(&Report{})

	st := mc.GetStats()
	assert.Equal(t, int64(3), st.Passes)
	assert.Equal(t, int64(30), st.Vectors)
	assert.Equal(t, int64(1), st.Runs)
	assert.Equal(t, 20*time.Millisecond, st.AvgPassTime)
	assert.Equal(t, 10*time.Millisecond, st.MinPassTime)
	assert.Equal(t, 30*time.Millisecond, st.MaxPassTime)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	assert.NotPanics(t, func() {
		mc.RecordPass(Lane256, 8, time.Second)
		mc.RecordRun(nil)
	})
}
