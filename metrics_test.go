package primestep

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBasicMetricsCollector(t *testing.T) {
	mc := &BasicMetricsCollector{}

	mc.RecordExtend(100, 10*time.Millisecond, nil)
	mc.RecordExtend(0, 30*time.Millisecond, errors.New("boom"))
	mc.RecordIsPrime(time.Microsecond, nil)
	mc.RecordStep(true, 4*time.Millisecond, nil)
	mc.RecordStep(false, 2*time.Millisecond, nil)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.ExtendCount)
	assert.Equal(t, int64(1), stats.ExtendErrors)
	assert.Equal(t, uint64(100), stats.ExtendEntries)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), stats.ExtendAvgNanos)
	assert.Equal(t, int64(1), stats.IsPrimeCount)
	assert.Equal(t, int64(2), stats.StepCount)
	assert.Equal(t, int64(1), stats.StepFound)
	assert.Equal(t, (3 * time.Millisecond).Nanoseconds(), stats.StepAvgNanos)
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	mc := &BasicMetricsCollector{}
	stats := mc.GetStats()
	assert.Zero(t, stats.ExtendAvgNanos)
	assert.Zero(t, stats.StepAvgNanos)
}

func TestNoopMetricsCollector(t *testing.T) {
	var mc MetricsCollector = NoopMetricsCollector{}
	mc.RecordExtend(1, time.Second, nil)
	mc.RecordIsPrime(time.Second, nil)
	mc.RecordStep(true, time.Second, nil)
}
