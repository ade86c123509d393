package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCheckInsCountedByResult(t *testing.T) {
	before := testutil.ToFloat64(CheckIns.WithLabelValues(CheckInRepeat))

	CheckIns.WithLabelValues(CheckInRepeat).Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(CheckIns.WithLabelValues(CheckInRepeat)))
}

func TestGuestsRegistered(t *testing.T) {
	before := testutil.ToFloat64(GuestsRegistered)

	GuestsRegistered.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(GuestsRegistered))
}
