package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordInsert(t *testing.T) {
	before := testutil.ToFloat64(SeedRecordsInserted.WithLabelValues("performance_data"))
	RecordInsert("performance_data")
	RecordInsert("performance_data")
	after := testutil.ToFloat64(SeedRecordsInserted.WithLabelValues("performance_data"))

	assert.Equal(t, before+2, after)
}

func TestRecordSeedRun(t *testing.T) {
	ok := testutil.ToFloat64(SeedRunsTotal.WithLabelValues("ga4", "success"))
	failed := testutil.ToFloat64(SeedRunsTotal.WithLabelValues("ga4", "failure"))

	RecordSeedRun("ga4", nil)
	RecordSeedRun("ga4", errors.New("boom"))

	assert.Equal(t, ok+1, testutil.ToFloat64(SeedRunsTotal.WithLabelValues("ga4", "success")))
	assert.Equal(t, failed+1, testutil.ToFloat64(SeedRunsTotal.WithLabelValues("ga4", "failure")))
}
