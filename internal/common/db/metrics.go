package db

import (
	"time"

	"github.com/avasilyev/blogd/internal/observability/metrics"
)

func MeasureOperationDuration(operation, collection string, startTime time.Time) {
	metrics.StoreOperationDurationSeconds.WithLabelValues(operation, collection).Observe(time.Since(startTime).Seconds())
}
