package db

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	commonerrors "github.com/avasilyev/blogd/internal/common/errors"
	"github.com/avasilyev/blogd/internal/observability/metrics"
)

// HandleQueryError folds a point-lookup result into the store error
// taxonomy: a missing document becomes notFoundErr, anything else is a
// store failure. It also records the operation's duration and errors.
func HandleQueryError(err error, notFoundErr error, operation, collection string, startTime time.Time) error {
	MeasureOperationDuration(operation, collection, startTime)

	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return notFoundErr
	}

	metrics.StoreOperationErrorsTotal.WithLabelValues(operation, collection, fmt.Sprintf("%T", err)).Inc()
	return storeError(err, operation)
}

func HandleExecError(err error, operation, collection string, startTime time.Time) error {
	MeasureOperationDuration(operation, collection, startTime)

	if err == nil {
		return nil
	}

	metrics.StoreOperationErrorsTotal.WithLabelValues(operation, collection, fmt.Sprintf("%T", err)).Inc()
	return storeError(err, operation)
}

func storeError(err error, operation string) error {
	cause := fmt.Errorf("failed to %s: %w", operation, err)

	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return commonerrors.ErrStoreUnavailable.WithCause(cause)
	}

	// The store answered but the operation or its payload was bad.
	return commonerrors.ErrStoreProtocol.WithCause(cause)
}
