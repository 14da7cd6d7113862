package services

import (
	"context"

	"orgboard/pkg/metrics"
)

func ensureContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func recordWrite(entity, operation string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.EntityWrites.WithLabelValues(entity, operation, result).Inc()
}
