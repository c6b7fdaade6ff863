package scheduler

import (
	"context"

	"github.com/vfg2006/orbit-api/pkg/log"
)

const (
	JobInvoiceOverdue = "invoice-overdue"
	JobHealthSnapshot = "health-snapshot"
	JobTokenCleanup   = "token-cleanup"
)

// jobLogger dá a cada execução seu próprio ID de correlação
func jobLogger(parent context.Context, job string) (context.Context, log.Logger) {
	ctx, _ := log.WithCorrelationID(parent)
	return ctx, log.ForContext(ctx).WithField("job", job)
}
