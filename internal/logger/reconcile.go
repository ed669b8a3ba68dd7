package logger

import (
	"context"
	"errors"

	"github.com/TheZeroSlave/zapsentry"
	"go.uber.org/zap"

	"github.com/RonenBerka/TWNG-APP-sub000/internal/domain"
)

// ReconciliationLoggerName is the logger name operators filter on to find records needing repair
const ReconciliationLoggerName = "reconciliation"

// Reconcile reports a write that may have left the instrument and its governing record
// out of step. The instrument's current values are authoritative when repairing.
// Entries are logged at error level so they reach Sentry.
func Reconcile(ctx context.Context, err error, fields ...zap.Field) {
	l := reconcileLog
	if ctx != nil {
		l = l.With(zapsentry.Context(ctx))
	}

	var pe *domain.PartialApplyError
	if errors.As(err, &pe) {
		fields = append(fields,
			zap.String("operation", pe.Operation),
			zap.String("instrument_id", pe.InstrumentID),
			zap.String("record_id", pe.RecordID),
		)
	}

	l.Error("Reconciliation required", append(fields, zap.Error(err))...)
}
