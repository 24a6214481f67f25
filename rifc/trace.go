package rifc

import "go.uber.org/zap"

// ZapTrace returns a TraceFunc that logs every step at Debug level on
// logger. A nil logger yields a nil TraceFunc (tracing off).
func ZapTrace(logger *zap.Logger) TraceFunc {
	if logger == nil {
		return nil
	}

	return func(ev Event) {
		fields := []zap.Field{
			zap.String("op", string(ev.Op)),
			zap.Int("step", ev.Step),
			zap.Int("index", ev.Index),
			zap.Complex128("z", ev.Z),
		}
		if ev.Symbol != 0 {
			fields = append(fields, zap.String("symbol", string(ev.Symbol)))
		}
		logger.Debug("codec step", fields...)
	}
}

// Collect returns a TraceFunc that appends every event to *dst.
// It is not safe for concurrent use.
func Collect(dst *[]Event) TraceFunc {
	return func(ev Event) {
		*dst = append(*dst, ev)
	}
}
