package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
)

// zerologAdapter expone un zerolog.Logger como tracelog.Logger.
type zerologAdapter struct {
	zl zerolog.Logger
}

func (a zerologAdapter) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var ev *zerolog.Event
	switch level {
	case tracelog.LogLevelTrace:
		ev = a.zl.Trace()
	case tracelog.LogLevelDebug:
		ev = a.zl.Debug()
	case tracelog.LogLevelInfo:
		ev = a.zl.Info()
	case tracelog.LogLevelWarn:
		ev = a.zl.Warn()
	case tracelog.LogLevelError:
		ev = a.zl.Error()
	default:
		return
	}
	ev.Str("component", "pgx").Fields(data).Msg(msg)
}

// NewQueryTracer devuelve un tracer de pgx que escribe en zl. level acepta los nombres
// de tracelog (trace, debug, info, warn, error, none); un valor desconocido equivale a none.
func NewQueryTracer(zl zerolog.Logger, level string) *tracelog.TraceLog {
	lvl, err := tracelog.LogLevelFromString(level)
	if err != nil {
		lvl = tracelog.LogLevelNone
	}
	return &tracelog.TraceLog{Logger: zerologAdapter{zl: zl}, LogLevel: lvl}
}
