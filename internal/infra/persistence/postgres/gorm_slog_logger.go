package postgres

import (
	"context"
	"log/slog"
	"time"

	"marketplace/config"

	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger adapts GORM's logger interface onto the service's slog logger.
type gormSlogLogger struct {
	logger *slog.Logger
	debug  bool
}

func newGormSlogLogger(logger *slog.Logger, cfg *config.Config) gormlogger.Interface {
	return &gormSlogLogger{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// LogMode is a no-op; verbosity follows the service debug flag instead.
func (l *gormSlogLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, slog.Any("args", args))
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, slog.Any("args", args))
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, slog.Any("args", args))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	elapsed := time.Since(begin)
	switch {
	case err != nil:
		sql, rows := fc()
		l.logger.ErrorContext(ctx, "SQL error",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)
	case elapsed >= slowQueryThreshold:
		sql, rows := fc()
		l.logger.WarnContext(ctx, "Slow SQL",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	case l.debug:
		sql, rows := fc()
		l.logger.DebugContext(ctx, "SQL",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}
