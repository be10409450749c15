package repo

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm/logger"
)

// gormWriter направляет сообщения gorm в zap.
type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...interface{}) {
	w.log.Warnf(format, args...)
}

// newGormLogger пишет медленные запросы и ошибки; "record not found" —
// обычный исход поиска (неизвестный токен, анонимная сессия) и не логируется.
func newGormLogger(log *zap.SugaredLogger) logger.Interface {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return logger.New(gormWriter{log: log}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})
}
