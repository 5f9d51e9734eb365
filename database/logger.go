/*
 * Copyright 2023 ICON Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/icon-project/btp2/common/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DefaultLogSlowThreshold = time.Millisecond * 200
)

type databaseLogger struct {
	l             log.Logger
	lv            log.Level
	slowThreshold time.Duration
}

func newDatabaseLogger(l log.Logger) *databaseLogger {
	return &databaseLogger{
		l:             l.WithFields(log.Fields{log.FieldKeyModule: "database"}),
		lv:            l.GetLevel(),
		slowThreshold: DefaultLogSlowThreshold,
	}
}

func (l *databaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	nl := *l
	switch level {
	case logger.Silent:
		nl.lv = log.PanicLevel
	case logger.Error:
		nl.lv = log.ErrorLevel
	case logger.Warn:
		nl.lv = log.WarnLevel
	case logger.Info:
		nl.lv = log.InfoLevel
	}
	return &nl
}

func (l *databaseLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.lv >= log.InfoLevel {
		l.l.Logf(log.InfoLevel, msg, data...)
	}
}

func (l *databaseLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.lv >= log.WarnLevel {
		l.l.Logf(log.WarnLevel, msg, data...)
	}
}

func (l *databaseLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.lv >= log.ErrorLevel {
		l.l.Logf(log.ErrorLevel, msg, data...)
	}
}

func (l *databaseLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.lv <= log.PanicLevel {
		return
	}
	elapsed := float64(time.Since(begin).Nanoseconds()) / 1e6
	switch {
	case err != nil && l.lv >= log.ErrorLevel && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.l.Logf(log.ErrorLevel, "err:%s\n[%.3fms] [rows:%v] %s", err, elapsed, rows, sql)
	case elapsed > float64(l.slowThreshold.Milliseconds()) && l.lv >= log.WarnLevel:
		sql, rows := fc()
		slowLog := fmt.Sprintf("SLOW SQL >= %v", l.slowThreshold)
		l.l.Logf(log.WarnLevel, "%s\n[%.3fms] [rows:%v] %s", slowLog, elapsed, rows, sql)
	case l.lv >= log.TraceLevel:
		sql, rows := fc()
		l.l.Logf(log.TraceLevel, "[%.3fms] [rows:%v] %s", elapsed, rows, sql)
	}
}
