// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package konsole

import "go.uber.org/zap"

// LogWriter routes console traffic into a zap logger: writer operations
// log at info level, error-writer operations at error level, one entry
// per invocation. The line/no-line distinction collapses in log form, so
// entries from Write are marked with an "unterminated" field.
//
// LogWriter implements only the write-side capabilities. Use [Combine]
// to pair it with a Reader when a full Console is required.
type LogWriter[F any] struct {
	unit   func(func() error) F
	logger *zap.Logger
}

// NewLogWriter creates a log-backed writer in the context lifted by unit.
func NewLogWriter[F any](unit func(func() error) F, logger *zap.Logger) *LogWriter[F] {
	return &LogWriter[F]{unit: unit, logger: logger}
}

func (w *LogWriter[F]) WriteLine(text string) F {
	return w.unit(func() error {
		w.logger.Info(text)
		return nil
	})
}

func (w *LogWriter[F]) Write(text string) F {
	return w.unit(func() error {
		w.logger.Info(text, zap.Bool("unterminated", true))
		return nil
	})
}

func (w *LogWriter[F]) WriteError(text string) F {
	return w.unit(func() error {
		w.logger.Error(text)
		return nil
	})
}
