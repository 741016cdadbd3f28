package timing

import (
	"time"

	"github.com/conceptmap/backend/pkg/logger"
)

// Stage measures the wall-clock duration of a named unit of work, such as a
// pipeline stage or a document extraction.
type Stage struct {
	name  string
	start time.Time
}

// Start begins timing a stage.
func Start(name string) *Stage {
	return &Stage{name: name, start: time.Now()}
}

// Elapsed returns the time since the stage started.
func (s *Stage) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Done logs the elapsed duration at debug level together with any extra
// key-value pairs.
func (s *Stage) Done(keyvals ...any) {
	args := append(
		[]any{"duration_ms", s.Elapsed().Milliseconds()},
		keyvals...,
	)
	logger.Debug("[Timing] "+s.name, args...)
}
