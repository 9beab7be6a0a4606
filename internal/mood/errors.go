package mood

import (
	"errors"
	"fmt"
)

// ErrStaleRecord is returned by a StateRepo when a save targets an older
// record version than the stored one. The caller retries with a fresh read.
var ErrStaleRecord = errors.New("state record version is stale")

// ConfigError reports an invalid configuration value. It is fatal and
// surfaced at startup; logic components never silently default around it.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config %s: %s", e.Field, e.Reason)
}
