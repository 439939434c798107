package atlastool

import (
	"github.com/akeil/atlastool/internal/logging"
)

// SetLogLevel sets the log level by name.
// Valid names are "debug", "info", "warning" and "error";
// any other value disables logging.
func SetLogLevel(level string) {
	logging.SetLevel(logging.ParseLevel(level))
}
