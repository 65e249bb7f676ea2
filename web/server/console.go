package server

import (
	"fmt"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// WebLogger implements core.Logger by tagging each message with its render
// ID before forwarding it to the server log
type WebLogger struct {
	renderID string
	base     core.Logger
}

// NewWebLogger creates a new web logger for a specific render
func NewWebLogger(renderID string, base core.Logger) core.Logger {
	return &WebLogger{
		renderID: renderID,
		base:     base,
	}
}

// Printf implements core.Logger interface
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	wl.base.Printf("[%s] %s", wl.renderID, fmt.Sprintf(format, args...))
}
