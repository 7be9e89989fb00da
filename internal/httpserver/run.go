package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts serving. Blocks until the listener
// fails or the process is stopped.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}

	srv.l.Infof(context.Background(), "HTTP server listening on :%d", srv.port)
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
