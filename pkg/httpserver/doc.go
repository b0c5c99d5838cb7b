// Package httpserver runs an http.Server with context-driven graceful
// shutdown, plus a probe handler for health endpoints.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
//
// Run blocks until ctx is cancelled; pair it with signal.NotifyContext for
// clean SIGTERM handling.
package httpserver
