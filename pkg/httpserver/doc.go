// Package httpserver runs an http.Handler with sane timeouts, structured
// lifecycle logging and graceful shutdown.
//
// Run listens on the configured address; Serve accepts an existing
// net.Listener. Both block until the context is cancelled, the process
// receives SIGINT or SIGTERM, or Shutdown is called, and then drain
// in-flight requests within the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// HealthHandler serves liveness and readiness probes.
//
// Start failures are wrapped with ErrStart and shutdown failures with
// ErrShutdown; use errors.Is to tell them apart.
package httpserver
