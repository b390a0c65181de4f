// Package httpserver serves the formguard API and drains it on cancellation.
//
// The caller owns signal handling: Run returns once its context is done and
// in-flight requests have finished, or the shutdown timeout has passed.
//
//	srv := httpserver.New(cfg.HTTP, log)
//	if err := srv.Run(ctx, router); err != nil {
//		return err
//	}
package httpserver
