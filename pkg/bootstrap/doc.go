// Package bootstrap provides common initialization for hue-dispatch binaries.
//
// This package consolidates repeated setup logic:
//   - Logger setup with optional file rotation
//   - OpenTelemetry tracing initialization
//
// Example usage:
//
//	func main() {
//	    cfg := &config.Config{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    if err := bootstrap.InitLogger(cfg.Log); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    shutdown, err := bootstrap.InitTracing(ctx, cfg.Tracing)
//	    if err != nil {
//	        log.Warn(err)
//	    }
//	    defer shutdown(ctx)
//	}
package bootstrap
