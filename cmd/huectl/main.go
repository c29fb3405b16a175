// huectl sends one-off control commands to a Hue bridge through the
// coalescing dispatch path.
package main

import (
	"os"

	log "github.com/tbaccus/hue-dispatch/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
