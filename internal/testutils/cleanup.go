package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// RunWithCleanup runs m and purges every container this package started,
// also when the run is interrupted. It returns the exit code for os.Exit.
func RunWithCleanup(m *testing.M) int {
	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	go func() {
		if _, ok := <-interrupted; !ok {
			return
		}
		log.Println("tests interrupted, removing containers")
		CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	CleanupSharedContainer()
	return code
}
