// Command kuku-random drills 20 randomly chosen multiplication facts with streak tracking.
package main

import (
	"context"
	"os"

	drillcmd "github.com/remaimber-it/kuku/internal/cmd/drill"
	practicesession "github.com/remaimber-it/kuku/internal/domain/practice_session"
	"github.com/remaimber-it/kuku/internal/infrastructure/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		drillcmd.Exitf(os.Stderr, "Error: %v", err)
	}

	// Interrupts are not trapped: Ctrl-C ends the process and the session with it.
	if _, err := drillcmd.Run(context.Background(), cfg, practicesession.ModeRandomized, os.Stdin, os.Stdout, os.Stderr, drillcmd.Options{}); err != nil {
		drillcmd.Exitf(os.Stderr, "Error: %v", err)
	}
}
