package main

import (
	"fmt"
	"os"
	"time"

	"github.com/LeeDigitalWorks/logarchive/cmd"

	"github.com/getsentry/sentry-go"
)

func main() {
	// The DSN is read from SENTRY_DSN; without one the client is disabled.
	err := sentry.Init(sentry.ClientOptions{
		SampleRate:       1.0,
		EnableTracing:    true,
		TracesSampleRate: 0.1,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sentry.Init: %v", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	cmd.Execute()
}
