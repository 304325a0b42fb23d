// Package main is the entry point for MazeRunner.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newOptions()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_MAZERUNNER_API_KEY")
	if apiKey == "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_MAZERUNNER_DATASET")
	if dataset == "" {
		dataset = "mazerunner"
	}

	// The .env file may hold an unexpanded variable reference, so the
	// header is built here rather than read from OTEL_EXPORTER_OTLP_HEADERS.
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
