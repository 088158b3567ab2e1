package main

import (
	"context"
	"fmt"
	"os"

	"github.com/storm-lzy/oxex-horses/internal/adapter"
	"github.com/storm-lzy/oxex-horses/internal/client"
	"github.com/storm-lzy/oxex-horses/internal/config"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	adapter.RegisterMetrics()

	app, err := client.New(config.DeploymentClient)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init client app error: %v\n", err)
		os.Exit(1)
	}

	if err = app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "client run error: %v\n", err)
		os.Exit(1)
	}
}

func printBuildInfo() {
	orNA := func(s string) string {
		if s == "" {
			return "N/A"
		}
		return s
	}
	fmt.Printf("Build version: %s\n", orNA(buildVersion))
	fmt.Printf("Build date: %s\n", orNA(buildDate))
	fmt.Printf("Build commit: %s\n", orNA(buildCommit))
}
