package main

import (
	"context"
	"fmt"
	"os"

	"github.com/storm-lzy/oxex-horses/internal/adapter"
	"github.com/storm-lzy/oxex-horses/internal/client"
	"github.com/storm-lzy/oxex-horses/internal/config"
)

func main() {
	adapter.RegisterMetrics()

	app, err := client.New(config.DeploymentAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init admin app error: %v\n", err)
		os.Exit(1)
	}

	if err = app.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "admin run error: %v\n", err)
		os.Exit(1)
	}
}
