// Command admin manages console accounts and database maintenance.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/safekids/app-safekids/internal/config"
	"github.com/safekids/app-safekids/internal/logging"
	"github.com/safekids/app-safekids/internal/services"
)

func main() {
	a := &app{
		out:          os.Stdout,
		readPassword: terminalPassword(os.Stdin, os.Stderr),
		setup:        connect,
	}
	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}

// connect loads the configuration and wires the services against MongoDB
func connect(a *app) error {
	if err := logging.InitLogger(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := config.LoadConfig(); err != nil {
		return err
	}
	config.InitMongoDB()
	services.InitServices(services.MongoStores(config.MongoDB, config.AppConfig), nil, config.AppConfig)

	a.users = services.AuthServiceInstance
	a.ensureIndexes = config.EnsureIndexes
	a.close = func(ctx context.Context) error {
		return config.MongoDB.Client().Disconnect(ctx)
	}
	return nil
}
