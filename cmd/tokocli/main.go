package main

import (
	"context"
	"log"
	"os"

	"github.com/warungdev/tokocli/internal/config"
	"github.com/warungdev/tokocli/internal/logging"
	"github.com/warungdev/tokocli/internal/repo"
	"github.com/warungdev/tokocli/internal/service"
	"github.com/warungdev/tokocli/internal/shell"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	ctx := logging.IntoContext(context.Background(), logger)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer func() {
		if err := config.CloseDB(db); err != nil {
			logger.Error("db close error", "error", err)
		}
	}()

	r := repo.New(db)
	sh := shell.New(
		&service.AuthService{Repo: r},
		&service.CatalogService{Repo: r},
		&service.OrderService{Repo: r},
		os.Stdin,
		os.Stdout,
	)

	sh.Run(ctx)
}
