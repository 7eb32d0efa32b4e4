package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/poofware/pm-dashboard/internal/commands"
	"github.com/poofware/pm-dashboard/internal/config"
	"github.com/poofware/pm-dashboard/internal/utils"
)

func main() {
	utils.InitLogger(config.ResolvedAppName())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.New().ExecuteContext(ctx); err != nil {
		utils.Logger.WithError(err).Error("Command failed")
		stop()
		os.Exit(1)
	}
}
