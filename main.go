package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sys/unix"

	httpx "github.com/benjaminpeeters/stopbrowsing/http"
	"github.com/benjaminpeeters/stopbrowsing/utils"
)

func newApp() *cli.App {
	return &cli.App{
		Name:            "stopbrowsing",
		Usage:           "answer every request on a blocked port with one fixed redirect page",
		ArgsUsage:       "<port> <redirect_dir>",
		HideHelpCommand: true,
		Action:          run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		_ = cli.ShowAppHelp(c)
		return cli.Exit("", 1)
	}
	port, err := utils.ParsePort(c.Args().Get(0))
	if err != nil {
		_ = cli.ShowAppHelp(c)
		return cli.Exit(err.Error(), 1)
	}
	redirectDir := c.Args().Get(1)

	logger := log.New(os.Stdout, "http ", log.LstdFlags)
	srv, err := httpx.Start(fmt.Sprintf(":%d", port), redirectDir, logger)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	// Block until termination signal; requests are handled in the serve goroutine.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, unix.SIGINT, unix.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
	logger.Printf("server stopped")
	return nil
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
