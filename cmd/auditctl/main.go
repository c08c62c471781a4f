package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/carlosftapiap/arcsapp-sub001/internal/client/cli"
	"github.com/carlosftapiap/arcsapp-sub001/internal/client/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		stop()
		log.Fatalf("%v", err)
		return
	}

	code := app.Run(ctx, config.Command(os.Args[1:]))
	_ = app.Close()
	stop()
	os.Exit(code)

}
