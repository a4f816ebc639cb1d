package main

import (
	"os"
	"time"

	"github.com/einherij/enterprise"
	"github.com/einherij/enterprise/utils"
	"github.com/sirupsen/logrus"

	"github.com/einherij/vector2/pkg/calculator"
	"github.com/einherij/vector2/pkg/calculator/calcsend"
	"github.com/einherij/vector2/pkg/wsclient"
)

func main() {
	handlerHostURL := os.Getenv("HANDLER_HOST_URL")

	statusInterval := time.Second
	if v := os.Getenv("STATUS_INTERVAL"); v != "" {
		statusInterval = utils.Must(time.ParseDuration(v))
	}

	app := enterprise.NewApplication()
	app.RegisterOnShutdown(func() {
		logrus.Warnf("calculator shut down")
	})

	// connect to interface
	wsClient := wsclient.New(handlerHostURL)
	app.RegisterRunner(wsClient)

	calc := calculator.New(wsClient)
	app.RegisterRunner(calc)

	statusSender := calcsend.New(wsClient, calc, statusInterval)
	app.RegisterRunner(statusSender)

	app.Run()
}
