package main

import (
	"fmt"
	"os"

	"github.com/avstrong/tripplan/internal/app"
	"github.com/avstrong/tripplan/internal/logger"
)

func main() {
	l, err := logger.New(os.Getenv("TRIPPLAN_LOG_MODE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	var exitCode int

	if err := app.Run(l); err != nil {
		l.LogErrorf("Failed to run app: %v", err.Error())

		exitCode = 1
	}

	l.Sync()
	os.Exit(exitCode)
}
