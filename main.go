package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/oakwood-commons/crumbline/cmd"
	"github.com/oakwood-commons/crumbline/pkg/logger"
)

func main() {
	exitCode := 0
	if err := cmd.Execute(); err != nil {
		exitCode = 1
		var exitErr *cmd.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.Code
		}
		if exitErr == nil || !exitErr.Silent {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		logger.GetGlobalLogger().V(1).Info("Command failed", "exit_code", exitCode, "error", err.Error())
	}

	logger.Sync()
	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
