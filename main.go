package main

import (
	"os"

	"github.com/firefly-engineering/readmegen/cmd"
	"github.com/firefly-engineering/readmegen/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
