package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/limaJavier/graphsat/cmd/exitcode"
	"github.com/limaJavier/graphsat/cmd/root"
)

func main() {
	rootCmd := root.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		var exitErr exitcode.Error
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
