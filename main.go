package main

import (
	"fmt"
	"os"

	"github.com/rkoval/brightpath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
