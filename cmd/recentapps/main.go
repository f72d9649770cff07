package main

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/recentapps/internal/app"
)

func main() {
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if app.IsUsageError(err) {
			fmt.Fprintln(os.Stderr, "Run 'recentapps --help' for usage.")
		}
		os.Exit(1)
	}
}
