// Command paperless-export rebuilds a paperless-ngx export directory
// into a browsable layout of canonical copies and linked views.
package main

import (
	"os"

	"github.com/oberrich/paperless-export/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
