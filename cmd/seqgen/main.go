// cmd/seqgen/main.go
package main

import (
	"os"

	"seqgen/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:], os.Stdout, os.Stderr))
}
