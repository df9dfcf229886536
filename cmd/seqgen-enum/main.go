// cmd/seqgen-enum/main.go
package main

import (
	"os"

	"seqgen/internal/enumapp"
)

func main() {
	os.Exit(enumapp.Run(os.Args[1:], os.Stdout, os.Stderr))
}
