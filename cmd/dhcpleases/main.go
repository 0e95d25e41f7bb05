// ===== cmd/dhcpleases/main.go =====
package main

import (
	"fmt"
	"os"
)

var (
	sha1ver   string
	buildTime string
	repoName  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
