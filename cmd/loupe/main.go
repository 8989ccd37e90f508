// loupe is a terminal page viewer with live display preferences
package main

import (
	"os"

	"github.com/loupedev/loupe/cmd/loupe/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
