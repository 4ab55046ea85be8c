// Command gpm runs Strachey's General Purpose Macrogenerator over a
// file or stdin, or expands a batch of files concurrently.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/bdwalton/gpm/internal/cli"
)

func main() {
	flag.Parse()
	defer glog.Flush()

	if err := cli.Execute(); err != nil {
		glog.Errorf("gpm: %v", err)
		os.Exit(1)
	}
}
