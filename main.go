package main

import (
	"github.com/thirdweb-dev/grants-insight/cmd"
)

func main() {
	cmd.Execute()
}
