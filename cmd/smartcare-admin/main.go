package main

import (
	"github.com/smartcare-id/admin-console/internal/cli"
)

func main() {
	cli.Execute()
}
