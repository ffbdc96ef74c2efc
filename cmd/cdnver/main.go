package main

import (
	"github.com/NVIDIA/cdn-mirror/pkg/cli"
)

func main() {
	cli.Execute()
}
