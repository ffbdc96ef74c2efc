package main

import (
	"log"

	"github.com/NVIDIA/cdn-mirror/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatalf("cdnverd: %v", err)
	}
}
