package main

import (
	"log"

	"github.com/thiagokokada/powerprompt/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("powerprompt: %v", err)
	}
}
