package main

import (
	"log"

	"github.com/basingerf-felix/spilna-peremoga-website/cmd"
	"github.com/basingerf-felix/spilna-peremoga-website/config"
)

func main() {
	log.Printf("spilna-peremoga-website %s (%s)", config.Version, config.CommitHash)
	cmd.Execute()
}
