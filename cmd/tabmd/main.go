package main

import (
	"log"

	"github.com/mithrel/tabmd/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("tabmd: ")
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
