package main

import (
	"log"

	"github.com/decisionai/candidate-ranker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
