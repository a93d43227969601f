package main

import (
	"log"

	"github.com/V4MF1R3/TalentScout-hiring-assistant/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
