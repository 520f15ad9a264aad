package main

import (
	"os"

	"github.com/storiesascode/storiesascode/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
