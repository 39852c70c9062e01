// Command vhm is the entry point for the due-diligence analysis service.
package main

import (
	"os"

	"github.com/K-dessa/VHM-api-sub000/internal/interfaces/cli"
)

func main() {
	os.Exit(cli.Execute())
}

//Personal.AI order the ending
