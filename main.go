package main

import (
	_ "time/tzdata"

	"github.com/Ariyalex/pdf-parse-jaku/cmd"
)

func main() {
	cmd.Execute()
}
