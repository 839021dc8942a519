package main

import (
	"github.com/jrpbone/Diabetes-Predictor/pkg/cli"
)

func main() {
	cli.Execute()
}
