// Cube Navigation Widget - an interactive Rubik's cube that doubles as a site menu.
package main

import (
	"github.com/cubenav/cubenav/internal/cli"
)

func main() {
	cli.Execute()
}
