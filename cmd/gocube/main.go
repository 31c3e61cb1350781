// GoCube Viewer - scans a Rubik's Cube from a color service and animates its solution.
package main

import (
	"github.com/SeamusWaldron/gocube_viewer/internal/cli"
)

func main() {
	cli.Execute()
}
