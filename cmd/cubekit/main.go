// Cubekit - CLI toolkit for scrambling, validating and solving Rubik's Cubes.
package main

import (
	"github.com/SeamusWaldron/cubekit/internal/cli"
)

func main() {
	cli.Execute()
}
