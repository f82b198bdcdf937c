// Command dbg is a small smoke-test binary exercising the collision
// package directly, bypassing the cobra CLI, the way the original
// go-detour repo shipped a standalone debug binary calling straight into
// the library.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gayfrogog/kclcreate/buildlog"
	"github.com/gayfrogog/kclcreate/collision"
)

func check(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	f, err := os.Create("testdata/smoke.kcl")
	check(err)
	defer f.Close()

	triangles := []collision.Triangle{
		collision.NewTriangle(
			collision.Vector{X: 0, Y: 0, Z: 0},
			collision.Vector{X: 1, Y: 0, Z: 0},
			collision.Vector{X: 0, Y: 1, Z: 0},
			0,
		),
	}

	log := buildlog.New(true)
	log.StartTimer(buildlog.TimerTotal)
	err = collision.Pack(f, triangles, 8, 8)
	log.StopTimer(buildlog.TimerTotal)
	check(err)

	fmt.Println("packed", len(triangles), "triangle(s) in", log.AccumulatedTime(buildlog.TimerTotal))
	log.DumpLog("smoke test log")
}
