// Command ecsprofile drives CPU and memory profiles of World component
// operations and View iteration, using github.com/pkg/profile the way the
// teacher's own profile/query tool left commented out.
//
// Usage:
//
//	go build ./cmd/ecsprofile
//	go tool pprof -http=":8000" ./ecsprofile cpu.pprof
package main

import (
	"flag"
	"fmt"

	"github.com/pkg/profile"

	"github.com/corvidlabs/sparsecs"
)

type position struct {
	X, Y float64
}

type velocity struct {
	X, Y float64
}

type health struct {
	HP int
}

func main() {
	mode := flag.String("mode", "cpu", "profile mode: cpu or mem")
	entities := flag.Int("entities", 100000, "entities to create")
	iters := flag.Int("iters", 1000, "View.Each passes to run")
	flag.Parse()

	var stop interface{ Stop() }
	switch *mode {
	case "mem":
		stop = profile.Start(profile.MemProfile, profile.ProfilePath("."))
	default:
		stop = profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	}
	defer stop.Stop()

	run(*entities, *iters)
}

func run(entityCount, iters int) {
	w := sparsecs.NewWorld(entityCount)

	for i := 0; i < entityCount; i++ {
		e := w.CreateEntity()
		sparsecs.AddComponent(w, e, position{X: float64(i), Y: float64(i)})
		if i%2 == 0 {
			sparsecs.AddComponent(w, e, velocity{X: 1, Y: 1})
		}
		if i%10 == 0 {
			sparsecs.AddComponent(w, e, health{HP: 100})
		}
	}

	view := sparsecs.GetView2[position, velocity](w)
	var touched int
	for n := 0; n < iters; n++ {
		view.Each(func(_ sparsecs.Entity, p *position, v *velocity) {
			p.X += v.X
			p.Y += v.Y
			touched++
		})
	}

	fmt.Printf("entities=%d iters=%d touched=%d\n", entityCount, iters, touched)
}
