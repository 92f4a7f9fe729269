package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"math/rand"
	"time"

	"git.solver4all.com/azaryc2s/atsp"
)

var nodes atsp.ArrayIntFlags
var ranges atsp.ArrayFloatFlags

func main() {
	flag.Var(&nodes, "n", "List of numbers of nodes")
	flag.Var(&ranges, "range", "List of cost ranges r: arc costs are drawn uniformly from [-r, r)")
	name := flag.String("name", "zarychta", "Name for the instance")
	count := flag.Int("count", 10, "Number of instances per combination")
	box := flag.Float64("box", 10000, "Coordinates are drawn uniformly from [0, box) on both axes")
	w := flag.String("w", "RNG", "How arc costs are generated. RNG (default, asymmetric with negatives), EUC_2D or CEIL_2D")

	flag.Parse()

	if len(ranges) == 0 {
		ranges = append(ranges, 100)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for l := 0; l < *count; l++ {
		for i := 0; i < len(nodes); i++ {
			n := nodes[i]
			for j := 0; j < len(ranges); j++ {
				r := ranges[j]
				inst, err := atsp.GenerateInstance(n, *box, r, rng)
				if err != nil {
					log.Fatal(err)
				}
				if *w != "RNG" {
					inst.ArcCosts = atsp.CalcArcCosts(inst.NodeCoordinates, *w)
				}

				inst.Name = fmt.Sprintf("%s_%d_%.0f_%s_%d", *name, n, r, *w, l)
				inst.Comment = fmt.Sprintf("%s instance Nr. %d with %d nodes, costs generated as %s with range %.2f", *name, l, n, *w, r)

				jsonInst, err := json.MarshalIndent(inst, "", "\t")
				if err != nil {
					log.Fatal(err)
				}

				jsonInst = []byte(atsp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
				err = ioutil.WriteFile(fmt.Sprintf("%s.json", inst.Name), jsonInst, 0644)
				if err != nil {
					log.Fatal(err)
				}
			}
		}
	}
}
