package main

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"math"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/atsp"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := ioutil.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", os.Args[1], err.Error())
		return
	}
	fmt.Printf("Name,Optimal,Time,Cost,SECs,Dimension,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if !strings.Contains(fileName, ".json") {
			continue
		}
		inst := atsp.Instance{}
		instStr, err := ioutil.ReadFile(fileName)
		if err != nil {
			log.Printf("Couldn't read %s: %s\n", f.Name(), err.Error())
			return
		}
		err = json.Unmarshal(instStr, &inst)
		if err != nil {
			log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
			return
		}
		var sol atsp.Solution
		if inst.Solution != nil {
			sol = *inst.Solution
		}
		err = checkPath(inst, sol)
		if err != nil {
			sol.Comment += fmt.Sprintf("ANALYZER: Error = %s", err.Error())
		}
		fmt.Printf("%s,%t,%s,%.2f,%d,%d,%s\n", inst.Name, sol.Optimal, sol.Time, sol.Cost, sol.SECCount, inst.Dimension, sol.Comment)
	}
}

func checkPath(inst atsp.Instance, sol atsp.Solution) error {
	if len(sol.Tour) == 0 {
		return nil
	}
	if sol.Tour[0] != inst.SourceVertex {
		return fmt.Errorf("path starts at %d, not at the source %d", sol.Tour[0], inst.SourceVertex)
	}
	if sol.Tour[len(sol.Tour)-1] != inst.SinkVertex {
		return fmt.Errorf("path ends at %d, not at the sink %d", sol.Tour[len(sol.Tour)-1], inst.SinkVertex)
	}
	used := make([]bool, inst.Dimension)
	for _, v := range sol.Tour {
		if v < 0 || v >= inst.Dimension {
			return fmt.Errorf("vertex %d out of range", v)
		}
		if used[v] {
			return fmt.Errorf("vertex %d visited twice", v)
		}
		used[v] = true
	}
	cost, err := atsp.TourCost(sol.Tour, &inst)
	if err != nil {
		return err
	}
	if math.Abs(cost-sol.Cost) > 1e-6 {
		return fmt.Errorf("reported cost %.6f does not match the recomputed cost %.6f", sol.Cost, cost)
	}
	return nil
}
