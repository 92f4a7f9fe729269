package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"git.solver4all.com/azaryc2s/atsp"
)

/* Converts TSPLIB ATSP files (EDGE_WEIGHT_TYPE: EXPLICIT, FULL_MATRIX) into
   path instances. The cycle instance is reduced to a path instance by
   appending a sink vertex that copies the incoming arcs of the depot, so an
   optimal 0-to-sink path corresponds to an optimal cycle through 0. */

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	targetDir := os.Args[1]
	files, err := ioutil.ReadDir(targetDir)
	if err != nil {
		log.Fatal(err)
	}

FILES:
	for _, f := range files {
		if !strings.HasSuffix(f.Name(), ".atsp") {
			continue
		}
		fileName := targetDir + "/" + f.Name()
		fmt.Println(fileName)
		file, err := os.Open(fileName)
		if err != nil {
			log.Fatal(err)
		}
		jsonName := strings.ReplaceAll(fileName, ".atsp", ".json")

		var name, comment string
		var dimension int
		var weights []float64
		var weightSection bool

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
		for scanner.Scan() {
			t := strings.TrimSpace(scanner.Text())
			if t == "" || t == "EOF" {
				continue
			}
			if t == "EDGE_WEIGHT_SECTION" {
				weightSection = true
				continue
			}
			if !weightSection {
				lineSplit := strings.SplitN(t, ":", 2)
				if len(lineSplit) < 2 {
					continue
				}
				key := strings.TrimSpace(lineSplit[0])
				value := strings.TrimSpace(lineSplit[1])
				switch key {
				case "NAME":
					name = value
				case "COMMENT":
					comment = value
				case "DIMENSION":
					dimension, err = strconv.Atoi(value)
					if err != nil {
						fmt.Printf("Couldn't parse the dimension! Skipping file: %s\n", err.Error())
						file.Close()
						continue FILES
					}
				case "EDGE_WEIGHT_TYPE":
					if value != "EXPLICIT" {
						fmt.Printf("Format other than EXPLICIT. Skipping for now...\n")
						file.Close()
						continue FILES
					}
				case "EDGE_WEIGHT_FORMAT":
					if value != "FULL_MATRIX" {
						fmt.Printf("Format other than FULL_MATRIX. Skipping for now...\n")
						file.Close()
						continue FILES
					}
				}
				continue
			}
			for _, field := range strings.Fields(t) {
				wt, err := strconv.ParseFloat(field, 64)
				if err != nil {
					fmt.Printf("Error parsing edge weight!: %s\n", err.Error())
					file.Close()
					continue FILES
				}
				weights = append(weights, wt)
			}
		}
		file.Close()
		if err := scanner.Err(); err != nil {
			log.Fatal(err)
		}
		if len(weights) != dimension*dimension {
			fmt.Printf("Expected %d weights, got %d. Skipping...\n", dimension*dimension, len(weights))
			continue
		}

		inst, err := pathInstance(weights, dimension)
		if err != nil {
			fmt.Printf("Couldn't build the instance: %s\n", err.Error())
			continue
		}
		inst.Name = name
		inst.Comment = fmt.Sprintf("%s | converted from TSPLIB, sink %d duplicates depot 0", comment, inst.SinkVertex)

		jsonInst, err := json.MarshalIndent(inst, "", "\t")
		if err != nil {
			log.Fatal(err)
		}
		jsonInst = []byte(atsp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
		err = ioutil.WriteFile(jsonName, jsonInst, 0644)
		if err != nil {
			log.Fatal(err)
		}
	}
}

// pathInstance builds an (n+1)-vertex path instance from an n*n full cost
// matrix. Vertex n is the sink copy of the depot: arcs into it cost the same
// as arcs into 0, arcs out of it copy the depot's (they are excluded by the
// model anyway, but every ordered pair needs a defined cost).
func pathInstance(matrix []float64, n int) (*atsp.Instance, error) {
	np := n + 1
	costs := make([]float64, np*(np-1))
	at := func(i, j int) float64 { return matrix[i*n+j] }
	for i := 0; i < np; i++ {
		for j := 0; j < np; j++ {
			if j == i {
				continue
			}
			var c float64
			switch {
			case i == n:
				c = at(0, j)
			case j == n:
				c = at(i, 0)
			default:
				c = at(i, j)
			}
			costs[atsp.ArcIndex(i, j, np)] = c
		}
	}
	xs := make([]float64, np)
	ys := make([]float64, np)
	return atsp.NewInstance(xs, ys, costs)
}
