/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */
/* Copyright 2021, Gurobi Optimization, LLC */

package main

import (
	"encoding/json"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/atsp"
)

/* Builds the base path model for an instance and writes it as an .lp file
   next to the input for offline inspection. No optimization is run. */

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	inputF := os.Args[1]

	instStr, err := ioutil.ReadFile(inputF)
	if err != nil {
		log.Printf("At %s: %s\n", inputF, err.Error())
		return
	}

	var pInst atsp.Instance
	err = json.Unmarshal(instStr, &pInst)
	if err != nil {
		log.Printf("At %s: %s\n", inputF, err.Error())
		return
	}

	eng, err := atsp.NewGurobiEngine("atsp-path-lp.log")
	if err != nil {
		log.Printf("At %s: %s\n", inputF, err.Error())
		return
	}
	defer eng.Free()

	_, err = atsp.NewPathSolver(&pInst, eng)
	if err != nil {
		log.Printf("At %s: %s\n", inputF, err.Error())
		return
	}

	lpName := strings.ReplaceAll(inputF, ".json", ".lp")
	err = eng.WriteModel(lpName)
	if err != nil {
		log.Printf("At %s: %s\n", inputF, err.Error())
		return
	}
	log.Printf("Wrote the base model to %s\n", lpName)
}
