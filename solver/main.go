/* Copyright 2021, Arkadiusz Zarychta, arkadiusz.zarychta@h-brs.de */
/* Copyright 2021, Gurobi Optimization, LLC */

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"time"

	"git.solver4all.com/azaryc2s/atsp"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
)

var (
	sol   atsp.Solution
	pInst atsp.Instance

	inputF  *string
	outputF *string
	logLvl  *int
)

func main() {
	var err error

	inputF = flag.String("input", "input.json", "Path to the input instance")
	outputF = flag.String("output", "", "Path to the output file. By default the input file will be overwritten adding the solution")
	logLvl = flag.Int("log", 2, "Level of the logging output. Higher value is more verbose. Range 1-4")

	flag.Parse()
	atsp.InitLoggers(*logLvl)

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	sol = atsp.Solution{Comment: "", System: atsp.SysInfo{Platform: hostStat.Platform, CPU: cpuStat[0].ModelName, RAM: fmt.Sprintf("%d GB", (vmStat.Total / 1024 / 1024 / 1024))}}

	instStr, err := ioutil.ReadFile(*inputF)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	err = json.Unmarshal(instStr, &pInst)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	pInst.Solution = &sol
	defer writeSolution()

	if err = pInst.Validate(); err != nil {
		sol.Comment = err.Error()
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	eng, err := atsp.NewGurobiEngine("atsp-path.log")
	if err != nil {
		sol.Comment = err.Error()
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	defer eng.Free()
	sol.Comment = fmt.Sprintf("Using %d threads", eng.Threads())

	solver, err := atsp.NewPathSolver(&pInst, eng)
	if err != nil {
		sol.Comment += fmt.Sprintf(" | %s", err.Error())
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	startTime := time.Now()
	res, err := solver.Solve()
	if err != nil {
		sol.Time = time.Since(startTime).String()
		sol.Comment += fmt.Sprintf(" | %s", err.Error())
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	sol.Cost = res.Cost
	sol.Optimal = res.Optimal
	sol.Tour = res.Tour
	sol.SECCount = res.SECCount
	sol.Time = res.Time

	atsp.Log(2, "Found a path-ATSP solution: %s", res.String())
}

func writeSolution() {
	jsonInst, err := json.MarshalIndent(pInst, "", "\t")
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	jsonInst = []byte(atsp.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	var fileName string
	if *outputF == "" {
		fileName = *inputF //overwrite the input file
	} else {
		fileName = *outputF
	}
	err = ioutil.WriteFile(fileName, jsonInst, 0644)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
}
