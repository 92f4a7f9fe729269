package atsp

import (
	"fmt"
	"math"
	"regexp"
)

// ArcIndex maps the ordered pair (i, j), i != j, to its position in the
// lexicographic arc enumeration over [0,n) x [0,n). This ordering is the
// contract for flat cost lists and for the decision-variable layout.
func ArcIndex(i, j, n int) int {
	if j > i {
		return i*(n-1) + j - 1
	}
	return i*(n-1) + j
}

// CalcArcCosts computes metric arc costs from coordinates as a flat list in
// lexicographic arc order. distType is EUC_2D or CEIL_2D.
func CalcArcCosts(coordinates [][]float64, distType string) []float64 {
	n := len(coordinates)
	result := make([]float64, n*(n-1))
	for node := 0; node < n; node++ {
		for node2 := 0; node2 < n; node2++ {
			if node2 == node {
				continue
			}
			xDist := coordinates[node][0] - coordinates[node2][0]
			yDist := coordinates[node][1] - coordinates[node2][1]
			var distance float64
			if distType == "EUC_2D" {
				distance = math.Floor(math.Sqrt(math.Pow(xDist, 2)+math.Pow(yDist, 2)) + 0.5)
			} else if distType == "CEIL_2D" {
				distance = math.Ceil(math.Sqrt(math.Pow(xDist, 2) + math.Pow(yDist, 2)))
			}
			result[ArcIndex(node, node2, n)] = distance
		}
	}
	return result
}

func Print2DArray(a [][]float64) string {
	s := ""
	for _, x := range a {
		for _, y := range x {
			s += fmt.Sprintf("%.2f,", y)
		}
		s += "\n"
	}
	return s
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$3$5")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
