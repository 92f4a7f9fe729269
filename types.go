package atsp

// Instance is a path-ATSP instance on a complete digraph: a minimum-cost
// Hamiltonian path is sought from SourceVertex to SinkVertex. ArcCosts holds
// one cost per ordered vertex pair (i, j), i != j, in lexicographic order.
// Costs may be negative and cost(i,j) need not equal cost(j,i).
type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	Dimension       int         `json:"dimension"`
	DisplayDataType string      `json:"display_data_type"`
	NodeCoordinates [][]float64 `json:"node_coordinates"`
	ArcCosts        []float64   `json:"arc_costs"`
	SourceVertex    int         `json:"source_vertex"`
	SinkVertex      int         `json:"sink_vertex"`

	Solution *Solution `json:"solution,omitempty"`
}

type Solution struct {
	Cost     float64 `json:"cost"`
	Optimal  bool    `json:"optimal"`
	Tour     []int   `json:"tour"`
	SECCount int     `json:"sec_count"`

	Time    string  `json:"time"`
	System  SysInfo `json:"system"`
	Comment string  `json:"comment"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}
