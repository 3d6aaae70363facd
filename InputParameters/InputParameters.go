package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/facetsurf/fespace"
)

type MeshParameters struct {
	Type   string `json:"Type"` // quad, quadplate, trigplate or tet
	Nx     int    `json:"Nx"`
	Ny     int    `json:"Ny"`
	Levels int    `json:"Levels"` // Refinement levels known to the multilevel bookkeeping
}

// Parameters obtained from the YAML input file
type InputParametersSurface struct {
	Title            string         `json:"Title"`
	Order            *int           `json:"Order"`
	RelOrder         *int           `json:"RelOrder"`
	VariableOrder    bool           `json:"VariableOrder"`
	NoWirebasket     bool           `json:"NoWirebasket"`
	DefinedOn        []int          `json:"DefinedOn"` // Surface region tags, empty for all
	IntegrationOrder int            `json:"IntegrationOrder"`
	ParallelDegree   int            `json:"ParallelDegree"`
	Mesh             MeshParameters `json:"Mesh"`
}

func (ip *InputParametersSurface) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

// Flags returns the space configuration
func (ip *InputParametersSurface) Flags() fespace.Flags {
	return fespace.Flags{
		Order:         ip.Order,
		RelOrder:      ip.RelOrder,
		VariableOrder: ip.VariableOrder,
		NoWirebasket:  ip.NoWirebasket,
		DefinedOn:     ip.DefinedOn,
	}
}

func (ip *InputParametersSurface) Print() {
	optional := func(p *int) string {
		if p == nil {
			return "unset"
		}
		return fmt.Sprintf("%d", *p)
	}
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%s]\t\t\t= Order\n", optional(ip.Order))
	fmt.Printf("[%s]\t\t\t= RelOrder\n", optional(ip.RelOrder))
	fmt.Printf("[%v]\t\t\t= VariableOrder\n", ip.VariableOrder)
	fmt.Printf("[%v]\t\t\t= NoWirebasket\n", ip.NoWirebasket)
	fmt.Printf("%v\t\t\t= DefinedOn\n", ip.DefinedOn)
	fmt.Printf("[%d]\t\t\t= IntegrationOrder\n", ip.IntegrationOrder)
	fmt.Printf("[%s %dx%d, %d levels]\t= Mesh\n", ip.Mesh.Type, ip.Mesh.Nx, ip.Mesh.Ny, ip.Mesh.Levels)
}
