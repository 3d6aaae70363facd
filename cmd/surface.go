/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	perf "github.com/hodgesds/perf-utils"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/facetsurf/InputParameters"
	"github.com/notargets/facetsurf/assembly"
	"github.com/notargets/facetsurf/fem"
	"github.com/notargets/facetsurf/fespace"
	"github.com/notargets/facetsurf/mesh"
	"github.com/notargets/facetsurf/utils"
)

type ModelSurface struct {
	ICFile         string
	ParallelDegree int
	Profile        bool
	Perf           bool
}

// SurfaceResult summarizes one run
type SurfaceResult struct {
	NDof         int
	NDofLevels   []int
	Coupling     map[fespace.CouplingType]int
	NNZ          int
	Instructions uint64 // CPU instructions spent in assembly, zero unless counted
}

// SurfaceCmd represents the surface command
var SurfaceCmd = &cobra.Command{
	Use:   "surface",
	Short: "Build a facet surface space and assemble its mass matrix",
	Long: `
Builds one of the standard surface meshes, creates the facet surface space on
it, numbers the dofs and assembles the facet mass matrix in parallel.

facetsurf surface -I input.yaml -n 4`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		ms := &ModelSurface{}
		if ms.ICFile, err = cmd.Flags().GetString("inputConditionsFile"); err != nil {
			panic(err)
		}
		ms.ParallelDegree = viper.GetInt("surface.parallel")
		ms.Profile, _ = cmd.Flags().GetBool("profile")
		ms.Perf, _ = cmd.Flags().GetBool("perf")
		ip := processSurfaceInput(ms)
		if ms.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if _, err = RunSurface(ms, ip, log.Logger); err != nil {
			log.Error().Err(err).Msg("surface run failed")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(SurfaceCmd)
	SurfaceCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Order\n\t- Mesh")
	SurfaceCmd.Flags().IntP("parallel", "n", 0, "number of go routines for assembly, 0 for one per CPU")
	SurfaceCmd.Flags().Bool("profile", false, "write a CPU profile of the run")
	SurfaceCmd.Flags().Bool("perf", false, "count CPU instructions spent in assembly")
	if err := viper.BindPFlag("surface.parallel", SurfaceCmd.Flags().Lookup("parallel")); err != nil {
		panic(err)
	}
}

func processSurfaceInput(ms *ModelSurface) (ip *InputParameters.InputParametersSurface) {
	var (
		err  error
		data []byte
	)
	if len(ms.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Test Case"
Order: 2
NoWirebasket: false
DefinedOn: [1]
Mesh:
  Type: quadplate # Can be "trigplate", "tet" or "quad"
  Nx: 4
  Ny: 4
  Levels: 1
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		os.Exit(1)
	}
	if data, err = os.ReadFile(ms.ICFile); err != nil {
		panic(err)
	}
	ip = &InputParameters.InputParametersSurface{}
	if err = ip.Parse(data); err != nil {
		panic(err)
	}
	ip.Print()
	return
}

// BuildMesh constructs the surface mesh named by the input
func BuildMesh(mp InputParameters.MeshParameters) (m *mesh.SurfaceMesh, err error) {
	nx, ny := mp.Nx, mp.Ny
	if nx < 1 {
		nx = 1
	}
	if ny < 1 {
		ny = 1
	}
	switch mp.Type {
	case "quad":
		m = mesh.NewSingleQuad()
	case "", "quadplate":
		m = mesh.NewQuadPlate(nx, ny)
	case "trigplate":
		m = mesh.NewTrigPlate(nx, ny)
	case "tet":
		m = mesh.NewSingleTet()
	default:
		err = fmt.Errorf("unknown mesh type %q, have quad, quadplate, trigplate and tet", mp.Type)
		return
	}
	for l := 1; l < mp.Levels; l++ {
		m.AddLevel()
	}
	return
}

func RunSurface(ms *ModelSurface, ip *InputParameters.InputParametersSurface, logger zerolog.Logger) (res SurfaceResult, err error) {
	var (
		m     *mesh.SurfaceMesh
		space fespace.Space
		A     utils.CSR
	)
	if m, err = BuildMesh(ip.Mesh); err != nil {
		return
	}
	if space, err = fespace.DefaultRegistry.Create(fespace.SpaceName, m, ip.Flags(),
		fespace.WithLogger(logger)); err != nil {
		return
	}
	if err = space.Update(); err != nil {
		return
	}
	res.NDof = space.GetNDof()
	for l := 0; l < m.NLevels(); l++ {
		res.NDofLevels = append(res.NDofLevels, space.GetNDofAtLevel(l))
	}
	res.Coupling = make(map[fespace.CouplingType]int)
	for d := 0; d < res.NDof; d++ {
		res.Coupling[space.GetCouplingType(d)]++
	}

	parallel := ms.ParallelDegree
	if parallel == 0 {
		parallel = ip.ParallelDegree
	}
	asm := assembly.NewAssembler(space, parallel, ip.IntegrationOrder, logger)
	assemble := func() (err error) {
		A, err = asm.AssembleMatrix(fem.BND)
		return
	}
	if ms.Perf {
		var pv *perf.ProfileValue
		if pv, err = perf.CPUInstructions(assemble); err != nil {
			// Counters are often unavailable in containers, fall back to a plain run
			logger.Warn().Err(err).Msg("cpu instruction counter unavailable")
			err = assemble()
		} else {
			res.Instructions = pv.Value
		}
	} else {
		err = assemble()
	}
	if err != nil {
		return
	}
	res.NNZ = A.NNZ()

	logger.Info().
		Str("title", ip.Title).
		Int("nelements", m.NElements(fem.BND)).
		Int("nedges", m.NEdges()).
		Int("ndof", res.NDof).
		Ints("ndof_levels", res.NDofLevels).
		Int("wirebasket", res.Coupling[fespace.WirebasketDof]).
		Int("local", res.Coupling[fespace.LocalDof]).
		Int("unused", res.Coupling[fespace.UnusedDof]).
		Int("nnz", res.NNZ).
		Uint64("instructions", res.Instructions).
		Msg("facet surface space assembled")
	return
}
