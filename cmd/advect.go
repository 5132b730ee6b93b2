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
	"math"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/gospectral/chebadv/InputParameters"
	"github.com/gospectral/chebadv/advection"
)

// AdvectCmd represents the advect command
var AdvectCmd = &cobra.Command{
	Use:   "advect",
	Short: "One dimensional advection model problem",
	Long: `
Integrates du/dt + v du/dx = 0 on [-1,1] from u0(x) = sin(pi*x) with the
traveling wave boundary value at x = -1, comparing the hard-reset and penalty
boundary enforcement policies against the analytic solution,

chebadv advect -n 10 --bc both`,
	Run: func(cmd *cobra.Command, args []string) {
		ma := &ModelAdvect{}
		ma.N, _ = cmd.Flags().GetInt("n")
		ma.Speed, _ = cmd.Flags().GetFloat64("speed")
		ma.Alpha, _ = cmd.Flags().GetFloat64("alpha")
		ma.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
		ma.NSteps, _ = cmd.Flags().GetInt("steps")
		ma.BCType, _ = cmd.Flags().GetString("bc")
		ma.PlotPoints, _ = cmd.Flags().GetInt("points")
		ma.Graph, _ = cmd.Flags().GetBool("graph")
		ma.Profile, _ = cmd.Flags().GetBool("profile")
		input, _ := cmd.Flags().GetString("input")
		if input != "" {
			if err := ma.ReadInput(input); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		RunAdvect(ma)
	},
}

func init() {
	rootCmd.AddCommand(AdvectCmd)
	AdvectCmd.Flags().IntP("n", "n", 10, "polynomial truncation order")
	AdvectCmd.Flags().Float64("speed", 2, "advection speed v")
	AdvectCmd.Flags().Float64("alpha", 100, "penalty gain (penalty BC only)")
	AdvectCmd.Flags().Float64("finalTime", 1, "target end time for the run")
	AdvectCmd.Flags().Int("steps", 1000, "number of uniform Euler steps")
	AdvectCmd.Flags().String("bc", "both", "boundary enforcement: reset, penalty or both")
	AdvectCmd.Flags().Int("points", 100, "uniform sample points for error reporting")
	AdvectCmd.Flags().BoolP("graph", "g", false, "print a terminal plot of the final solution")
	AdvectCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
	AdvectCmd.Flags().StringP("input", "i", "", "YAML input parameter file")
}

type ModelAdvect struct {
	N, NSteps               int
	Speed, Alpha, FinalTime float64
	BCType                  string
	PlotPoints              int
	Graph, Profile          bool
}

// ReadInput overrides the flag defaults with values from a YAML input file.
func (ma *ModelAdvect) ReadInput(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	ip := &InputParameters.InputParameters1D{
		PolynomialOrder: ma.N,
		Speed:           ma.Speed,
		Alpha:           ma.Alpha,
		FinalTime:       ma.FinalTime,
		NSteps:          ma.NSteps,
		BCType:          ma.BCType,
		PlotPoints:      ma.PlotPoints,
	}
	if err = ip.Parse(data); err != nil {
		return err
	}
	ip.Print()
	ma.N = ip.PolynomialOrder
	ma.Speed = ip.Speed
	ma.Alpha = ip.Alpha
	ma.FinalTime = ip.FinalTime
	ma.NSteps = ip.NSteps
	ma.BCType = ip.BCType
	ma.PlotPoints = ip.PlotPoints
	return nil
}

func RunAdvect(ma *ModelAdvect) {
	if ma.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	var (
		speed = ma.Speed
		u0    = func(x float64) float64 { return math.Sin(math.Pi * x) }
		g     = func(t float64) float64 { return math.Sin(math.Pi * (-1 - speed*t)) }
		ue    = func(x, t float64) float64 { return math.Sin(math.Pi * (x - speed*t)) }
	)
	policies, err := parseBCTypes(ma.BCType)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	x := make([]float64, ma.PlotPoints)
	floats.Span(x, -1, 1)
	for _, bc := range policies {
		c, err := advection.NewAdvection(ma.Speed, ma.Alpha, ma.FinalTime, ma.N, ma.NSteps, bc, u0, g)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		c.UE = ue
		c.LogEvery = 100
		fmt.Printf("Running %s, N = %d, v = %g, %d steps to t = %g\n",
			bc, ma.N, ma.Speed, ma.NSteps, ma.FinalTime)
		if err = c.Run(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		maxErr, err := c.MaxError(x)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		fmt.Printf("%s: max error vs analytic on %d points = %8.6f\n", bc, ma.PlotPoints, maxErr)
		if ma.Graph {
			u, _ := c.SampleSolution(x)
			fmt.Println(asciigraph.Plot(u,
				asciigraph.Height(15),
				asciigraph.Caption(fmt.Sprintf("u(x, %g), %s BC", c.Time, bc))))
		}
	}
}

func parseBCTypes(s string) ([]advection.BCType, error) {
	switch s {
	case "reset":
		return []advection.BCType{advection.HardReset}, nil
	case "penalty":
		return []advection.BCType{advection.Penalty}, nil
	case "both":
		return []advection.BCType{advection.HardReset, advection.Penalty}, nil
	}
	return nil, fmt.Errorf("unknown BC type %q: want reset, penalty or both", s)
}
