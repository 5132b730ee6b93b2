package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title           string  `yaml:"Title"`
	PolynomialOrder int     `yaml:"PolynomialOrder"`
	Speed           float64 `yaml:"Speed"`
	Alpha           float64 `yaml:"Alpha"` // Penalty gain, only used by the penalty BC
	FinalTime       float64 `yaml:"FinalTime"`
	NSteps          int     `yaml:"NSteps"`
	BCType          string  `yaml:"BCType"` // "reset", "penalty" or "both"
	PlotPoints      int     `yaml:"PlotPoints"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Printf("%8.5f\t\t= Speed\n", ip.Speed)
	fmt.Printf("%8.5f\t\t= Alpha\n", ip.Alpha)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%d]\t\t\t= NSteps\n", ip.NSteps)
	fmt.Printf("[%s]\t\t\t= BC Type\n", ip.BCType)
	fmt.Printf("[%d]\t\t\t= Plot Points\n", ip.PlotPoints)
}
