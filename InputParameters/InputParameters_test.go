package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	doc := `
Title: "Advection of a sine wave"
PolynomialOrder: 10
Speed: 2
Alpha: 100
FinalTime: 1
NSteps: 1000
BCType: both
PlotPoints: 100
`
	ip := &InputParameters1D{}
	assert.NoError(t, ip.Parse([]byte(doc)))
	assert.Equal(t, "Advection of a sine wave", ip.Title)
	assert.Equal(t, 10, ip.PolynomialOrder)
	assert.Equal(t, 2., ip.Speed)
	assert.Equal(t, 100., ip.Alpha)
	assert.Equal(t, 1., ip.FinalTime)
	assert.Equal(t, 1000, ip.NSteps)
	assert.Equal(t, "both", ip.BCType)
	assert.Equal(t, 100, ip.PlotPoints)
}

func TestParseDefaultsSurvive(t *testing.T) {
	// Fields absent from the document keep their prior values
	ip := &InputParameters1D{Speed: 2, NSteps: 1000}
	assert.NoError(t, ip.Parse([]byte("PolynomialOrder: 12\n")))
	assert.Equal(t, 12, ip.PolynomialOrder)
	assert.Equal(t, 2., ip.Speed)
	assert.Equal(t, 1000, ip.NSteps)
}
