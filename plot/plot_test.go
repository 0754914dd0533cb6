package plot

import (
	"bytes"
	"strings"
	"testing"

	moea "github.com/andresliszt/moo-go"
)

func TestScatterRendersHTMLForTwoObjectives(t *testing.T) {
	pop := moea.NewPopulation([][]float64{{0, 0}, {1, 1}})
	pop.Fitness = [][]float64{{0, 1}, {1, 0}}

	var buf bytes.Buffer
	err := Scatter(pop, [][]float64{{0, 1}, {0.5, 0.29}, {1, 0}}, "test front", &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "<html") {
		t.Errorf("expected rendered output to contain an HTML document")
	}
}

func TestScatterRejectsWrongObjectiveCount(t *testing.T) {
	pop := moea.NewPopulation([][]float64{{0, 0, 0}})
	pop.Fitness = [][]float64{{0, 1, 2}}

	var buf bytes.Buffer
	err := Scatter(pop, nil, "test", &buf)
	if err == nil {
		t.Fatalf("expected an error for a 3-objective population")
	}
}
