package graph

import (
	"errors"
	"testing"
)

func validTestGraph() Graph {
	return Graph{
		Nodes: []Node{
			{ID: 1, Label: "Python", Weight: 8, Quiz: []QuizItem{}},
			{ID: 2, Label: "Django", Weight: 5, Quiz: []QuizItem{
				{Question: "Q", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 3},
			}},
		},
		Links: []Link{
			{Source: 1, Target: 2, Weight: 0.8, Relation: "is used by"},
		},
	}
}

func TestGraphValidate_OK(t *testing.T) {
	g := validTestGraph()
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestGraphValidate_DuplicateNodeID(t *testing.T) {
	g := validTestGraph()
	g.Nodes = append(g.Nodes, Node{ID: 1, Label: "Duplicate"})

	err := g.Validate()
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Validate() = %v, want ErrParse for duplicate id", err)
	}
}

func TestGraphValidate_DanglingLink(t *testing.T) {
	g := validTestGraph()
	g.Links = append(g.Links, Link{Source: 1, Target: 99, Weight: 0.5, Relation: "mentions"})

	err := g.Validate()
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Validate() = %v, want ErrParse for unknown link target", err)
	}
}

func TestGraphValidate_AnswerIndexOutOfRange(t *testing.T) {
	g := validTestGraph()
	g.Nodes[1].Quiz[0].AnswerIndex = 4

	err := g.Validate()
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Validate() = %v, want ErrParse for out-of-range answer index", err)
	}
}

func TestGraphValidate_TooManyQuizItems(t *testing.T) {
	g := validTestGraph()
	item := g.Nodes[1].Quiz[0]
	for len(g.Nodes[1].Quiz) <= maxQuizItems {
		g.Nodes[1].Quiz = append(g.Nodes[1].Quiz, item)
	}

	err := g.Validate()
	if !errors.Is(err, ErrParse) {
		t.Fatalf("Validate() = %v, want ErrParse for oversized quiz", err)
	}
}

func TestGraphNormalize_FillsNilSlices(t *testing.T) {
	g := Graph{Nodes: []Node{{ID: 1, Label: "Python", Weight: 8}}}

	g.Normalize()

	if g.Links == nil {
		t.Fatalf("Normalize() left links nil")
	}
	if g.Nodes[0].Quiz == nil {
		t.Fatalf("Normalize() left node quiz nil")
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("normalized graph should be valid: %v", err)
	}
}
