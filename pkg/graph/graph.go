package graph

import "fmt"

// Graph is the terminal artifact of the extraction pipeline: the concepts
// found in a transcript together with their relationships. Once merged a
// graph is immutable; re-storing under the same fingerprint replaces it
// wholesale.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// Node is a single concept extracted from a transcript. IDs are assigned
// by the model and are unique within a graph but not necessarily
// sequential or gapless.
type Node struct {
	ID      int        `json:"id"`
	Label   string     `json:"label"`
	Weight  int        `json:"weight"`
	Summary string     `json:"summary"`
	Quiz    []QuizItem `json:"quiz"`
}

// maxQuizItems bounds the number of questions attached to a single node.
const maxQuizItems = 5

// QuizItem is a single multiple-choice question attached to a node.
// AnswerIndex points into Options.
type QuizItem struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
}

// Link is a directed, weighted relationship between two nodes. Source and
// Target reference Node.ID values. Weight is in the 0.1-1.0 range and
// Relation is a short verb phrase.
type Link struct {
	Source   int     `json:"source"`
	Target   int     `json:"target"`
	Weight   float64 `json:"weight"`
	Relation string  `json:"relation"`
}

// Validate checks the structural invariants of a graph: node IDs must be
// unique, every link must reference existing nodes, quizzes hold at most
// maxQuizItems questions, and every quiz answer index must point at one of
// its options.
func (g *Graph) Validate() error {
	ids := make(map[int]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, ok := ids[n.ID]; ok {
			return fmt.Errorf("%w: duplicate node id %d", ErrParse, n.ID)
		}
		ids[n.ID] = struct{}{}

		if len(n.Quiz) > maxQuizItems {
			return fmt.Errorf("%w: node %d has %d quiz items (max %d)",
				ErrParse, n.ID, len(n.Quiz), maxQuizItems)
		}

		for i, q := range n.Quiz {
			if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
				return fmt.Errorf(
					"%w: node %d quiz %d answer index %d out of range (%d options)",
					ErrParse, n.ID, i, q.AnswerIndex, len(q.Options),
				)
			}
		}
	}

	for _, l := range g.Links {
		if _, ok := ids[l.Source]; !ok {
			return fmt.Errorf("%w: link source %d references unknown node", ErrParse, l.Source)
		}
		if _, ok := ids[l.Target]; !ok {
			return fmt.Errorf("%w: link target %d references unknown node", ErrParse, l.Target)
		}
	}

	return nil
}

// Normalize replaces nil Quiz and Links slices with empty ones so encoded
// graphs always serialize those fields as JSON arrays, never null.
func (g *Graph) Normalize() {
	if g.Links == nil {
		g.Links = make([]Link, 0)
	}
	for i := range g.Nodes {
		if g.Nodes[i].Quiz == nil {
			g.Nodes[i].Quiz = make([]QuizItem, 0)
		}
	}
}

// SkeletonNode is a node as returned by the structure stage, before
// summaries and quizzes are attached.
type SkeletonNode struct {
	ID     int    `json:"id" jsonschema_description:"Unique integer id for the concept"`
	Label  string `json:"label" jsonschema_description:"Short name of the concept"`
	Weight int    `json:"weight" jsonschema_description:"Importance of the concept from 1 to 10"`
}

// Skeleton is the node/link structure produced by the structure stage.
// Enrichment and merge turn it into a full Graph.
type Skeleton struct {
	Nodes []SkeletonNode `json:"nodes" jsonschema_description:"Concepts identified in the transcript"`
	Links []Link         `json:"links" jsonschema_description:"Directed relationships between concepts"`
}
