package graph

import "strconv"

// Merge combines the skeleton with the enrichment outputs into the final
// graph. Nodes missing from either mapping degrade gracefully: summary
// defaults to the empty string, quiz to an empty list. Links pass through
// unchanged.
func Merge(
	skeleton *Skeleton,
	summaries map[string]string,
	quizzes map[string][]QuizItem,
) *Graph {
	nodes := make([]Node, 0, len(skeleton.Nodes))
	for _, sn := range skeleton.Nodes {
		key := strconv.Itoa(sn.ID)

		quiz := quizzes[key]
		if quiz == nil {
			quiz = make([]QuizItem, 0)
		}

		nodes = append(nodes, Node{
			ID:      sn.ID,
			Label:   sn.Label,
			Weight:  sn.Weight,
			Summary: summaries[key],
			Quiz:    quiz,
		})
	}

	links := make([]Link, 0, len(skeleton.Links))
	links = append(links, skeleton.Links...)

	return &Graph{
		Nodes: nodes,
		Links: links,
	}
}
