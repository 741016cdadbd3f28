package graph

import "errors"

var (
	// ErrGeneration marks failures of a model call in any pipeline stage,
	// including timeouts and empty responses.
	ErrGeneration = errors.New("graph generation failed")

	// ErrParse marks model output that decoded but violates the graph
	// contract, such as duplicate node ids or out-of-range quiz answers.
	ErrParse = errors.New("graph output invalid")
)
