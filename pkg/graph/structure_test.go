package graph

import (
	"errors"
	"testing"
)

func TestValidateSkeleton_DuplicateIDsRejected(t *testing.T) {
	s := &Skeleton{
		Nodes: []SkeletonNode{
			{ID: 1, Label: "Python", Weight: 8},
			{ID: 1, Label: "Python again", Weight: 3},
		},
	}

	err := validateSkeleton(s)
	if !errors.Is(err, ErrParse) {
		t.Fatalf("validateSkeleton() = %v, want ErrParse", err)
	}
}

func TestValidateSkeleton_DropsDanglingLinks(t *testing.T) {
	s := &Skeleton{
		Nodes: []SkeletonNode{
			{ID: 1, Label: "Python", Weight: 8},
			{ID: 2, Label: "Django", Weight: 5},
		},
		Links: []Link{
			{Source: 1, Target: 2, Weight: 0.8, Relation: "is used by"},
			{Source: 1, Target: 42, Weight: 0.4, Relation: "mentions"},
			{Source: 42, Target: 2, Weight: 0.4, Relation: "mentions"},
		},
	}

	if err := validateSkeleton(s); err != nil {
		t.Fatalf("validateSkeleton() failed: %v", err)
	}
	if len(s.Links) != 1 {
		t.Fatalf("validateSkeleton() kept %d links, want 1", len(s.Links))
	}
	if s.Links[0].Target != 2 {
		t.Fatalf("validateSkeleton() kept wrong link: %+v", s.Links[0])
	}
}
