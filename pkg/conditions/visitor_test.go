package conditions

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWalk_Order(t *testing.T) {
	conds := inputConditions(t, constant(t, "c", "True"), 3)
	inner := MustOrConjunction(conds[0], conds[1])
	root := MustAndConjunction(inner, conds[2])

	var visited []string
	err := Walk(root, VisitorFuncs{
		Condition: func(c *Condition) error {
			visited = append(visited, c.Parent().Name())
			return nil
		},
		Conjunction: func(c *Conjunction) error {
			visited = append(visited, string(c.Operator()))
			return nil
		},
	})
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}

	want := []string{"&&", "||", "input1", "input2", "input3"}
	if diff := cmp.Diff(want, visited); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalk_StopsOnError(t *testing.T) {
	conds := inputConditions(t, constant(t, "c", "True"), 3)
	root := MustAndConjunction(conds[0], conds[1], conds[2])
	stop := errors.New("stop")

	count := 0
	err := Walk(root, VisitorFuncs{
		Condition: func(c *Condition) error {
			count++
			if c.Parent().Name() == "input2" {
				return stop
			}
			return nil
		},
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want %v", err, stop)
	}
	if count != 2 {
		t.Errorf("visited %d conditions, want 2", count)
	}
}

func TestDepth(t *testing.T) {
	conds := inputConditions(t, constant(t, "c", "True"), 4)

	tests := []struct {
		name string
		root Component
		want int
	}{
		{"condition", conds[0], 1},
		{"flat", MustAndConjunction(conds[0], conds[1]), 2},
		{"one side deeper", MustAndConjunction(conds[0], MustOrConjunction(conds[1], MustAndConjunction(conds[2], conds[3]))), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Depth(tt.root); got != tt.want {
				t.Errorf("Depth() = %d, want %d", got, tt.want)
			}
		})
	}
}
