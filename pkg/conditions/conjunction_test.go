package conditions

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// inputConditions builds "<child> | inputN == 1" for N = 1..n.
func inputConditions(t *testing.T, child Hyperparameter, n int) []*Condition {
	t.Helper()
	conds := make([]*Condition, n)
	for i := range conds {
		input := categorical(t, "input"+string(rune('1'+i)), 0, 1)
		conds[i] = MustEqualsCondition(child, input, 1)
	}
	return conds
}

func names(hps []Hyperparameter) []string {
	out := make([]string, len(hps))
	for i, hp := range hps {
		out[i] = hp.Name()
	}
	return out
}

func TestConjunction_And(t *testing.T) {
	conds := inputConditions(t, constant(t, "And", "True"), 3)

	if _, err := NewAndConjunction(conds[0]); !errors.Is(err, ErrArity) {
		t.Errorf("NewAndConjunction(single) error = %v, want ErrArity", err)
	}

	andconj1 := MustAndConjunction(conds[0], conds[1])
	andconj1Copy := MustAndConjunction(conds[0], conds[1])
	if !andconj1.Equal(andconj1Copy) {
		t.Errorf("%s should equal %s", andconj1, andconj1Copy)
	}
	if andconj1.Hash() != andconj1Copy.Hash() {
		t.Error("Hash() differs for equal conjunctions")
	}

	andconj2 := MustAndConjunction(conds[1], conds[2])
	if andconj1.Equal(andconj2) {
		t.Errorf("%s should not equal %s", andconj1, andconj2)
	}

	andconj3 := MustAndConjunction(conds[0], conds[1], conds[2])
	want := "(And | input1 == 1 && And | input2 == 1 && And | input3 == 1)"
	if got := andconj3.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if andconj1.Equal(andconj3) {
		t.Errorf("%s should not equal %s", andconj1, andconj3)
	}
	if andconj1.Equal("String") {
		t.Error("conjunction should not equal a string")
	}
}

func TestConjunction_Or(t *testing.T) {
	conds := inputConditions(t, constant(t, "Or", "True"), 3)

	if _, err := NewOrConjunction(conds[0]); !errors.Is(err, ErrArity) {
		t.Errorf("NewOrConjunction(single) error = %v, want ErrArity", err)
	}

	orconj1 := MustOrConjunction(conds[0], conds[1])
	orconj1Copy := MustOrConjunction(conds[0], conds[1])
	if !orconj1.Equal(orconj1Copy) {
		t.Errorf("%s should equal %s", orconj1, orconj1Copy)
	}

	orconj2 := MustOrConjunction(conds[1], conds[2])
	if orconj1.Equal(orconj2) {
		t.Errorf("%s should not equal %s", orconj1, orconj2)
	}

	orconj3 := MustOrConjunction(conds[0], conds[1], conds[2])
	want := "(Or | input1 == 1 || Or | input2 == 1 || Or | input3 == 1)"
	if got := orconj3.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if orconj1.Equal(MustAndConjunction(conds[0], conds[1])) {
		t.Error("OR conjunction should not equal AND conjunction with the same components")
	}
}

func TestConjunction_Nested(t *testing.T) {
	conds := inputConditions(t, constant(t, "AND", "True"), 5)

	conj1 := MustAndConjunction(conds[0], conds[1])
	conj2 := MustOrConjunction(conj1, conds[2])
	conj3 := MustAndConjunction(conj2, conds[3], conds[4])

	want := "(((AND | input1 == 1 && AND | input2 == 1) || AND | input3 == 1) && AND | input4 == 1 && AND | input5 == 1)"
	if got := conj3.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	leaves := conj3.DescendantLiteralConditions()
	if len(leaves) != 5 {
		t.Fatalf("len(DescendantLiteralConditions()) = %d, want 5", len(leaves))
	}
	for i, leaf := range leaves {
		if !leaf.Equal(conds[i]) {
			t.Errorf("leaf %d = %s, want %s", i, leaf, conds[i])
		}
	}

	if got := Depth(conj3); got != 3 {
		t.Errorf("Depth() = %d, want 3", got)
	}

	t.Run("same operator is not flattened", func(t *testing.T) {
		inner := MustAndConjunction(conds[0], conds[1])
		outer := MustAndConjunction(inner, conds[2])
		want := "((AND | input1 == 1 && AND | input2 == 1) && AND | input3 == 1)"
		if got := outer.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
		flat := MustAndConjunction(conds[0], conds[1], conds[2])
		if outer.Equal(flat) {
			t.Error("nested conjunction should not equal its flattened form")
		}
	})
}

func TestConjunction_SameChild(t *testing.T) {
	hp1 := categorical(t, "input1", 0, 1)
	hp2 := categorical(t, "input2", 0, 1)
	hp3 := categorical(t, "input3", 0, 1)
	hp4 := categorical(t, "input4", 0, 1)
	hp5 := categorical(t, "input5", 0, 1)
	hp6 := constant(t, "AND", "True")

	cond1 := MustEqualsCondition(hp1, hp2, 1)
	cond2 := MustEqualsCondition(hp1, hp3, 1)
	cond3 := MustEqualsCondition(hp1, hp4, 1)
	cond4 := MustEqualsCondition(hp6, hp4, 1)
	cond5 := MustEqualsCondition(hp6, hp5, 1)

	if _, err := NewAndConjunction(cond1, cond2, cond3); err != nil {
		t.Errorf("NewAndConjunction(cond1, cond2, cond3) failed: %v", err)
	}
	if _, err := NewAndConjunction(cond4, cond5); err != nil {
		t.Errorf("NewAndConjunction(cond4, cond5) failed: %v", err)
	}

	_, err := NewAndConjunction(cond1, cond4)
	if !errors.Is(err, ErrStructural) {
		t.Fatalf("NewAndConjunction(cond1, cond4) error = %v, want ErrStructural", err)
	}
	if !strings.Contains(err.Error(), "all conjunctions and conditions must have the same child") {
		t.Errorf("error = %q", err)
	}

	t.Run("nested mismatch", func(t *testing.T) {
		inner := MustOrConjunction(cond4, cond5)
		if _, err := NewAndConjunction(inner, cond1); !errors.Is(err, ErrStructural) {
			t.Errorf("error = %v, want ErrStructural", err)
		}
	})
}

func TestConjunction_InvalidComponents(t *testing.T) {
	conds := inputConditions(t, constant(t, "And", "True"), 2)
	var nilConjunction *Conjunction

	tests := []struct {
		name       string
		components []Component
		wantErr    error
	}{
		{"no components", nil, ErrArity},
		{"nil component", []Component{conds[0], nil}, ErrTypeConstraint},
		{"typed nil component", []Component{nilConjunction, conds[1]}, ErrTypeConstraint},
		{"single nil", []Component{nil}, ErrTypeConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conj, err := NewAndConjunction(tt.components...)
			if conj != nil {
				t.Errorf("NewAndConjunction() returned %v alongside error", conj)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestConjunction_Evaluate(t *testing.T) {
	conds := inputConditions(t, constant(t, "child", "True"), 3)
	and := MustAndConjunction(conds[0], conds[1])
	or := MustOrConjunction(conds[0], conds[1])
	nested := MustOrConjunction(and, conds[2])

	tests := []struct {
		name       string
		assignment Assignment
		wantAnd    bool
		wantOr     bool
		wantNested bool
	}{
		{"none", Assignment{"input1": 0, "input2": 0, "input3": 0}, false, false, false},
		{"first", Assignment{"input1": 1, "input2": 0, "input3": 0}, false, true, false},
		{"second", Assignment{"input1": 0, "input2": 1, "input3": 0}, false, true, false},
		{"both", Assignment{"input1": 1, "input2": 1, "input3": 0}, true, true, true},
		{"third only", Assignment{"input1": 0, "input2": 0, "input3": 1}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := and.Evaluate(tt.assignment); got != tt.wantAnd {
				t.Errorf("AND Evaluate() = %v, want %v", got, tt.wantAnd)
			}
			if got := or.Evaluate(tt.assignment); got != tt.wantOr {
				t.Errorf("OR Evaluate() = %v, want %v", got, tt.wantOr)
			}
			if got := nested.Evaluate(tt.assignment); got != tt.wantNested {
				t.Errorf("nested Evaluate() = %v, want %v", got, tt.wantNested)
			}
		})
	}
}

func TestConjunction_ChildrenAndParents(t *testing.T) {
	child := constant(t, "child", "True")
	conds := inputConditions(t, child, 3)
	conj := MustAndConjunction(MustOrConjunction(conds[0], conds[1]), conds[2], conds[0])

	if diff := cmp.Diff([]string{"child", "child", "child"}, names(conj.Children())); diff != "" {
		t.Errorf("Children() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"input1", "input2", "input3"}, names(conj.Parents())); diff != "" {
		t.Errorf("Parents() mismatch (-want +got):\n%s", diff)
	}
	if got := conj.Child().Name(); got != "child" {
		t.Errorf("Child() = %q, want %q", got, "child")
	}
	if got := len(conj.Components()); got != 3 {
		t.Errorf("len(Components()) = %d, want 3", got)
	}
	if conj.Operator() != OperatorAnd {
		t.Errorf("Operator() = %q, want %q", conj.Operator(), OperatorAnd)
	}
}
