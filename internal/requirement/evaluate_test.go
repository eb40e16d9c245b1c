package requirement

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

// termRoster is a fixed term layout used across the tests.
type termRoster map[int][]string

func (r termRoster) CoursesThroughTerm(n int) []string {
	var names []string
	for term := 1; term <= n; term++ {
		names = append(names, r[term]...)
	}
	return names
}

var roster = termRoster{
	1: {"calculo i", "algebra"},
	2: {"calculo ii", "fisica i"},
	3: {"calculo iii"},
}

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		name     string
		set      Set
		approved []string
		credits  int
		expected bool
	}{
		{name: "empty set always holds", set: nil, expected: true},
		{
			name:     "course ref met",
			set:      Set{CourseRef{Name: "calculo i"}},
			approved: []string{"calculo i"},
			expected: true,
		},
		{
			name:     "course ref unmet",
			set:      Set{CourseRef{Name: "calculo ii"}},
			approved: []string{"calculo i"},
			expected: false,
		},
		{name: "credits below threshold", set: Set{CreditThreshold{Min: 220}}, credits: 219, expected: false},
		{name: "credits at threshold", set: Set{CreditThreshold{Min: 220}}, credits: 220, expected: true},
		{
			name:     "term completion missing one course",
			set:      Set{SemesterCompletionThreshold{Through: 2}},
			approved: []string{"calculo i", "algebra", "calculo ii"},
			expected: false,
		},
		{
			name:     "term completion ignores later terms",
			set:      Set{SemesterCompletionThreshold{Through: 2}},
			approved: []string{"calculo i", "algebra", "calculo ii", "fisica i"},
			expected: true,
		},
		{
			name:     "conjunction needs every member",
			set:      Set{CreditThreshold{Min: 10}, CourseRef{Name: "algebra"}},
			approved: []string{"algebra"},
			credits:  9,
			expected: false,
		},
		{
			name:     "unsatisfiable never holds",
			set:      Set{Unsatisfiable{Clause: "hasta tercer semestre aprobado"}},
			approved: []string{"calculo i", "algebra", "calculo ii", "fisica i", "calculo iii"},
			credits:  1000,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			standing := NewStanding(tc.approved, tc.credits, roster)
			assert.Equal(t, tc.expected, Evaluate(tc.set, standing))
		})
	}
}

func TestUnmet_PreservesOrder(t *testing.T) {
	set := Set{
		SemesterCompletionThreshold{Through: 1},
		CreditThreshold{Min: 30},
		CourseRef{Name: "fisica i"},
		CourseRef{Name: "algebra"},
	}
	standing := NewStanding([]string{"algebra"}, 12, roster)

	unmet := Unmet(set, standing)
	assert.Equal(t, []Requirement{
		SemesterCompletionThreshold{Through: 1},
		CreditThreshold{Min: 30},
		CourseRef{Name: "fisica i"},
	}, unmet)
}

func TestStanding_NilRoster(t *testing.T) {
	standing := NewStanding(nil, 0, nil)
	assert.True(t, standing.AllApprovedThroughTerm(5))
}

func TestSet_CourseRefs(t *testing.T) {
	set := Set{CreditThreshold{Min: 5}, CourseRef{Name: "a"}, CourseRef{Name: "b"}}
	assert.Equal(t, []string{"a", "b"}, set.CourseRefs())
	assert.False(t, set.IsEmpty())
	assert.True(t, Set{}.IsEmpty())
}

func TestRequirement_String(t *testing.T) {
	assert.Equal(t, `course "calculo i"`, CourseRef{Name: "calculo i"}.String())
	assert.Equal(t, "220 credits", CreditThreshold{Min: 220}.String())
	assert.Equal(t, "terms 1-3 approved", SemesterCompletionThreshold{Through: 3}.String())
	assert.Equal(t, KindUnsatisfiable, Unsatisfiable{}.Kind())
	assert.Equal(t, "semester", KindSemesterCompletion.String())
}

// universe lists every course name the monotonicity property draws from.
var universe = []string{"calculo i", "algebra", "calculo ii", "fisica i", "calculo iii", "ghost"}

func pick(mask []bool) []string {
	var names []string
	for i, on := range mask {
		if on && i < len(universe) {
			names = append(names, universe[i])
		}
	}
	return names
}

func buildSet(codes []int) Set {
	var set Set
	for _, code := range codes {
		switch code % 3 {
		case 0:
			set = append(set, CourseRef{Name: universe[code%len(universe)]})
		case 1:
			set = append(set, CreditThreshold{Min: code})
		case 2:
			set = append(set, SemesterCompletionThreshold{Through: 1 + code%3})
		}
	}
	return set
}

func TestEvaluate_Monotonic(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("growing approvals and credits never breaks a satisfied set", prop.ForAll(
		func(codes []int, base []bool, extra []bool, credits int, bonus int) bool {
			set := buildSet(codes)

			grown := make([]bool, len(base))
			for i := range base {
				grown[i] = base[i] || (i < len(extra) && extra[i])
			}

			before := Evaluate(set, NewStanding(pick(base), credits, roster))
			after := Evaluate(set, NewStanding(pick(grown), credits+bonus, roster))
			return !before || after
		},
		gen.SliceOf(gen.IntRange(0, 60)),
		gen.SliceOfN(len(universe), gen.Bool()),
		gen.SliceOfN(len(universe), gen.Bool()),
		gen.IntRange(0, 60),
		gen.IntRange(0, 60),
	))

	properties.TestingRun(t)
}

func ExampleEvaluate() {
	set := Set{CreditThreshold{Min: 220}, CourseRef{Name: "practica i"}}
	standing := NewStanding([]string{"practica i"}, 219, nil)
	fmt.Println(Evaluate(set, standing))
	standing.Credits = 220
	fmt.Println(Evaluate(set, standing))
	// Output:
	// false
	// true
}
