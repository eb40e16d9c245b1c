package requisite

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/specialistvlad/coursegrid/internal/alias"
	"github.com/specialistvlad/coursegrid/internal/normalize"
	"github.com/specialistvlad/coursegrid/internal/requirement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCourses = []string{
	"Cálculo I",
	"Cálculo II",
	"Álgebra",
	"Práctica I",
	"Práctica II",
	"Física I",
	"Taller de Integración Perfil Sello UV I",
	"Probabilidad y Estadística",
	"Introducción a la Programación, Algoritmos",
}

func newTestParser(t *testing.T, courses []string) *Parser {
	t.Helper()
	names := make([]string, len(courses))
	for i, c := range courses {
		names[i] = normalize.Name(c)
	}
	aliases := alias.New([]alias.Pair{
		{Alias: "TIPE I", Canonical: "Taller de Integración Perfil Sello UV I"},
		{Alias: "PROG", Canonical: "Programación Avanzada"},
	})
	p, err := NewParser(names, aliases)
	require.NoError(t, err)
	return p
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name          string
		raw           string
		expected      requirement.Set
		expectedDiags []DiagnosticKind
	}{
		{name: "empty text", raw: "", expected: nil},
		{name: "whitespace only", raw: "  \t ", expected: nil},
		{name: "none marker", raw: "Ninguno", expected: nil},
		{
			name:     "single course",
			raw:      "Cálculo I",
			expected: requirement.Set{requirement.CourseRef{Name: "calculo i"}},
		},
		{
			name:     "longer name is not split into a shorter one",
			raw:      "Cálculo II",
			expected: requirement.Set{requirement.CourseRef{Name: "calculo ii"}},
		},
		{
			name: "comma separated courses keep text order",
			raw:  "Cálculo I, Álgebra",
			expected: requirement.Set{
				requirement.CourseRef{Name: "calculo i"},
				requirement.CourseRef{Name: "algebra"},
			},
		},
		{
			name: "credits plus course",
			raw:  "270 créditos + Práctica I",
			expected: requirement.Set{
				requirement.CreditThreshold{Min: 270},
				requirement.CourseRef{Name: "practica i"},
			},
		},
		{
			name: "credits plus second practice",
			raw:  "309 créditos + Práctica II",
			expected: requirement.Set{
				requirement.CreditThreshold{Min: 309},
				requirement.CourseRef{Name: "practica ii"},
			},
		},
		{
			name:     "term completion",
			raw:      "Hasta 3° semestre aprobado",
			expected: requirement.Set{requirement.SemesterCompletionThreshold{Through: 3}},
		},
		{
			name:     "term completion with arbitrary number",
			raw:      "Hasta 12º Semestre Aprobado",
			expected: requirement.Set{requirement.SemesterCompletionThreshold{Through: 12}},
		},
		{
			name:     "term completion with ordinal suffix and article",
			raw:      "hasta el 5to semestre aprobado",
			expected: requirement.Set{requirement.SemesterCompletionThreshold{Through: 5}},
		},
		{
			name:     "alias resolves to canonical course",
			raw:      "TIPE I",
			expected: requirement.Set{requirement.CourseRef{Name: "taller de integracion perfil sello uv i"}},
		},
		{
			name:     "name containing a conjunction",
			raw:      "Probabilidad y Estadística",
			expected: requirement.Set{requirement.CourseRef{Name: "probabilidad y estadistica"}},
		},
		{
			name: "name containing a comma",
			raw:  "Introducción a la Programación, Algoritmos y Física I",
			expected: requirement.Set{
				requirement.CourseRef{Name: "introduccion a la programacion, algoritmos"},
				requirement.CourseRef{Name: "fisica i"},
			},
		},
		{
			name: "semicolons and plus signs are connectors",
			raw:  "Álgebra;Cálculo I+Física I",
			expected: requirement.Set{
				requirement.CourseRef{Name: "algebra"},
				requirement.CourseRef{Name: "calculo i"},
				requirement.CourseRef{Name: "fisica i"},
			},
		},
		{
			name:     "duplicates collapse",
			raw:      "Cálculo I; cálculo  I",
			expected: requirement.Set{requirement.CourseRef{Name: "calculo i"}},
		},
		{
			name: "unknown course blocks with diagnostic",
			raw:  "Cálculo I y Mecánica Cuántica",
			expected: requirement.Set{
				requirement.CourseRef{Name: "calculo i"},
				requirement.CourseRef{Name: "mecanica cuantica"},
			},
			expectedDiags: []DiagnosticKind{UnknownCourseReference},
		},
		{
			name:          "stale alias blocks with diagnostic",
			raw:           "PROG",
			expected:      requirement.Set{requirement.CourseRef{Name: "programacion avanzada"}},
			expectedDiags: []DiagnosticKind{UnknownCourseReference},
		},
		{
			name: "unreadable term number",
			raw:  "Hasta tercer semestre aprobado + Álgebra",
			expected: requirement.Set{
				requirement.Unsatisfiable{Clause: "hasta tercer semestre aprobado", Reason: "not a term number"},
				requirement.CourseRef{Name: "algebra"},
			},
			expectedDiags: []DiagnosticKind{MalformedRequisiteText},
		},
		{
			name: "unreadable credit amount",
			raw:  "22O créditos",
			expected: requirement.Set{
				requirement.Unsatisfiable{Clause: "22o creditos", Reason: `invalid credit amount "22o"`},
			},
			expectedDiags: []DiagnosticKind{MalformedRequisiteText},
		},
		{
			name:     "credits in english",
			raw:      "220 credits",
			expected: requirement.Set{requirement.CreditThreshold{Min: 220}},
		},
		{
			name:     "single credit in english",
			raw:      "1 credit",
			expected: requirement.Set{requirement.CreditThreshold{Min: 1}},
		},
		{
			name:     "credits with trailing qualifier",
			raw:      "220 créditos aprobados",
			expected: requirement.Set{requirement.CreditThreshold{Min: 220}},
		},
		{
			name: "approved credits plus course",
			raw:  "150 credits approved + Álgebra",
			expected: requirement.Set{
				requirement.CreditThreshold{Min: 150},
				requirement.CourseRef{Name: "algebra"},
			},
		},
		{
			name: "term and credits together",
			raw:  "Hasta 4° semestre aprobado, 180 créditos",
			expected: requirement.Set{
				requirement.SemesterCompletionThreshold{Through: 4},
				requirement.CreditThreshold{Min: 180},
			},
		},
	}

	p := newTestParser(t, testCourses)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Act ---
			res := p.Parse(tc.raw)

			// --- Assert ---
			assert.Equal(t, tc.expected, res.Requirements)

			var kinds []DiagnosticKind
			for _, d := range res.Diagnostics {
				kinds = append(kinds, d.Kind)
			}
			assert.Equal(t, tc.expectedDiags, kinds)
		})
	}
}

func TestParse_WordBoundaries(t *testing.T) {
	// Only "Práctica I" is known, so "Práctica II" must not yield it.
	p := newTestParser(t, []string{"Práctica I"})

	res := p.Parse("Práctica II")

	assert.Equal(t, requirement.Set{requirement.CourseRef{Name: "practica ii"}}, res.Requirements)
	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, UnknownCourseReference, res.Diagnostics[0].Kind)
	assert.Contains(t, res.Diagnostics[0].Message, "practica ii")
}

func TestParse_Cache(t *testing.T) {
	p := newTestParser(t, testCourses)

	first := p.Parse("270 créditos + Práctica I")
	second := p.Parse("270 créditos + Práctica I")
	p.Parse("Cálculo II")

	assert.Equal(t, first, second)
	assert.Equal(t, 2, p.CacheLen())
}

func TestNewParser_InvalidCacheSize(t *testing.T) {
	_, err := NewParser([]string{"algebra"}, nil, WithCacheSize(0))
	require.Error(t, err)
}

func TestParser_CandidatesLongestFirst(t *testing.T) {
	p := newTestParser(t, []string{"Cálculo", "Cálculo Avanzado II", "Cálculo Avanzado"})

	keys := p.Candidates()
	require.NotEmpty(t, keys)
	for i := 1; i < len(keys); i++ {
		assert.GreaterOrEqual(t, len(keys[i-1]), len(keys[i]))
	}

	res := p.Parse("Cálculo Avanzado II")
	assert.Equal(t, requirement.Set{requirement.CourseRef{Name: "calculo avanzado ii"}}, res.Requirements)
}

func TestParse_LongestMatchProperty(t *testing.T) {
	names := []string{"calculo", "calculo avanzado", "calculo avanzado ii", "fisica", "fisica moderna", "quimica"}
	p := newTestParser(t, names)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("extraction yields exactly the listed names", prop.ForAll(
		func(picks []int) bool {
			var chosen []string
			want := map[string]struct{}{}
			for _, i := range picks {
				chosen = append(chosen, names[i])
				want[names[i]] = struct{}{}
			}

			res := p.Parse(strings.Join(chosen, ", "))
			if len(res.Diagnostics) != 0 {
				return false
			}
			got := res.Requirements.CourseRefs()
			if len(got) != len(want) {
				return false
			}
			for _, name := range got {
				if _, ok := want[name]; !ok {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, len(names)-1)),
	))

	properties.TestingRun(t)
}

func TestDiagnosticKind_String(t *testing.T) {
	assert.Equal(t, "malformed-requisite-text", MalformedRequisiteText.String())
	assert.Equal(t, "unknown-course-reference", UnknownCourseReference.String())
	d := Diagnostic{Kind: UnknownCourseReference, Message: `no catalog course matches "x"`}
	assert.Equal(t, `unknown-course-reference: no catalog course matches "x"`, d.String())
}
