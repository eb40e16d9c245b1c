package yamlcatalog

import (
	"path/filepath"
	"testing"

	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_Load(t *testing.T) {
	// --- Arrange ---
	root := testutil.WriteFiles(t, map[string]string{
		"aliases.yaml": `
aliases:
  - alias: TIPE I
    canonical: Taller de Integración Perfil Sello UV I
`,
		"plan.yml": `
terms:
  - index: 1
    courses:
      - name: Cálculo I
        credits: 6
      - name: Álgebra
        credits: 6
        requisites: ~
  - index: 2
    courses:
      - name: Cálculo II
        credits: 6
        requisites: [Cálculo I, Álgebra]
courses:
  - name: Electivo
    credits: 2
    requisites: "Hasta 1° semestre aprobado"
`,
		"empty.yaml": "",
		"other.hcl":  `course "X" {}`,
	})
	ctx, _ := testutil.Context(t)

	// --- Act ---
	model, err := NewLoader().Load(ctx, root)

	// --- Assert ---
	require.NoError(t, err)
	aliases := filepath.Join(root, "aliases.yaml")
	plan := filepath.Join(root, "plan.yml")

	assert.Equal(t, []*config.AliasDefinition{
		{Alias: "TIPE I", Canonical: "Taller de Integración Perfil Sello UV I", Source: aliases},
	}, model.Aliases)
	assert.Equal(t, []*config.CourseDefinition{
		{Name: "Cálculo I", Credits: 6, Term: 1, Source: plan},
		{Name: "Álgebra", Credits: 6, Term: 1, Source: plan},
		{Name: "Cálculo II", Credits: 6, Term: 2, Requisites: "Cálculo I, Álgebra", Source: plan},
		{Name: "Electivo", Credits: 2, Requisites: "Hasta 1° semestre aprobado", Source: plan},
	}, model.Courses)
}

func TestLoader_Load_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		errContains string
	}{
		{name: "unknown key", content: "course: []\n", errContains: "failed to decode YAML file"},
		{name: "unknown course field", content: "courses:\n  - name: X\n    semester: 2\n", errContains: "failed to decode YAML file"},
		{name: "credits not a number", content: "courses:\n  - name: X\n    credits: many\n", errContains: "failed to decode YAML file"},
		{name: "requisites mapping", content: "courses:\n  - name: X\n    requisites: {a: b}\n", errContains: "requisites must be a string or a list of strings"},
		{name: "term index zero", content: "terms:\n  - index: 0\n", errContains: "term index 0 must be a positive integer"},
		{name: "invalid syntax", content: "aliases: [\n", errContains: "failed to decode YAML file"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.WriteFiles(t, map[string]string{"catalog.yaml": tc.content})
			ctx, _ := testutil.Context(t)

			model, err := NewLoader().Load(ctx, root)

			require.Error(t, err)
			assert.Nil(t, model)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}
