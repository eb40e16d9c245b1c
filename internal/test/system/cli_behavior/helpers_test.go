package system

import (
	"testing"

	"github.com/specialistvlad/coursegrid/internal/app"
	"github.com/specialistvlad/coursegrid/internal/testutil"
	"github.com/stretchr/testify/require"
)

// setupAppTest creates an app over the given catalog paths with debug logs
// captured in the returned buffer.
func setupAppTest(t *testing.T, paths []string, approve ...string) (*app.App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()
	cfg, err := app.NewConfig(app.Config{
		CatalogPaths: paths,
		Approve:      approve,
		LogLevel:     "debug",
		LogFormat:    "text",
		CacheSize:    64,
	})
	require.NoError(t, err)

	out, logs := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	testApp, err := app.NewApp(out, logs, cfg)
	require.NoError(t, err)
	return testApp, out, logs
}
