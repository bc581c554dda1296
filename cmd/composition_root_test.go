package cmd_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"shipping/cmd"
	"shipping/internal/adapters/in/cli"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCompositionRoot(t *testing.T) {
	cfg, err := cmd.LoadConfig()
	require.NoError(t, err)

	root, err := cmd.NewCompositionRoot(cfg, zap.NewNop(), prometheus.NewRegistry())
	require.NoError(t, err)

	t.Run("should serve the API", func(t *testing.T) {
		e, err := root.CreateHTTPRouter()
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/conversions?amount=1&from=in&to=cm", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"to":"centimetre"`)
	})

	t.Run("should run the CLI", func(t *testing.T) {
		out := &bytes.Buffer{}
		command := cli.NewRootCommand(root.CreateCLIHandlers(), out)
		command.SetArgs([]string{"units", "mass"})

		require.NoError(t, command.ExecuteContext(t.Context()))
		assert.Contains(t, out.String(), "kilogram")
	})

	t.Run("should start and stop the jobs", func(t *testing.T) {
		jm := root.CreateJobManager()

		require.NoError(t, jm.StartAll())
		jm.StopAll()
	})
}
