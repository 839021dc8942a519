package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrpbone/Diabetes-Predictor/pkg/logging"
)

func TestNewApp(t *testing.T) {
	logging.SetDefaultCLILogger("error")

	app := newApp()
	assert.NotNil(t, app)
	assert.Equal(t, appName, app.Name)

	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.Contains(t, names, "predict")
	assert.Contains(t, names, "stats")
	assert.Contains(t, names, "model")
	assert.Contains(t, names, "history")
	assert.Contains(t, names, "server")
}
