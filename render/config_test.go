package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultViewerWrapper(t *testing.T) {
	con := &DefaultViewerWrapper().Viewer

	assert.True(t, con.ValidWindow())
	assert.True(t, con.ValidDisplacementRange())
	// Shape has no sensible default and must come from the file.
	assert.False(t, con.ValidShape())
}

func TestReadViewerConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.txt")
	text := `[Viewer]
Shape = tesseract
Width = 800
Height = 400
Displacement = 0.25
`
	require.NoError(t, os.WriteFile(path, []byte(text), 0644))

	con, err := ReadViewerConfig(path)
	require.NoError(t, err)

	assert.True(t, con.ValidShape())
	assert.Equal(t, "tesseract", con.Shape)
	assert.Equal(t, 800, con.Width)
	assert.Equal(t, 400, con.Height)
	assert.Equal(t, 0.25, con.Displacement)
	// Unset values keep their defaults.
	assert.Equal(t, -3.0, con.MinDisplacement)
	assert.Equal(t, 0.005, con.RotationSpeed)
}

func TestExampleViewerFileParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "example.txt")
	require.NoError(t, os.WriteFile(path, []byte(ExampleViewerFile), 0644))

	con, err := ReadViewerConfig(path)
	require.NoError(t, err)
	assert.True(t, con.ValidShape())
	assert.True(t, con.ValidWindow())
	assert.True(t, con.ValidDisplacementRange())
}

func TestViewerConfigValidation(t *testing.T) {
	con := &DefaultViewerWrapper().Viewer

	con.Shape = "cell7"
	assert.False(t, con.ValidShape())
	con.Shape = "cell24"
	assert.True(t, con.ValidShape())

	con.Width = 0
	assert.False(t, con.ValidWindow())

	con.Width = 600
	con.Displacement = 10
	assert.False(t, con.ValidDisplacementRange())
}
