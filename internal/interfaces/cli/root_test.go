package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appads "github.com/matgen-io/surfgen/internal/application/adsorption"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommand_ListsSubcommands(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "build")
	assert.Contains(t, out, "analyze")
}

func TestBuildCmd_TableOutput(t *testing.T) {
	out, err := execute(t, "build", "Au(111)", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Au (111)")
	assert.Contains(t, out, "atoms: 72")
	assert.Contains(t, out, "Lattice vectors")
}

func TestBuildCmd_AtomListing(t *testing.T) {
	out, err := execute(t, "build", "Cu(100)", "--no-color", "--atoms")
	require.NoError(t, err)

	assert.Contains(t, out, "atoms: 64")
	assert.Contains(t, out, "ELEMENT")
}

func TestBuildCmd_RequiresQuery(t *testing.T) {
	_, err := execute(t, "build")
	assert.Error(t, err)
}

func TestAnalyzeCmd_JSONIsReproducible(t *testing.T) {
	first, err := execute(t, "analyze", "Au(111)", "--adsorbate", "CO", "--seed", "42", "-o", "json", "--no-color")
	require.NoError(t, err)
	second, err := execute(t, "analyze", "Au(111)", "--adsorbate", "CO", "--seed", "42", "-o", "json", "--no-color")
	require.NoError(t, err)

	var a, b appads.AnalyzeResponse
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))

	require.NotEmpty(t, a.Sites)
	assert.LessOrEqual(t, len(a.Sites), 8)
	assert.Equal(t, a.Sites, b.Sites)
	for i := 1; i < len(a.Sites); i++ {
		assert.LessOrEqual(t, a.Sites[i-1].Energy, a.Sites[i].Energy)
	}
}

func TestAnalyzeCmd_RequiresAdsorbate(t *testing.T) {
	_, err := execute(t, "analyze", "Au(111)")
	assert.Error(t, err)
}
