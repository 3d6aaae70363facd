package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	fileInput := []byte(`
Title: Test Case
RelOrder: 2
VariableOrder: true
NoWirebasket: true
DefinedOn: [1, 3]
IntegrationOrder: 8
Mesh:
  Type: trigplate
  Nx: 4
  Ny: 2
  Levels: 2
`)
	var input InputParametersSurface
	require.NoError(t, input.Parse(fileInput))
	assert.Equal(t, "Test Case", input.Title)
	assert.Nil(t, input.Order)
	require.NotNil(t, input.RelOrder)
	assert.Equal(t, 2, *input.RelOrder)
	assert.Equal(t, []int{1, 3}, input.DefinedOn)
	assert.Equal(t, MeshParameters{Type: "trigplate", Nx: 4, Ny: 2, Levels: 2}, input.Mesh)
	assert.Equal(t, 8, input.IntegrationOrder)

	flags := input.Flags()
	assert.Nil(t, flags.Order)
	assert.Equal(t, 2, *flags.RelOrder)
	assert.True(t, flags.VariableOrder)
	assert.True(t, flags.NoWirebasket)
	assert.Equal(t, []int{1, 3}, flags.DefinedOn)
	input.Print()

	assert.Error(t, input.Parse([]byte("Order: [1, 2")))
}
