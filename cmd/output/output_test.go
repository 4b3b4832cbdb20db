package output

import (
	"testing"

	"github.com/centpub/centpub/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintMessagePlain(t *testing.T) {
	InitColors(true)

	msg := PrintMessage(Plain, "deployment %s", "dep-123")
	assert.Equal(t, "deployment dep-123\n", msg)

	msg = PrintMessage(Error, "failed with status %d", 409)
	assert.Equal(t, "failed with status 409\n", msg)
}

func TestPrintTable(t *testing.T) {
	InitColors(true)

	table, err := PrintTable([]string{}, [][]string{
		{"ID", "dep-123"},
		{"State", "PUBLISHED"},
	})
	require.NoError(t, err)
	assert.Contains(t, table, "dep-123")
	assert.Contains(t, table, "PUBLISHED")
}

func TestPrintDeploymentDetails(t *testing.T) {
	InitColors(true)

	deployment := &domain.Deployment{
		ID:          "dep-123",
		Name:        "com.example:demo:1.0",
		State:       domain.DeploymentStatePublished,
		PackageURLs: []string{"pkg:maven/com.example/demo@1.0"},
	}

	details, err := PrintDeploymentDetails(deployment)
	require.NoError(t, err)
	assert.Contains(t, details, "dep-123")
	assert.Contains(t, details, "com.example:demo:1.0")
	assert.Contains(t, details, "PUBLISHED")
	assert.Contains(t, details, "Package URLs:")
	assert.Contains(t, details, "pkg:maven/com.example/demo@1.0")
	assert.NotContains(t, details, "Errors:")
}

func TestPrintDeploymentDetailsFailed(t *testing.T) {
	InitColors(true)

	deployment := &domain.Deployment{
		ID:     "dep-123",
		State:  domain.DeploymentStateFailed,
		Errors: []string{"missing sources jar"},
	}

	details, err := PrintDeploymentDetails(deployment)
	require.NoError(t, err)
	assert.Contains(t, details, "FAILED")
	assert.Contains(t, details, "Errors:")
	assert.Contains(t, details, "missing sources jar")
	assert.NotContains(t, details, "Name")
	assert.NotContains(t, details, "Package URLs:")
}

func TestNoColorFlag(t *testing.T) {
	flag := &noColorFlag{}
	assert.False(t, flag.IsSet())
	assert.Equal(t, "false", flag.String())
	assert.Equal(t, "bool", flag.Type())
	assert.True(t, flag.IsBoolFlag())

	require.NoError(t, flag.Set("true"))
	assert.True(t, flag.IsSet())
	assert.Equal(t, "true", flag.String())
}
