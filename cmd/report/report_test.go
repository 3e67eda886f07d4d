package report

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "agrolytics", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", "config.yaml", "")
	root.AddCommand(NewReportCommand())
	return root
}

func TestGenerateCommand_RequiresFlags(t *testing.T) {
	root := newRoot()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"report", "generate", "--type", "soil_analysis"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `required flag(s) "from", "to", "user" not set`)
}

func TestGenerateCommand_ListsReportTypes(t *testing.T) {
	flag := NewGenerateCommand().Flags().Lookup("type")
	require.NotNil(t, flag)
	assert.Contains(t, flag.Usage, "farm_summary")
	assert.Contains(t, flag.Usage, "financial_summary")
}

func TestGetCommand_RejectsBadID(t *testing.T) {
	root := newRoot()
	root.SetArgs([]string{"report", "get", "--id", "nope", "--user", "u1"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid report id")
}
