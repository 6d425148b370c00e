package cycle

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Init()
	os.Exit(m.Run())
}

func runCycle(t *testing.T, args []string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetErr(&out)
	Cmd.SetArgs(nil)

	require.NoError(t, Cmd.ParseFlags(args))
	err := Cmd.RunE(Cmd, nil)
	return out.String(), err
}

func TestCycleCommandRollback(t *testing.T) {
	out, err := runCycle(t, []string{"--date", "2025-01-03", "--salary-credit-day", "5"})
	require.NoError(t, err)
	assert.Contains(t, out, "2024-12")
}

func TestCycleCommandSameMonth(t *testing.T) {
	out, err := runCycle(t, []string{"--date", "2025-01-10", "--salary-credit-day", "5"})
	require.NoError(t, err)
	assert.Contains(t, out, "2025-01")
}

func TestCycleCommandBadDate(t *testing.T) {
	_, err := runCycle(t, []string{"--date", "garbage", "--salary-credit-day", "5"})
	require.Error(t, err)
}

func TestCycleCommandBadCreditDay(t *testing.T) {
	_, err := runCycle(t, []string{"--date", "2025-01-10", "--salary-credit-day", "40"})
	require.Error(t, err)
}
