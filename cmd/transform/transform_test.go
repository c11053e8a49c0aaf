package transform_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"fjacquet/budget-prep/cmd/root"
	"fjacquet/budget-prep/cmd/transform"

	"github.com/PaesslerAG/jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (int, string) {
	t.Helper()
	t.Cleanup(root.ResetFlags)
	cmd := root.NewCommand()
	cmd.AddCommand(transform.NewCommand())
	cmd.SetArgs(append([]string{"transform"}, args...))
	cmd.SetIn(strings.NewReader(stdin))

	var stdout, stderr bytes.Buffer
	code := root.Execute(cmd, &stdout, &stderr)
	return code, stdout.String()
}

func TestTransform(t *testing.T) {
	code, stdout := run(t, `{"Income":{"Salary":50},"Expenditure":{"Groceries":-20}}`)
	require.Equal(t, 0, code, stdout)

	assert.JSONEq(t, `[
		{"Transaction Cat":"Groceries","Amount":20,"Transaction Type":"Expenditure"},
		{"Transaction Cat":"Salary","Amount":50,"Transaction Type":"Income"}
	]`, stdout)
}

func TestTransform_SingleIncome(t *testing.T) {
	code, stdout := run(t, `{"Income":{"A":10.00},"Expenditure":{}}`)
	require.Equal(t, 0, code, stdout)

	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &v))
	kind, err := jsonpath.Get(`$[0]["Transaction Type"]`, v)
	require.NoError(t, err)
	assert.Equal(t, "Income", kind)

	amount, err := jsonpath.Get(`$[0].Amount`, v)
	require.NoError(t, err)
	assert.Equal(t, 10.0, amount)
}

func TestTransform_UnusableCategory(t *testing.T) {
	code, stdout := run(t, `{"Income":{"Odd":-5},"Expenditure":{}}`)
	require.Equal(t, 0, code, stdout)
	assert.JSONEq(t, `[{"Transaction Cat":"Odd","Amount":0,"Transaction Type":0}]`, stdout)
}

func TestTransform_Failures(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		args    []string
		message string
	}{
		{name: "invalid json", stdin: "{", message: "invalid format"},
		{name: "missing side", stdin: `{"Income":{}}`, message: "Expenditure"},
		{name: "non-numeric value", stdin: `{"Income":{"A":"x"},"Expenditure":{}}`, message: "A"},
		{name: "unexpected argument", stdin: "{}", args: []string{"extra"}, message: "unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout := run(t, tt.stdin, tt.args...)
			assert.Equal(t, 1, code)

			var envelope map[string]string
			require.NoError(t, json.Unmarshal([]byte(stdout), &envelope), stdout)
			assert.Contains(t, envelope["error"], tt.message)
		})
	}
}
