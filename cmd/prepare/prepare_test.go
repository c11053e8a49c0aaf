package prepare_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/budget-prep/cmd/prepare"
	"fjacquet/budget-prep/cmd/root"

	"github.com/PaesslerAG/jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const export = `Date,Amount,Name,Balance,Category
05/03/2024,50.00,ACME Payroll,1050.00,Salary
06/03/2024,-20.00,Corner Shop,1030.00,Groceries
07/03/2024,0,Own account,1030.00,Transfer
8/3/2024,100,Refund,1130.00,Food
9/3/2024,-100,Market,1030.00,Food
`

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Cleanup(root.ResetFlags)
	cmd := root.NewCommand()
	cmd.AddCommand(prepare.NewCommand())
	cmd.SetArgs(append([]string{"prepare"}, args...))

	var stdout, stderr bytes.Buffer
	code := root.Execute(cmd, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func decode(t *testing.T, out string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &v), out)
	return v
}

func TestPrepare_Summary(t *testing.T) {
	code, stdout, _ := run(t, writeFile(t, export))
	require.Equal(t, 0, code, stdout)

	v := decode(t, stdout)
	salary, err := jsonpath.Get("$.Income.Salary", v)
	require.NoError(t, err)
	assert.Equal(t, 50.0, salary)

	groceries, err := jsonpath.Get("$.Expenditure.Groceries", v)
	require.NoError(t, err)
	assert.Equal(t, -20.0, groceries)

	assert.JSONEq(t, `{"Income":{"Salary":50},"Expenditure":{"Groceries":-20}}`, stdout)
}

func TestPrepare_Records(t *testing.T) {
	code, stdout, _ := run(t, "--records", writeFile(t, export))
	require.Equal(t, 0, code, stdout)

	v := decode(t, stdout)
	categories, err := jsonpath.Get(`$[*]["Transaction Cat"]`, v)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Groceries", "Salary"}, categories)

	amounts, err := jsonpath.Get("$[*].Amount", v)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{20.0, 50.0}, amounts)
}

func TestPrepare_YAML(t *testing.T) {
	code, stdout, _ := run(t, "--format", "yaml", writeFile(t, export))
	require.Equal(t, 0, code, stdout)

	var out map[string]map[string]float64
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, 50.0, out["Income"]["Salary"])
	assert.Equal(t, -20.0, out["Expenditure"]["Groceries"])
}

func TestPrepare_HeaderOnlyExport(t *testing.T) {
	code, stdout, _ := run(t, writeFile(t, "Date,Amount,Name,Balance,Category\n"))
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{"Income":{},"Expenditure":{}}`, stdout)
}

func TestPrepare_Failures(t *testing.T) {
	tests := []struct {
		name    string
		args    func(t *testing.T) []string
		message string
	}{
		{
			name: "missing file",
			args: func(t *testing.T) []string {
				return []string{filepath.Join(t.TempDir(), "nope.csv")}
			},
			message: "not found",
		},
		{
			name: "malformed date",
			args: func(t *testing.T) []string {
				return []string{writeFile(t, "h,h,h,h,h\n2024-03-05,10,Shop,1,Food\n")}
			},
			message: "Date",
		},
		{
			name: "wrong column count",
			args: func(t *testing.T) []string {
				return []string{writeFile(t, "h,h,h,h,h\n05/03/2024,10,Shop,Food\n")}
			},
			message: "5 columns",
		},
		{
			name: "unsupported format",
			args: func(t *testing.T) []string {
				return []string{"--format", "xml", writeFile(t, export)}
			},
			message: "unsupported output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, _ := run(t, tt.args(t)...)
			assert.Equal(t, 1, code)

			var envelope map[string]string
			require.NoError(t, json.Unmarshal([]byte(stdout), &envelope), stdout)
			assert.Len(t, envelope, 1)
			assert.Contains(t, envelope["error"], tt.message)
		})
	}
}

func TestPrepare_NoFilePath(t *testing.T) {
	code, stdout, _ := run(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout, "No file path provided")
	assert.Contains(t, stdout, "prepare <file>")
}
