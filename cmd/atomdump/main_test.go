package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type cmdTestCase struct {
	name      string
	args      []string
	stdin     string
	files     map[string]string
	exitCode  int
	stdout    string
	stderrHas []string
	checkYAML func(t *testing.T, dir string, units []yamlUnit)
}

func (ct cmdTestCase) run(t *testing.T) {
	dir := t.TempDir()
	for name, src := range ct.files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	}
	args := make([]string, len(ct.args))
	for i, arg := range ct.args {
		if _, isFile := ct.files[arg]; isFile || strings.HasSuffix(arg, ".missing") {
			arg = filepath.Join(dir, arg)
		}
		args[i] = arg
	}

	var stdout, stderr strings.Builder
	code := execute(args, strings.NewReader(ct.stdin), &stdout, &stderr)
	if t.Failed() || code != ct.exitCode {
		t.Logf("stderr:\n%s", stderr.String())
	}
	assert.Equal(t, ct.exitCode, code, "expected exit code")
	for _, has := range ct.stderrHas {
		assert.Contains(t, stderr.String(), has, "expected stderr content")
	}
	if ct.checkYAML != nil {
		var units []yamlUnit
		require.NoError(t, yaml.Unmarshal([]byte(stdout.String()), &units), "must decode yaml output")
		ct.checkYAML(t, dir, units)
	} else {
		assert.Equal(t, ct.stdout, stdout.String(), "expected stdout")
	}
}

func Test_atomdump(t *testing.T) {
	for _, ct := range []cmdTestCase{
		{
			name:  "stdin user only",
			args:  []string{"--user-only"},
			stdin: "'use strict';\nlet myVar = myVar + 1; // note\n",
			stdout: strings.Join([]string{
				"# Unit -",
				"# Atom Set",
				"  atoms: 52",
				`  @51 "myVar"`,
			}, "\n") + "\n",
		},
		{
			name:  "trace",
			args:  []string{"--trace", "--user-only"},
			stdin: "return myVar",
			stdout: strings.Join([]string{
				"# Unit -",
				"# Atom Set",
				"  atoms: 52",
				`  @51 "myVar"`,
			}, "\n") + "\n",
			stderrHas: []string{`TRACE -: + @51 "myVar"`},
		},
		{
			name: "yaml merge",
			args: []string{"--format", "yaml", "--merge", "--user-only", "a.js", "b.js"},
			files: map[string]string{
				"a.js": "foo(bar)",
				"b.js": "return bar + baz",
			},
			checkYAML: func(t *testing.T, dir string, units []yamlUnit) {
				assert.Equal(t, []yamlUnit{
					{Name: filepath.Join(dir, "a.js"), Reserved: 51, Atoms: []string{"foo", "bar"}},
					{Name: filepath.Join(dir, "b.js"), Reserved: 51, Atoms: []string{"bar", "baz"}},
					{Name: "<merged>", Reserved: 51, Atoms: []string{"foo", "bar", "baz"}},
				}, units)
			},
		},
		{
			name:  "yaml full",
			args:  []string{"-f", "yaml"},
			stdin: `x = "__proto__"`,
			checkYAML: func(t *testing.T, dir string, units []yamlUnit) {
				require.Len(t, units, 1)
				assert.Equal(t, "-", units[0].Name)
				require.Len(t, units[0].Atoms, 52)
				assert.Equal(t, "arguments", units[0].Atoms[0])
				assert.Equal(t, "__proto__", units[0].Atoms[50])
				assert.Equal(t, "x", units[0].Atoms[51])
			},
		},
		{
			name:     "missing file",
			args:     []string{"-f", "yaml", "--user-only", "gone.missing", "ok.js"},
			files:    map[string]string{"ok.js": "fine"},
			exitCode: 1,
			stderrHas: []string{
				"ERROR: open ",
				"gone.missing",
			},
			checkYAML: func(t *testing.T, dir string, units []yamlUnit) {
				assert.Equal(t, []yamlUnit{
					{Name: filepath.Join(dir, "ok.js"), Reserved: 51, Atoms: []string{"fine"}},
				}, units, "expected the good unit despite the bad one")
			},
		},
		{
			name:      "scan error",
			args:      []string{"bad.js"},
			files:     map[string]string{"bad.js": "x = 'open"},
			exitCode:  1,
			stderrHas: []string{"bad.js:1: unterminated string literal"},
		},
		{
			name:      "bad format",
			args:      []string{"--format", "xml"},
			exitCode:  1,
			stderrHas: []string{`ERROR: unknown format "xml"`},
		},
		{
			name:      "stdin twice",
			args:      []string{"-", "-"},
			stdin:     "a b",
			exitCode:  1,
			stderrHas: []string{"ERROR: stdin (-) may only be named once"},
		},
		{
			name:      "bad jobs",
			args:      []string{"--jobs", "0"},
			exitCode:  1,
			stderrHas: []string{"ERROR: --jobs must be positive, got 0"},
		},
	} {
		t.Run(ct.name, ct.run)
	}
}

func Test_atomdump_output(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.txt")
	var stdout, stderr strings.Builder
	code := execute([]string{"--user-only", "-o", name}, strings.NewReader("a b a"), &stdout, &stderr)
	require.Equal(t, 0, code, "stderr: %s", stderr.String())
	assert.Equal(t, "", stdout.String(), "expected nothing on stdout")
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"# Unit -",
		"# Atom Set",
		"  atoms: 53",
		`  @51 "a"`,
		`  @52 "b"`,
	}, "\n")+"\n", string(data))
}
