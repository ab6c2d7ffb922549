package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pomedit/internal/config"
	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
)

const fixturePOM = `<project>
  <modelVersion>4.0.0</modelVersion>
  <groupId>org.example</groupId>
  <artifactId>app</artifactId>
  <version>1.0</version>
  <properties>
    <java.version>21</java.version>
  </properties>
  <dependencies>
    <dependency>
      <groupId>org.slf4j</groupId>
      <artifactId>slf4j-api</artifactId>
      <version>2.0.16</version>
    </dependency>
  </dependencies>
</project>
`

// workspace runs the test in an empty directory holding pom.xml and returns its path.
func workspace(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{config.EnvLineSeparator, config.EnvLogLevel, config.EnvLogFormat, config.EnvMetricsFile} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	path := filepath.Join(dir, "pom.xml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	g := NewGlobal(&stdout, &stderr)
	err := Execute(args, g,
		kong.Writers(&stdout, &stderr),
		kong.Exit(func(code int) { t.Fatalf("unexpected exit with code %d", code) }))
	return stdout.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	require.NoError(t, err)
	return out
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestDeps_AddListRemove(t *testing.T) {
	pom := workspace(t, fixturePOM)

	mustExecute(t, "deps", "add", "--scope", "test", pom, "org.junit.jupiter:junit-jupiter:5.11.0")

	want := strings.Replace(fixturePOM, "    </dependency>\n  </dependencies>", `    </dependency>
    <dependency>
      <groupId>org.junit.jupiter</groupId>
      <artifactId>junit-jupiter</artifactId>
      <version>5.11.0</version>
      <scope>test</scope>
    </dependency>
  </dependencies>`, 1)
	assert.Equal(t, want, readFile(t, pom))

	out := mustExecute(t, "deps", "list", pom)
	assert.Equal(t, "org.slf4j:slf4j-api:2.0.16\norg.junit.jupiter:junit-jupiter:5.11.0 (test)\n", out)

	mustExecute(t, "deps", "remove", pom, "org.junit.jupiter:junit-jupiter")
	assert.Equal(t, fixturePOM, readFile(t, pom))
}

func TestProfiles_AddEditRemove(t *testing.T) {
	pom := workspace(t, fixturePOM)

	mustExecute(t, "profiles", "add", "--module", "it", "-p", "skipITs=false", pom, "ci")
	mustExecute(t, "props", "set", "--profile", "ci", pom, "skipITs", "true")

	want := strings.Replace(fixturePOM, "  </dependencies>\n", `  </dependencies>
  <profiles>
    <profile>
      <id>ci</id>
      <modules>
        <module>it</module>
      </modules>
      <properties>
        <skipITs>true</skipITs>
      </properties>
    </profile>
  </profiles>
`, 1)
	assert.Equal(t, want, readFile(t, pom))

	assert.Equal(t, "ci\n", mustExecute(t, "profiles", "list", pom))
	assert.Equal(t, "skipITs=true\n", mustExecute(t, "props", "list", "--profile", "ci", pom))
	assert.Equal(t, "it\n", mustExecute(t, "modules", "list", "--profile", "ci", pom))

	mustExecute(t, "profiles", "remove", pom, "ci")
	assert.Equal(t, fixturePOM, readFile(t, pom))
}

func TestModules_AddRemove(t *testing.T) {
	pom := workspace(t, fixturePOM)

	mustExecute(t, "modules", "add", pom, "core", "cli")
	want := strings.Replace(fixturePOM, "  <properties>\n", `  <modules>
    <module>core</module>
    <module>cli</module>
  </modules>
  <properties>
`, 1)
	assert.Equal(t, want, readFile(t, pom))
	assert.Equal(t, "core\ncli\n", mustExecute(t, "modules", "list", pom))

	mustExecute(t, "modules", "remove", pom, "core", "cli")
	assert.Equal(t, fixturePOM, readFile(t, pom))
}

func TestProps_SetUnset(t *testing.T) {
	pom := workspace(t, fixturePOM)

	mustExecute(t, "props", "set", pom, "java.version", "17")
	mustExecute(t, "props", "set", pom, "encoding", "UTF-8")
	assert.Equal(t, "java.version=17\nencoding=UTF-8\n", mustExecute(t, "props", "list", pom))

	mustExecute(t, "props", "unset", pom, "encoding")
	assert.Equal(t, strings.Replace(fixturePOM, ">21<", ">17<", 1), readFile(t, pom))
}

func TestSetVersion_ToStdout(t *testing.T) {
	pom := workspace(t, fixturePOM)

	out := mustExecute(t, "set-version", "-o", "-", pom, "2.0")
	assert.Equal(t, strings.Replace(fixturePOM, "<version>1.0</version>", "<version>2.0</version>", 1), out)
	assert.Equal(t, fixturePOM, readFile(t, pom), "the source is left alone")
}

func TestSetVersion_ToOutputFile(t *testing.T) {
	pom := workspace(t, fixturePOM)
	target := filepath.Join(filepath.Dir(pom), "out.xml")

	mustExecute(t, "set-version", "--output", target, pom, "1.1")
	assert.Contains(t, readFile(t, target), "<version>1.1</version>")
	assert.Equal(t, fixturePOM, readFile(t, pom))
}

func TestCheck(t *testing.T) {
	pom := workspace(t, fixturePOM)
	assert.Contains(t, mustExecute(t, "check", pom), "unchanged on round trip")

	require.NoError(t, os.WriteFile(pom, []byte("<a x='1'\n   y='2'>\n  <b></b> &apos;c&apos;\n</a>\n"), 0o644))
	assert.Contains(t, mustExecute(t, "check", pom), "unchanged on round trip")

	require.NoError(t, os.WriteFile(pom, []byte("<a>\r\n  <b/>\n</a>\n"), 0o644))
	out, err := execute(t, "check", pom)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, out, "round trip differs at line 2")
}

func TestFirstDifferentLine(t *testing.T) {
	assert.Equal(t, 1, firstDifferentLine([]byte("abc"), []byte("abd")))
	assert.Equal(t, 3, firstDifferentLine([]byte("a\nb\nc\n"), []byte("a\nb\nd\n")))
	assert.Equal(t, 2, firstDifferentLine([]byte("a\n"), []byte("a\nb")))
}

func TestLineSeparatorFlag(t *testing.T) {
	crlf := strings.ReplaceAll(fixturePOM, "\n", "\r\n")

	pom := workspace(t, crlf)
	mustExecute(t, "props", "set", pom, "java.version", "17")
	assert.Equal(t, strings.Replace(crlf, ">21<", ">17<", 1), readFile(t, pom), "detected separator is kept")

	mustExecute(t, "--line-separator", "unix", "props", "set", pom, "java.version", "21")
	assert.Equal(t, fixturePOM, readFile(t, pom))
}

func TestMetricsFile(t *testing.T) {
	pom := workspace(t, fixturePOM)
	metricsFile := filepath.Join(filepath.Dir(pom), "metrics", "pomedit.prom")

	mustExecute(t, "--metrics-file", metricsFile, "deps", "remove", pom, "org.slf4j:slf4j-api")

	content := readFile(t, metricsFile)
	assert.Contains(t, content, `pomedit_edits_total{collection="dependencies",operation="remove"} 1`)
	assert.Contains(t, content, `pomedit_stage_results_total{result="success",stage="load"} 1`)
}

func TestConfigFileIsApplied(t *testing.T) {
	pom := workspace(t, strings.ReplaceAll(fixturePOM, "\n", "\r\n"))
	require.NoError(t, os.WriteFile(config.DefaultFilename, []byte("line_separator: unix\n"), 0o600))

	mustExecute(t, "set-version", pom, "1.0")
	assert.Equal(t, fixturePOM, readFile(t, pom))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		category errors.ErrorCategory
	}{
		{"duplicate dependency", []string{"deps", "add", "pom.xml", "org.slf4j:slf4j-api:2.0.17"}, errors.CategoryValidation},
		{"bad coordinates", []string{"deps", "add", "pom.xml", "junit"}, errors.CategoryValidation},
		{"missing dependency", []string{"deps", "remove", "pom.xml", "a:b"}, errors.CategoryNotFound},
		{"missing profile", []string{"modules", "add", "--profile", "ci", "pom.xml", "x"}, errors.CategoryNotFound},
		{"missing property", []string{"props", "unset", "pom.xml", "nope"}, errors.CategoryNotFound},
		{"invalid property name", []string{"props", "set", "pom.xml", "a b", "c"}, errors.CategoryValidation},
		{"no parent", []string{"set-version", "--parent", "pom.xml", "2"}, errors.CategoryNotFound},
		{"missing file", []string{"deps", "list", "missing.xml"}, errors.CategoryNotFound},
		{"unknown command", []string{"frobnicate"}, errors.CategoryValidation},
		{"bad line separator", []string{"--line-separator", "mac", "deps", "list", "pom.xml"}, errors.CategoryConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pom := workspace(t, fixturePOM)

			_, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, tt.category), "%v", err)
			assert.Equal(t, fixturePOM, readFile(t, pom), "failed commands leave the file alone")
		})
	}
}
