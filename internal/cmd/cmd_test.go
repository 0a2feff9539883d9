package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dendrascience/dendra-hashsum/internal/config"
	"github.com/dendrascience/dendra-hashsum/util"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	sha256Hello      = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	sha256World      = "486ea46224d1bb4fb680f34f7c9ad96a8f24ec88be73ea8e5a6c65260e9cb8a7"
	sha256HelloWorld = "936a185caaa266bb9cbe981e9e05cb78cd732b0b3280eb944412bb6f8f8f07af"
	md5HelloSpace    = "5eb63bbbe01eeed093cb22bb8f5acdc3"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func helloWorldDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("world"), 0o600))
	return dir
}

func TestHashCmd_Directory(t *testing.T) {
	dir := helloWorldDir(t)

	out, err := execute(t, "", "hash", dir)

	require.NoError(t, err)
	assert.Equal(t, sha256HelloWorld+"\n", out)
}

func TestHashCmd_Algorithm(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	out, err := execute(t, "", "hash", "-a", "md5", "--chunk-size", "3", path)

	require.NoError(t, err)
	assert.Equal(t, md5HelloSpace+"\n", out)
}

func TestHashCmd_IndividualReportInsideTree(t *testing.T) {
	dir := helloWorldDir(t)
	reportPath := filepath.Join(dir, "sums.txt")
	require.NoError(t, os.WriteFile(reportPath, []byte("stale"), 0o600))

	out, err := execute(t, "", "hash", "-i", reportPath, dir)

	require.NoError(t, err)
	assert.Equal(t, sha256HelloWorld+"\n", out)

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	want := "hash algorithm: sha256\n" +
		"base: " + dir + "\n" +
		"----------\n" +
		"- " + filepath.Join(dir, "a.txt") + " = " + sha256Hello + "\n" +
		"- " + filepath.Join(dir, "b.txt") + " = " + sha256World + "\n" +
		"----------\n" +
		"complete hash = " + sha256HelloWorld + "\n"
	assert.Equal(t, want, string(data))
}

func TestHashCmd_JSON(t *testing.T) {
	dir := helloWorldDir(t)

	out, err := execute(t, "", "hash", "--json", dir)
	require.NoError(t, err)

	var got struct {
		RunID     string            `json:"run_id"`
		Algorithm string            `json:"algorithm"`
		Files     []util.FileDigest `json:"files"`
		Digest    string            `json:"digest"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, "sha256", got.Algorithm)
	assert.Equal(t, sha256HelloWorld, got.Digest)
	require.Len(t, got.Files, 2)
	assert.Equal(t, sha256World, got.Files[1].Digest)
}

func TestHashCmd_Errors(t *testing.T) {
	dir := helloWorldDir(t)

	_, err := execute(t, "", "hash", "-a", "sha3", dir)
	assert.ErrorIs(t, err, util.ErrUnsupportedAlgorithm)

	_, err = execute(t, "", "hash", filepath.Join(dir, "a.tx"))
	assert.ErrorIs(t, err, util.ErrPathNotFound)
	assert.Contains(t, err.Error(), "did you mean")
}

func TestHashCmd_ConfigFile(t *testing.T) {
	dir := helloWorldDir(t)
	cfgPath := filepath.Join(t.TempDir(), "hashsum.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("algorithm: md5\ncolor: never\n"), 0o600))

	out, err := execute(t, "", "hash", "--config", cfgPath, dir)

	require.NoError(t, err)
	assert.Len(t, strings.TrimSpace(out), 32)
}

func TestVerifyCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	out, err := execute(t, "", "verify", path, md5HelloSpace)
	require.NoError(t, err)
	assert.Equal(t, "The hashes are equal\n", out)

	wrong := "5eb63bbbe01eeed093cb22bb8f5acdc4"
	out, err = execute(t, "", "verify", path, wrong)
	assert.ErrorIs(t, err, util.ErrDigestMismatch)
	assert.Contains(t, out, "The hashes are NOT equal")
	assert.Contains(t, out, "computed: "+md5HelloSpace)
	assert.Contains(t, out, "expected: "+wrong)

	_, err = execute(t, "", "verify", path, "abc")
	assert.ErrorIs(t, err, util.ErrUnknownDigestLength)
}

func TestAlgorithmsCmd(t *testing.T) {
	out, err := execute(t, "", "algorithms")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[1], "md5"))
	assert.Contains(t, lines[5], "128")
}

func TestSuggestCmd(t *testing.T) {
	dir := helloWorldDir(t)

	out, err := execute(t, "", "suggest", filepath.Join(dir, "b.tx"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.txt")+"\n", out)

	_, err = execute(t, "", "suggest", filepath.Join(dir, "zzzzz"))
	assert.ErrorIs(t, err, util.ErrPathNotFound)
}

func TestInteractiveCmd_ComputeOnly(t *testing.T) {
	dir := helloWorldDir(t)

	out, err := execute(t, dir+"\n\nsha3\nsha256\n", "interactive")

	require.NoError(t, err)
	assert.Contains(t, out, "Algorithm not available")
	assert.True(t, strings.HasSuffix(out, sha256HelloWorld+"\n"), out)
}

func TestInteractiveCmd_VerifyWithSuggestedPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "greeting.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello world"), 0o600))

	typo := filepath.Join(dir, "greetign.txt")
	out, err := execute(t, typo+"\ny\n"+md5HelloSpace+"\n", "interactive")

	require.NoError(t, err)
	assert.Contains(t, out, "not found")
	assert.Contains(t, out, "Did you mean")
	assert.True(t, strings.HasSuffix(out, "The hashes are equal\n"), out)
}

func TestInteractiveCmd_EOF(t *testing.T) {
	_, err := execute(t, "", "interactive")

	assert.Error(t, err)
}

func TestHashCmd_HelpDocumentsJSONFields(t *testing.T) {
	out, err := execute(t, "", "hash", "--help")

	require.NoError(t, err)
	for _, field := range []string{"run_id", "algorithm", "base", "files", "digest"} {
		assert.Contains(t, out, field)
	}
}
