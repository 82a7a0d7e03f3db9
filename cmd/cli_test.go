package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jpedro/master/internal/adapters/clipboard"
	"github.com/jpedro/master/internal/domain"
	"github.com/jpedro/master/internal/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alicePassword = "yF9sMw-cODR6v-bCxzXC-GxhvZj-qlW2oX-Fi3j17"

type recordingClipboard struct {
	copied []string
	err    error
}

func (c *recordingClipboard) Copy(_ context.Context, text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

type noTerminal struct{}

func (noTerminal) Prompt(context.Context, string) (string, error) {
	return "", domain.ErrNoTerminal
}

func (noTerminal) PromptMasked(context.Context, string) (string, error) {
	return "", domain.ErrNoTerminal
}

func (noTerminal) PickService(context.Context, []string) (string, error) {
	return "", domain.ErrNoTerminal
}

func isolateEnv(t *testing.T, home string) {
	t.Helper()

	t.Setenv("HOME", home)
	for _, key := range []string{"HOME", "LIST", "USERNAME", "PASSWORD", "SERVICE", "SEPARATOR", "LENGTH", "CHUNKS", "DEBUG"} {
		t.Setenv("MASTER_"+key, "")
	}
}

func withAlice(t *testing.T, home string) {
	t.Helper()

	isolateEnv(t, home)
	t.Setenv("MASTER_USERNAME", "alice")
	t.Setenv("MASTER_PASSWORD", "wonderland")
}

func executeCLI(t *testing.T, clip *recordingClipboard, args ...string) (string, string, error) {
	t.Helper()

	if clip == nil {
		clip = &recordingClipboard{}
	}

	root := newRootCmdWith(wireOverrides{
		clipboard: clip,
		picker:    noTerminal{},
		prompter:  noTerminal{},
	})
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func listPath(home string) string {
	return filepath.Join(home, ".config", "master", "list.txt")
}

func writeListFixture(t *testing.T, home string, names ...string) {
	t.Helper()

	path := listPath(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(names, "\n")), 0o600))
}

func TestGenerateCopiesPasswordAndRecordsService(t *testing.T) {
	home := t.TempDir()
	withAlice(t, home)
	clip := &recordingClipboard{}

	stdout, _, err := executeCLI(t, clip, "github")
	require.NoError(t, err)
	assert.Equal(t, "Password for github copied.\n", stdout)
	assert.Equal(t, []string{alicePassword}, clip.copied)

	data, err := os.ReadFile(listPath(home))
	require.NoError(t, err)
	assert.Equal(t, "github", string(data))
}

func TestGetAndStartAliases(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{name: "get", args: []string{"get", "github", "--print", "--no-copy"}},
		{name: "start", args: []string{"start", "github", "--print", "--no-copy"}},
		{name: "root", args: []string{"github", "-p", "--no-copy"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			withAlice(t, t.TempDir())
			clip := &recordingClipboard{}

			stdout, _, err := executeCLI(t, clip, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, alicePassword+"\n", stdout)
			assert.Empty(t, clip.copied)
		})
	}
}

func TestGenerateHonorsLayoutFlagsAndCounter(t *testing.T) {
	withAlice(t, t.TempDir())

	stdout, _, err := executeCLI(t, nil, "--separator", ".", "--length", "8", "--chunks", "4", "get", "github", "--print", "--no-copy")
	require.NoError(t, err)
	assert.Equal(t, "yF9sMwcO.DR6vbCxz.XCGxhvZj.qlW2oXFi\n", stdout)

	stdout, _, err = executeCLI(t, nil, "get", "github", "--counter", "1", "--print", "--no-copy")
	require.NoError(t, err)
	assert.Equal(t, "oefJ34-zk9z8W-POqdnw-bdDpRs-MsP0ZR-FpiXx7\n", stdout)
}

func TestGenerateHonorsLayoutEnvironment(t *testing.T) {
	withAlice(t, t.TempDir())
	t.Setenv("MASTER_SEPARATOR", ".")
	t.Setenv("MASTER_LENGTH", "8")
	t.Setenv("MASTER_CHUNKS", "4")

	stdout, _, err := executeCLI(t, nil, "github", "--print", "--no-copy")
	require.NoError(t, err)
	assert.Equal(t, "yF9sMwcO.DR6vbCxz.XCGxhvZj.qlW2oXFi\n", stdout)
}

func TestGenerateFallsBackToServiceEnvironment(t *testing.T) {
	home := t.TempDir()
	withAlice(t, home)
	t.Setenv("MASTER_SERVICE", "github")
	clip := &recordingClipboard{}

	stdout, _, err := executeCLI(t, clip)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Password for github copied.")
	assert.Equal(t, []string{alicePassword}, clip.copied)
}

func TestGenerateWithoutServiceOrTerminalFails(t *testing.T) {
	home := t.TempDir()
	withAlice(t, home)

	_, _, err := executeCLI(t, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceRequired)
	assert.ErrorIs(t, err, domain.ErrNoTerminal)

	_, statErr := os.Stat(listPath(home))
	assert.True(t, os.IsNotExist(statErr))
}

func TestGenerateWithoutCredentialsOrTerminalFails(t *testing.T) {
	isolateEnv(t, t.TempDir())
	t.Setenv("MASTER_USERNAME", "alice")

	_, _, err := executeCLI(t, nil, "github")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoTerminal)
	assert.Contains(t, err.Error(), "prompt master password")
}

func TestGenerateClipboardFailureWarns(t *testing.T) {
	withAlice(t, t.TempDir())
	clip := &recordingClipboard{err: clipboard.ErrUnavailable}

	stdout, stderr, err := executeCLI(t, clip, "github")
	require.NoError(t, err)
	assert.Equal(t, "Password for github generated.\n", stdout)
	assert.Contains(t, stderr, "Could not copy the password")
	assert.Contains(t, stderr, "--print")
	assert.Equal(t, 1, strings.Count(stderr, clipboard.ErrUnavailable.Error()))
	assert.NotContains(t, stderr, "WARN")
	assert.NotContains(t, stdout+stderr, alicePassword)
}

func TestDebugNeverLogsSecrets(t *testing.T) {
	withAlice(t, t.TempDir())

	_, stderr, err := executeCLI(t, nil, "--debug", "github")
	require.NoError(t, err)
	assert.Contains(t, stderr, "derivation")
	assert.NotContains(t, stderr, "wonderland")
	assert.NotContains(t, stderr, alicePassword)
}

func TestListAndRemove(t *testing.T) {
	home := t.TempDir()
	isolateEnv(t, home)
	writeListFixture(t, home, "gitlab", "github", "aws")

	stdout, _, err := executeCLI(t, nil, "list")
	require.NoError(t, err)
	assert.Equal(t, "aws\ngithub\ngitlab\n", stdout)

	_, _, err = executeCLI(t, nil, "remove", "gitlab")
	require.NoError(t, err)

	_, _, err = executeCLI(t, nil, "-r", "aws")
	require.NoError(t, err)

	_, _, err = executeCLI(t, nil, "rm", "never-stored")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, nil, "-l")
	require.NoError(t, err)
	assert.Equal(t, "github\n", stdout)

	stdout, _, err = executeCLI(t, nil, "ls")
	require.NoError(t, err)
	assert.Equal(t, "github\n", stdout)
}

func TestLegacyListAndRemoveFlags(t *testing.T) {
	home := t.TempDir()
	isolateEnv(t, home)
	writeListFixture(t, home, "aws", "github", "gitlab", "heroku")

	for _, args := range [][]string{{"--rm", "aws"}, {"--delete", "gitlab"}, {"-d", "heroku"}} {
		_, _, err := executeCLI(t, nil, args...)
		require.NoError(t, err, "args %v", args)
	}

	for _, args := range [][]string{{"--ls"}, legacyArgs([]string{"-ls"})} {
		stdout, _, err := executeCLI(t, nil, args...)
		require.NoError(t, err, "args %v", args)
		assert.Equal(t, "github\n", stdout, "args %v", args)
	}
}

func TestLegacyArgsOnlyRewritesLeadingLs(t *testing.T) {
	assert.Equal(t, []string{"--ls"}, legacyArgs([]string{"-ls"}))
	assert.Equal(t, []string{"github", "-ls"}, legacyArgs([]string{"github", "-ls"}))
	assert.Empty(t, legacyArgs(nil))
}

func TestListEmptyRegistry(t *testing.T) {
	isolateEnv(t, t.TempDir())

	stdout, stderr, err := executeCLI(t, nil, "list")
	require.NoError(t, err)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "No services stored.")
}

func TestListFileFlagOverridesDefault(t *testing.T) {
	home := t.TempDir()
	isolateEnv(t, home)
	custom := filepath.Join(home, "elsewhere", "services.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(custom), 0o700))
	require.NoError(t, os.WriteFile(custom, []byte("custom"), 0o600))

	stdout, _, err := executeCLI(t, nil, "--list-file", custom, "list")
	require.NoError(t, err)
	assert.Equal(t, "custom\n", stdout)
}

func TestRemoveRequiresName(t *testing.T) {
	isolateEnv(t, t.TempDir())

	_, _, err := executeCLI(t, nil, "remove")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestListAndRemoveFlagsAreExclusive(t *testing.T) {
	isolateEnv(t, t.TempDir())

	_, _, err := executeCLI(t, nil, "-l", "-r", "github")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestVersion(t *testing.T) {
	isolateEnv(t, t.TempDir())
	want := "v" + version.Version + "\n"

	for _, args := range [][]string{{"version"}, {"--version"}, {"-v"}} {
		stdout, _, err := executeCLI(t, nil, args...)
		require.NoError(t, err)
		assert.Equal(t, want, stdout, "args %v", args)
	}
}

func TestConfigRedactsCredentials(t *testing.T) {
	home := t.TempDir()
	withAlice(t, home)

	stdout, _, err := executeCLI(t, nil, "--chunks", "4", "config")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "wonderland")
	assert.Contains(t, stdout, "chunks = 4")
	assert.Contains(t, stdout, listPath(home))
}

func TestInvalidLayoutEnvironmentFails(t *testing.T) {
	withAlice(t, t.TempDir())
	t.Setenv("MASTER_LENGTH", "six")

	_, _, err := executeCLI(t, nil, "github")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MASTER_LENGTH")
}

func TestUnreadableRegistryFails(t *testing.T) {
	home := t.TempDir()
	withAlice(t, home)
	require.NoError(t, os.MkdirAll(listPath(home), 0o700))

	_, _, err := executeCLI(t, nil, "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read registry file")
}
