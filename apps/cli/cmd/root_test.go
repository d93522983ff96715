package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/rest/packages/command"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func execute(t *testing.T, input string, args ...string) (string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--no-color"}, args...))
	root.SetIn(strings.NewReader(input))
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	require.NoError(t, root.Execute())
	return stdout.String(), stderr.String()
}

func TestRoot_Help(t *testing.T) {
	stdout, _ := execute(t, "", "help")

	assert.Equal(t, command.UsageText+"\n", stdout)
}

func TestRoot_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "none", args: nil, want: "method required"},
		{name: "too many", args: []string{"get", "post"}, want: "only one method allowed"},
		{name: "unknown", args: []string{"fetch"}, want: `command "fetch" doesn't exist`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := execute(t, "", tt.args...)

			assert.Equal(t, tt.want+"\n"+command.UsageText+"\n", stdout)
		})
	}
}

func TestRoot_GetText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "rest/dev", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"a":1}`))
	}))
	defer server.Close()

	stdout, _ := execute(t, server.URL+"\n\ntext\n", "get")

	assert.Contains(t, stdout, "HTTP/1.1 200 OK\n")
	assert.Contains(t, stdout, "content-type: application/json\n")
	assert.True(t, strings.HasSuffix(stdout, "\n\n{\n \"a\": 1\n}\n"), stdout)
}

func TestRoot_TransportErrorShowsUsage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	stdout, _ := execute(t, server.URL+"\n\n", "delete")

	assert.Contains(t, stdout, "Error occurred:")
	assert.Contains(t, stdout, "status code 404")
	assert.True(t, strings.HasSuffix(stdout, command.UsageText+"\n"))
	assert.NotContains(t, stdout, "Choose response format")
}

func TestRoot_AnyStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"missing"}`))
	}))
	defer server.Close()

	stdout, _ := execute(t, server.URL+"\n\ntext\n", "--any-status", "get")

	assert.Contains(t, stdout, "HTTP/1.1 404 Not Found\n")
	assert.NotContains(t, stdout, "Error occurred")
}

func TestRoot_VerboseLogsToStderr(t *testing.T) {
	stdout, stderr := execute(t, "\n", "-v", "get")

	assert.Contains(t, stdout, "URL is required argument")
	assert.Contains(t, stderr, "stage: assemble")
	assert.NotContains(t, stdout, "stage: assemble")
}

func TestRoot_ZeroMaxRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/start" {
			http.Redirect(w, r, "/end", http.StatusFound)
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	stdout, _ := execute(t, server.URL+"/start\n\n", "--max-redirects=0", "get")

	assert.Contains(t, stdout, "stopped after 0 redirects")
	assert.NotContains(t, stdout, "Choose response format")
}

func TestRoot_DashPrefixedCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "shorthand", args: []string{"-x"}, want: `command "-x" doesn't exist`},
		{name: "shorthand group", args: []string{"-xyz"}, want: `command "-xyz" doesn't exist`},
		{name: "long", args: []string{"--fetch"}, want: `command "--fetch" doesn't exist`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _ := execute(t, "", tt.args...)

			assert.Equal(t, tt.want+"\n"+command.UsageText+"\n", stdout)
			assert.NotContains(t, stdout, "Type in url")
		})
	}
}

func TestRoot_InvalidFlagValue(t *testing.T) {
	for _, args := range [][]string{
		{"--timeout=abc", "get"},
		{"--timeout=-5s", "get"},
		{"--max-redirects=-1", "get"},
	} {
		t.Run(args[0], func(t *testing.T) {
			stdout, _ := execute(t, "", args...)

			assert.True(t, strings.HasPrefix(stdout, "invalid flag: "), stdout)
			assert.True(t, strings.HasSuffix(stdout, command.UsageText+"\n"), stdout)
			assert.NotContains(t, stdout, "Type in url")
		})
	}
}

func TestUnknownFlagToken(t *testing.T) {
	assert.Equal(t, "--nope", unknownFlagToken("unknown flag: --nope"))
	assert.Equal(t, "-ab", unknownFlagToken("unknown shorthand flag: 'a' in -ab"))
	assert.Equal(t, "", unknownFlagToken(`invalid argument "abc" for "--timeout" flag`))
}

func TestConfigFromFlags(t *testing.T) {
	root := &cobra.Command{Use: "rest"}
	flags := &rootFlags{}
	bindFlags(root, flags)
	require.NoError(t, root.ParseFlags([]string{"--timeout", "5s", "-k", "--no-follow-redirects", "--proxy", "http://proxy:3128"}))

	cfg, err := configFromFlags(root, flags)

	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.False(t, cfg.GetValidateSSL())
	assert.False(t, cfg.GetFollowRedirects())
	assert.Equal(t, "http://proxy:3128", cfg.Proxy)
	assert.Equal(t, 10, cfg.MaxRedirects)
	assert.False(t, cfg.GetAcceptAnyStatus())
}

func TestConfigFromFlags_Defaults(t *testing.T) {
	root := &cobra.Command{Use: "rest"}
	flags := &rootFlags{}
	bindFlags(root, flags)
	require.NoError(t, root.ParseFlags(nil))

	cfg, err := configFromFlags(root, flags)

	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.True(t, cfg.GetValidateSSL())
	assert.True(t, cfg.GetFollowRedirects())
	assert.False(t, cfg.GetVerbose())
}

func TestConfigFromFlags_ZeroMaxRedirects(t *testing.T) {
	root := &cobra.Command{Use: "rest"}
	flags := &rootFlags{}
	bindFlags(root, flags)
	require.NoError(t, root.ParseFlags([]string{"--max-redirects=0"}))

	cfg, err := configFromFlags(root, flags)

	require.NoError(t, err)
	assert.Equal(t, 0, cfg.MaxRedirects)
}

func TestConfigFromFlags_ZeroTimeout(t *testing.T) {
	root := &cobra.Command{Use: "rest"}
	flags := &rootFlags{}
	bindFlags(root, flags)
	require.NoError(t, root.ParseFlags([]string{"--timeout=0"}))

	cfg, err := configFromFlags(root, flags)

	require.NoError(t, err)
	assert.Zero(t, cfg.Timeout)
}
