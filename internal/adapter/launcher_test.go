package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type startCall struct {
	name string
	args []string
}

func newTestLauncher(command string, goos string, available map[string]bool) (*Launcher, *[]startCall) {
	var calls []startCall
	l := NewLauncher(command, []string{"--flag"}, NullLogger())
	l.goos = goos
	l.lookPath = func(name string) (string, error) {
		if available[name] {
			return "/usr/bin/" + name, nil
		}
		return "", errors.New("not found")
	}
	l.start = func(name string, args ...string) error {
		calls = append(calls, startCall{name: name, args: args})
		return nil
	}
	return l, &calls
}

func TestOpenUsesConfiguredCommand(t *testing.T) {
	l, calls := newTestLauncher("sxiv", "linux", nil)

	require.NoError(t, l.Open("/tmp/a.png"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "sxiv", (*calls)[0].name)
	assert.Equal(t, []string{"--flag", "/tmp/a.png"}, (*calls)[0].args)
}

func TestOpenDetectsCandidate(t *testing.T) {
	l, calls := newTestLauncher("", "linux", map[string]bool{"imv": true})

	require.NoError(t, l.Open("/tmp/a.png"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "imv", (*calls)[0].name)
}

func TestOpenSkipsLocalOnlyViewersForURLs(t *testing.T) {
	l, calls := newTestLauncher("", "linux", map[string]bool{"imv": true})

	require.NoError(t, l.Open("https://picsum.photos/id/1/400/300"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "xdg-open", (*calls)[0].name, "imv cannot open URLs so the system default is used")
}

func TestOpenFallsBackToSystemDefault(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"windows", "cmd"},
		{"freebsd", "xdg-open"},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l, calls := newTestLauncher("", tt.goos, nil)
			require.NoError(t, l.Open("/tmp/a.png"))
			require.Len(t, *calls, 1)
			assert.Equal(t, tt.want, (*calls)[0].name)
		})
	}
}

func TestOpenDarwinUsesPreview(t *testing.T) {
	l, calls := newTestLauncher("", "darwin", nil)

	require.NoError(t, l.Open("/tmp/a.png"))
	require.Len(t, *calls, 1)
	assert.Equal(t, "open", (*calls)[0].name)
	assert.Equal(t, []string{"-a", "Preview", "/tmp/a.png"}, (*calls)[0].args)
}

func TestOpenReportsStartFailure(t *testing.T) {
	l, _ := newTestLauncher("sxiv", "linux", nil)
	l.start = func(string, ...string) error { return errors.New("boom") }

	err := l.Open("/tmp/a.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sxiv")
}
