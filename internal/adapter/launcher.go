package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher opens photo URLs and local image files in an external viewer
type Launcher struct {
	command string   // configured viewer command, empty for auto-detect
	args    []string // additional arguments for the viewer
	logger  *slog.Logger

	// overridable for tests
	lookPath func(string) (string, error)
	start    func(name string, args ...string) error
	goos     string
}

// launchPath defines a single way to launch a viewer
type launchPath struct {
	path       string // Command path: "feh", "imv", or "open-a:AppName"
	remoteOK   bool   // Viewer accepts http(s) URLs, not just local files
	extraFlags []string
}

// viewers registry - single source of truth for viewer launch configuration
var viewers = map[string]map[string][]launchPath{
	"imv": {
		"linux": {{path: "imv", remoteOK: false}},
	},
	"feh": {
		"linux": {{path: "feh", remoteOK: true, extraFlags: []string{"--scale-down"}}},
	},
	"eog": {
		"linux": {{path: "eog", remoteOK: false}},
	},
	"preview": {
		"darwin": {{path: "open-a:Preview", remoteOK: false}},
	},
}

// candidateViewers defines the preferred viewer order for each platform
var candidateViewers = map[string][]string{
	"darwin": {"preview"},
	"linux":  {"feh", "imv", "eog"},
}

// NewLauncher creates a new Launcher. An empty command auto-detects a viewer.
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command:  command,
		args:     args,
		logger:   logger,
		lookPath: exec.LookPath,
		start:    startDetached,
		goos:     runtime.GOOS,
	}
}

// startDetached starts a command without waiting for it to exit
func startDetached(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// isRemote reports whether target is an http(s) URL
func isRemote(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// Open shows target (a URL or a local path) in the configured viewer or system default
func (l *Launcher) Open(target string) error {
	// Tier 1: User configured a specific viewer
	if l.command != "" {
		args := append(append([]string{}, l.args...), target)
		l.logger.Info("launching configured viewer", "command", l.command, "args", args)
		if err := l.start(l.command, args...); err != nil {
			return fmt.Errorf("failed to launch %s: %w", l.command, err)
		}
		return nil
	}

	// Tier 2: Try the platform candidates
	if name, err := l.detectAndLaunch(target); err == nil {
		l.logger.Info("launched with detected viewer", "viewer", name)
		return nil
	}

	// Tier 3: Fall back to system default (open/xdg-open/start)
	return l.launchDefault(target)
}

// detectAndLaunch tries candidate viewers in order.
// Returns the viewer name that succeeded.
func (l *Launcher) detectAndLaunch(target string) (string, error) {
	remote := isRemote(target)

	for _, name := range candidateViewers[l.goos] {
		paths, ok := viewers[name][l.goos]
		if !ok {
			continue
		}

		for _, lp := range paths {
			if remote && !lp.remoteOK {
				continue
			}

			var err error
			if appName, isApp := strings.CutPrefix(lp.path, "open-a:"); isApp {
				err = l.start("open", "-a", appName, target)
			} else if _, err = l.lookPath(lp.path); err == nil {
				err = l.start(lp.path, append(append([]string{}, lp.extraFlags...), target)...)
			}

			if err == nil {
				return name, nil
			}
			l.logger.Debug("viewer not available", "viewer", name, "path", lp.path, "error", err)
		}
	}

	return "", fmt.Errorf("no candidate viewers found")
}

// launchDefault opens the target using the system default handler
func (l *Launcher) launchDefault(target string) error {
	var name string
	var args []string

	switch l.goos {
	case "darwin":
		name, args = "open", []string{target}
	case "windows":
		name, args = "cmd", []string{"/c", "start", "", target}
	default:
		name, args = "xdg-open", []string{target}
	}

	l.logger.Info("launching with system default", "os", l.goos, "target", target)

	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}
