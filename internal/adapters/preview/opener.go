// Package preview launches an external viewer for exported 3D models.
package preview

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener hands preview URLs to an external viewer program.
type Opener struct {
	command string
}

// NewOpener creates an opener using command, falling back to the platform
// URL opener when command is empty.
func NewOpener(command string) *Opener {
	return &Opener{command: command}
}

// Open launches the viewer for url without waiting for it to exit.
func (o *Opener) Open(url string) error {
	cmd, err := o.Command(url)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command returns the exec.Cmd that would open url.
func (o *Opener) Command(url string) (*exec.Cmd, error) {
	viewer := o.findViewer()
	if viewer == "" {
		return nil, fmt.Errorf("no viewer found: set a viewer command in the configuration")
	}
	return exec.Command(viewer, url), nil
}

func (o *Opener) findViewer() string {
	if o.command != "" {
		return o.command
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"open"}
	case "windows":
		candidates = []string{"explorer"}
	default:
		candidates = []string{"xdg-open"}
	}
	for _, c := range candidates {
		if path, err := exec.LookPath(c); err == nil {
			return path
		}
	}
	return ""
}
