// internal/runner/runner.go
package runner

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// Run executes the generated JavaScript file with node, relaying its
// standard output and error streams verbatim. The returned error carries
// node's exit status when the script itself fails.
func Run(path string) error {
	cmd := exec.Command("node", path)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return err
		}
		return errors.Wrap(err, "failed to execute node")
	}
	return nil
}

// Available reports whether a node binary can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("node")
	return err == nil
}
