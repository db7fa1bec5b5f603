// Package checker invokes the external lint tool and reads its findings.
// It owns the subprocess boundary: building the command, capturing combined
// output, and counting the redeclaration diagnostics the rewriter exists to
// remove.
package checker

import (
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// DefaultLintCommand is the lint invocation used when no override is
// configured.
const DefaultLintCommand = "mix credo --strict"

// redeclaredRe matches one redeclaration finding in the lint output.
var redeclaredRe = regexp.MustCompile(`Variable "[^"]+" was declared more than once`)

// Command is a parsed lint invocation.
type Command struct {
	// Name is the executable to run.
	Name string
	// Args are the arguments passed to it.
	Args []string
}

// ParseLintCommand splits a lint command string on whitespace into the
// executable and its arguments. Shell quoting is not interpreted; the lint
// invocations this tool drives never need it.
//
// cmdline: the command string, e.g. "mix credo --strict".
func ParseLintCommand(cmdline string) (Command, error) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		return Command{}, errors.New("empty lint command")
	}
	return Command{Name: fields[0], Args: fields[1:]}, nil
}

// String returns the command in the form it was configured.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Run invokes the lint command in dir and returns its combined output.
// Lint tools exit nonzero when they have findings, so a nonzero exit from a
// process that produced output is a normal result; only failing to run the
// process at all is an error.
//
// dir: the working directory for the subprocess.
func (c Command) Run(dir string) (string, error) {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(out) > 0 {
			return string(out), nil
		}
		return "", fmt.Errorf("failed to run lint command %q: %w", c.String(), err)
	}
	return string(out), nil
}

// CountViolations counts the redeclaration findings in lint output. Every
// occurrence counts, including repeats of the same variable in one file;
// the number mirrors what the lint tool itself would report.
func CountViolations(output string) int {
	return len(redeclaredRe.FindAllStringIndex(output, -1))
}

// Verify runs the lint command in dir and returns the number of remaining
// redeclaration findings. A failure to invoke the tool is surfaced, never
// reported as zero findings.
//
// dir: the project directory to lint.
func Verify(dir string, c Command) (int, error) {
	out, err := c.Run(dir)
	if err != nil {
		return 0, err
	}
	return CountViolations(out), nil
}
