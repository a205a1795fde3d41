// Package build turns generated Go source into an executable by writing
// it next to the runtime shim and running the Go toolchain.
package build

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/you-not-fish/blaze/internal/rtabi"
)

// GoToolEnv names the environment variable that overrides the go command.
const GoToolEnv = "BLAZE_GO"

// GoTool returns the go command to run: $BLAZE_GO if set, else "go".
func GoTool() string {
	if t := os.Getenv(GoToolEnv); t != "" {
		return t
	}
	return "go"
}

// Options configures Build.
type Options struct {
	// GoTool is the go command. Empty means GoTool().
	GoTool string

	// Keep leaves the generated sources on disk after a build.
	Keep bool

	// Logger receives progress messages. Nil discards them.
	Logger *log.Logger
}

func (o *Options) goTool() string {
	if o.GoTool != "" {
		return o.GoTool
	}
	return GoTool()
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard, "", 0)
}

// ToolchainError reports a failed external toolchain command. It is
// distinct from compile diagnostics: the program was valid but the
// toolchain could not build it.
type ToolchainError struct {
	Tool   string
	Args   []string
	Output []byte // combined stdout and stderr
	Err    error
}

func (e *ToolchainError) Error() string {
	cmd := strings.Join(append([]string{e.Tool}, e.Args...), " ")
	msg := fmt.Sprintf("%s: %v", cmd, e.Err)
	if out := strings.TrimSpace(string(e.Output)); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *ToolchainError) Unwrap() error { return e.Err }

// IsToolchainError reports whether err is or wraps a *ToolchainError.
func IsToolchainError(err error) bool {
	var te *ToolchainError
	return errors.As(err, &te)
}

// Sources names the files written for one output.
type Sources struct {
	Main string // <out>.go
	Shim string // <out>_rt.go
}

// SourcesFor returns the generated file names for the executable out.
func SourcesFor(out string) Sources {
	return Sources{
		Main: out + rtabi.SourceSuffix,
		Shim: out + rtabi.ShimSuffix,
	}
}

// Remove deletes both files. Missing files are not an error.
func (s Sources) Remove() error {
	for _, name := range []string{s.Main, s.Shim} {
		if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "remove %s", name)
		}
	}
	return nil
}

// WriteSources writes the generated program and the runtime shim for
// the executable out.
func WriteSources(out, src string) (Sources, error) {
	s := SourcesFor(out)
	if err := os.WriteFile(s.Main, []byte(src), 0o644); err != nil {
		return s, errors.Wrap(err, "write generated source")
	}
	if err := os.WriteFile(s.Shim, []byte(rtabi.ShimSource), 0o644); err != nil {
		return s, errors.Wrap(err, "write runtime shim")
	}
	return s, nil
}

// Build writes src and the runtime shim next to out and runs go build
// to produce the executable out. A failure of the go command is
// returned as a *ToolchainError.
func Build(ctx context.Context, src, out string, opts Options) (err error) {
	out, err = filepath.Abs(out)
	if err != nil {
		return errors.Wrap(err, "resolve output path")
	}
	logger := opts.logger()

	s, err := WriteSources(out, src)
	if err != nil {
		return err
	}
	if !opts.Keep {
		defer func() {
			if rerr := s.Remove(); rerr != nil && err == nil {
				err = rerr
			}
		}()
	}
	logger.Printf("wrote %s and %s", s.Main, s.Shim)

	args := []string{"build", "-o", out, filepath.Base(s.Main), filepath.Base(s.Shim)}
	if _, err := run(ctx, filepath.Dir(out), opts.goTool(), args...); err != nil {
		return err
	}
	logger.Printf("built %s", out)
	return nil
}

// run executes tool in dir and returns its combined output.
func run(ctx context.Context, dir, tool string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return buf.Bytes(), &ToolchainError{Tool: tool, Args: args, Output: buf.Bytes(), Err: err}
	}
	return buf.Bytes(), nil
}
