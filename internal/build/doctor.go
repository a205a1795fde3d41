package build

import (
	"context"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// MinGoVersion is the go toolchain constraint for building generated code.
const MinGoVersion = ">= 1.21"

var goVersionRE = regexp.MustCompile(`^go(\d+(?:\.\d+){0,2})`)

// ParseGoVersion parses a go release name such as "go1.23.3" or
// "go1.22rc1". Pre-release suffixes are dropped.
func ParseGoVersion(s string) (*semver.Version, error) {
	m := goVersionRE.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, errors.Errorf("unrecognized go version %q", s)
	}
	v, err := semver.NewVersion(m[1])
	if err != nil {
		return nil, errors.Wrapf(err, "parse go version %q", s)
	}
	return v, nil
}

// CheckGoVersion reports whether the release name v satisfies MinGoVersion.
func CheckGoVersion(v string) (bool, error) {
	c, err := semver.NewConstraint(MinGoVersion)
	if err != nil {
		return false, errors.Wrap(err, "parse version constraint")
	}
	sv, err := ParseGoVersion(v)
	if err != nil {
		return false, err
	}
	return c.Check(sv), nil
}

// ToolStatus is the result of one toolchain check.
type ToolStatus struct {
	Name     string
	Detail   string // version or value found
	OK       bool
	Required bool
	Err      error
}

// Doctor checks the toolchain concurrently. Results are returned in a
// fixed order regardless of completion order.
func Doctor(ctx context.Context, goTool string) []ToolStatus {
	if goTool == "" {
		goTool = GoTool()
	}
	checks := []func(context.Context) ToolStatus{
		func(ctx context.Context) ToolStatus { return goVersionStatus(ctx, goTool) },
		func(ctx context.Context) ToolStatus { return goEnvStatus(ctx, goTool, "GOROOT") },
		func(ctx context.Context) ToolStatus { return goEnvStatus(ctx, goTool, "GOOS") },
		func(ctx context.Context) ToolStatus { return goEnvStatus(ctx, goTool, "GOARCH") },
		func(ctx context.Context) ToolStatus { return toolStatus(ctx, "gofmt", "-h") },
	}

	results := make([]ToolStatus, len(checks))
	g, gctx := errgroup.WithContext(ctx)
	for i, p := range checks {
		g.Go(func() error {
			results[i] = p(gctx)
			return nil
		})
	}
	_ = g.Wait() // checks record failures in their results
	return results
}

func goVersionStatus(ctx context.Context, goTool string) ToolStatus {
	p := ToolStatus{Name: "go", Required: true}
	out, err := run(ctx, "", goTool, "env", "GOVERSION")
	if err != nil {
		p.Err = err
		p.Detail = "not found"
		return p
	}
	p.Detail = strings.TrimSpace(string(out))
	ok, err := CheckGoVersion(p.Detail)
	if err != nil {
		p.Err = err
		return p
	}
	if !ok {
		p.Err = errors.Errorf("need go %s", MinGoVersion)
		return p
	}
	p.OK = true
	return p
}

func goEnvStatus(ctx context.Context, goTool, key string) ToolStatus {
	p := ToolStatus{Name: key, Required: true}
	out, err := run(ctx, "", goTool, "env", key)
	if err != nil {
		p.Err = err
		return p
	}
	p.Detail = strings.TrimSpace(string(out))
	if p.Detail == "" {
		p.Err = errors.Errorf("%s is not set", key)
		return p
	}
	p.OK = true
	return p
}

// toolStatus checks that an optional tool can be started. Its exit
// status is ignored.
func toolStatus(ctx context.Context, name string, args ...string) ToolStatus {
	p := ToolStatus{Name: name}
	_, err := run(ctx, "", name, args...)
	var te *ToolchainError
	if errors.As(err, &te) && isNotFound(te.Err) {
		p.Err = te.Err
		p.Detail = "not found"
		return p
	}
	p.Detail = "available"
	p.OK = true
	return p
}

// isNotFound reports whether err means the command could not be started.
func isNotFound(err error) bool {
	var ee *exec.Error
	return errors.As(err, &ee)
}
