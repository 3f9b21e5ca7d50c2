package launcher

import "fmt"

// JSONFlag is the only flag the launcher ever adds on its own.
const JSONFlag = "--json"

// Options are the switches understood by the project-path call shape.
type Options struct {
	// JSON asks the analyzer for machine-readable output.
	JSON bool
}

// Mode selects how a Request builds its argument list.
type Mode int

const (
	// ModeProject builds [projectPath] plus any flags from Options.
	ModeProject Mode = iota
	// ModeRaw forwards RawArgs verbatim.
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeProject:
		return "project"
	case ModeRaw:
		return "raw"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Request is a single invocation. Use ProjectRequest or RawRequest to build one.
type Request struct {
	Mode        Mode
	ProjectPath string
	Options     Options
	RawArgs     []string
}

// ProjectRequest builds a request that analyzes projectPath.
func ProjectRequest(projectPath string, opts Options) Request {
	return Request{Mode: ModeProject, ProjectPath: projectPath, Options: opts}
}

// RawRequest builds a request that forwards args untouched.
func RawRequest(args []string) Request {
	return Request{Mode: ModeRaw, RawArgs: args}
}

// Args returns the argument list passed to the analyzer. The returned slice
// is always a fresh copy.
func (r Request) Args() ([]string, error) {
	switch r.Mode {
	case ModeProject:
		if r.ProjectPath == "" {
			return nil, fmt.Errorf("project path is required")
		}
		args := []string{r.ProjectPath}
		if r.Options.JSON {
			args = append(args, JSONFlag)
		}
		return args, nil
	case ModeRaw:
		args := make([]string, len(r.RawArgs))
		copy(args, r.RawArgs)
		return args, nil
	default:
		return nil, fmt.Errorf("unknown invocation mode %s", r.Mode)
	}
}
