package scriptenv

import (
	"fmt"
	"os"
	"path/filepath"
)

// DataDirSentinel is the DATADIR value used when the caller configured
// nothing. It is deliberately not an absolute path: downstream consumers
// detect the missing configuration with filepath.IsAbs instead of a
// separate flag.
const DataDirSentinel = "(DATADIR must be set by the main script)"

// Environment variable names exported for descendant processes.
const (
	EnvOrgCodeDir  = "ORGCODEDIR"
	EnvLinkCodeDir = "LINKCODEDIR"
	EnvCodeDir     = "CODEDIR" // legacy alias of LINKCODEDIR
	EnvDataDir     = "DATADIR"
)

// pinnedDir is self-referential and never writable, so any code that
// still relies on relative paths fails fast instead of scribbling into
// an accidental working directory.
const pinnedDir = "/proc/self"

// Context holds the directory contract resolved once at startup.
type Context struct {
	// OrgCodeDir is the directory of the procedure's true location, with
	// symbolic links fully resolved.
	OrgCodeDir string

	// LinkCodeDir is the directory of the invocation path as given,
	// before resolving a final symlink target.
	LinkCodeDir string

	// DataDir is the caller-supplied data directory, or DataDirSentinel
	// when nothing was configured.
	DataDir string
}

// Load resolves the directory contract for the given invocation path.
// dataDir, when non-empty, overrides the DATADIR environment variable.
// Failure to resolve either directory is fatal to the run; correct
// addressing of sibling resources is a precondition for everything else.
func Load(invokedPath, dataDir string) (*Context, error) {
	abs, err := filepath.Abs(invokedPath)
	if err != nil {
		return nil, fmt.Errorf("resolving invocation path %q: %w", invokedPath, err)
	}
	real, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("resolving true location of %q: %w", invokedPath, err)
	}

	if dataDir == "" {
		dataDir = os.Getenv(EnvDataDir)
	}
	if dataDir == "" {
		dataDir = DataDirSentinel
	}

	return &Context{
		OrgCodeDir:  filepath.Dir(real),
		LinkCodeDir: filepath.Dir(abs),
		DataDir:     dataDir,
	}, nil
}

// Export publishes the contract in the process environment so spawned
// check commands and step bodies inherit it.
func (c *Context) Export() error {
	for _, kv := range [][2]string{
		{EnvOrgCodeDir, c.OrgCodeDir},
		{EnvLinkCodeDir, c.LinkCodeDir},
		{EnvCodeDir, c.LinkCodeDir},
		{EnvDataDir, c.DataDir},
	} {
		if err := os.Setenv(kv[0], kv[1]); err != nil {
			return fmt.Errorf("exporting %s: %w", kv[0], err)
		}
	}
	return nil
}

// DataDirConfigured reports whether DataDir points at a real location
// rather than the sentinel.
func (c *Context) DataDirConfigured() bool {
	return filepath.IsAbs(c.DataDir)
}

// PinWorkingDir moves the working directory to a non-writable node so all
// file access downstream has to use explicit absolute paths. Callers may
// treat a failure as a warning; the contract itself stays intact.
func PinWorkingDir() error {
	return os.Chdir(pinnedDir)
}
