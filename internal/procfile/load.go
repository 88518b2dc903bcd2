package procfile

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/stepflow/internal/ctxlog"
	"github.com/vk/stepflow/internal/fsutil"
)

// Loader reads procedure files from disk into the model.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a Loader with a fresh HCL parser.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load reads the procedure file at path, or every procedure file under it
// when path is a directory, and returns the declared procedures in load
// order. Duplicate procedure names across files are rejected.
func (l *Loader) Load(ctx context.Context, evalCtx *hcl.EvalContext, path string) ([]*Procedure, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindProcedureFiles(path)
		if err != nil {
			return nil, fmt.Errorf("discovering procedure files under %s: %w", path, err)
		}
	}
	logger.Debug("Procedure files discovered.", "count", len(files))

	var diags hcl.Diagnostics
	var procs []*Procedure
	seen := map[string]string{} // procedure name -> file declaring it

	for _, file := range files {
		hclFile, parseDiags := l.parser.ParseHCLFile(file)
		diags = append(diags, parseDiags...)
		if parseDiags.HasErrors() {
			continue
		}

		fileProcs, decodeDiags := decodeProcedures(hclFile.Body, evalCtx)
		diags = append(diags, decodeDiags...)

		for _, proc := range fileProcs {
			if prev, dup := seen[proc.Name]; dup {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  fmt.Sprintf("Duplicate procedure %q", proc.Name),
					Detail:   fmt.Sprintf("A procedure named %q was already declared in %s.", proc.Name, prev),
				})
				continue
			}
			seen[proc.Name] = file
			procs = append(procs, proc)
			logger.Debug("Procedure loaded.", "procedure", proc.Name, "file", file, "items", len(proc.Items))
		}
	}

	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse procedure files: %w", diags)
	}
	if len(procs) == 0 {
		return nil, fmt.Errorf("no procedures declared under %s", path)
	}
	return procs, nil
}
