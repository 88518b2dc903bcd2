package procfile

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/stepflow/internal/scriptenv"
)

// EvalContext builds the expression scope for procedure files. The `env`
// object mirrors the exported scriptenv contract, so a procedure can
// address its data and code directories without shell interpolation.
func EvalContext(env *scriptenv.Context) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(map[string]cty.Value{
				"datadir":     cty.StringVal(env.DataDir),
				"orgcodedir":  cty.StringVal(env.OrgCodeDir),
				"linkcodedir": cty.StringVal(env.LinkCodeDir),
			}),
		},
	}
}
