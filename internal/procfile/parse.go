package procfile

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "procedure", LabelNames: []string{"name"}},
	},
}

var procedureSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "group", LabelNames: []string{"name"}},
		{Type: "step", LabelNames: []string{"name"}},
	},
}

var groupSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "title"},
		{Name: "check"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "step", LabelNames: []string{"name"}},
	},
}

var stepSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "title"},
		{Name: "check"},
		{Name: "run"},
	},
}

// decodeProcedures translates one parsed file body into model procedures.
// Block order within a procedure is preserved: hcl.BodyContent.Blocks
// keeps source order across block types.
func decodeProcedures(body hcl.Body, evalCtx *hcl.EvalContext) ([]*Procedure, hcl.Diagnostics) {
	content, diags := body.Content(fileSchema)

	var procs []*Procedure
	for _, block := range content.Blocks {
		proc, procDiags := decodeProcedure(block, evalCtx)
		diags = append(diags, procDiags...)
		if proc != nil {
			procs = append(procs, proc)
		}
	}
	return procs, diags
}

func decodeProcedure(block *hcl.Block, evalCtx *hcl.EvalContext) (*Procedure, hcl.Diagnostics) {
	content, diags := block.Body.Content(procedureSchema)

	proc := &Procedure{Name: block.Labels[0]}
	for _, inner := range content.Blocks {
		switch inner.Type {
		case "group":
			group, groupDiags := decodeGroup(inner, evalCtx)
			diags = append(diags, groupDiags...)
			proc.Items = append(proc.Items, Item{Group: group})
		case "step":
			step, stepDiags := decodeStep(inner, evalCtx)
			diags = append(diags, stepDiags...)
			proc.Items = append(proc.Items, Item{Step: step})
		}
	}
	return proc, diags
}

func decodeGroup(block *hcl.Block, evalCtx *hcl.EvalContext) (*Group, hcl.Diagnostics) {
	content, diags := block.Body.Content(groupSchema)

	group := &Group{Name: block.Labels[0]}
	group.Title = stringAttr(content, "title", block.Labels[0], evalCtx, &diags)
	group.Check = stringAttr(content, "check", "", evalCtx, &diags)

	for _, inner := range content.Blocks {
		step, stepDiags := decodeStep(inner, evalCtx)
		diags = append(diags, stepDiags...)
		group.Steps = append(group.Steps, step)
	}
	return group, diags
}

func decodeStep(block *hcl.Block, evalCtx *hcl.EvalContext) (*Step, hcl.Diagnostics) {
	content, diags := block.Body.Content(stepSchema)

	step := &Step{Name: block.Labels[0]}
	step.Title = stringAttr(content, "title", block.Labels[0], evalCtx, &diags)
	step.Check = stringAttr(content, "check", "", evalCtx, &diags)
	step.Run = stringAttr(content, "run", "", evalCtx, &diags)
	return step, diags
}

// stringAttr evaluates an optional string attribute, falling back to
// fallback when the attribute is absent.
func stringAttr(content *hcl.BodyContent, name, fallback string, evalCtx *hcl.EvalContext, diags *hcl.Diagnostics) string {
	attr, ok := content.Attributes[name]
	if !ok {
		return fallback
	}

	val, valDiags := attr.Expr.Value(evalCtx)
	*diags = append(*diags, valDiags...)
	if valDiags.HasErrors() {
		return fallback
	}

	val, err := convert.Convert(val, cty.String)
	if err != nil || val.IsNull() {
		*diags = append(*diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid " + name + " value",
			Detail:   "The " + name + " attribute must be a non-null string.",
			Subject:  attr.Expr.Range().Ptr(),
		})
		return fallback
	}
	return val.AsString()
}
