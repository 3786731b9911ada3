package types

type ConstraintOp string

const (
	ConstraintOpNone   ConstraintOp = ""
	ConstraintOpEq     ConstraintOp = "=="
	ConstraintOpNe     ConstraintOp = "!="
	ConstraintOpCompat ConstraintOp = "~="
	ConstraintOpGte    ConstraintOp = ">="
	ConstraintOpLte    ConstraintOp = "<="
	ConstraintOpGt     ConstraintOp = ">"
	ConstraintOpLt     ConstraintOp = "<"
)

type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)
