package config

// ToolName is used in diagnostics output and the archive.
const ToolName = "declcheck"

// DeclFileExtensions are the recognized declaration file extensions.
var DeclFileExtensions = []string{".decl.yaml", ".decl.yml"}

// DefaultConfigFile is looked up in the working directory when -config is not given.
const DefaultConfigFile = "declcheck.yaml"

// SchemaConstraint is the range of config schema versions this build understands.
const SchemaConstraint = ">=1.0.0, <2.0.0"

// Built-in type names
const (
	IntTypeName    = "Int"
	FloatTypeName  = "Float"
	StringTypeName = "String"
	BoolTypeName   = "Bool"
	CharTypeName   = "Char"
	UnitTypeName   = "Unit"
)

// BuiltinTypeNames lists every type registered in the prelude.
var BuiltinTypeNames = []string{
	IntTypeName,
	FloatTypeName,
	StringTypeName,
	BoolTypeName,
	CharTypeName,
	UnitTypeName,
}
