package diag

// Code is a short stable diagnostic identifier. Codes are grouped by the
// stage prefix that raises them: LEX, PAR, SEM, LOW, PACK, CLI, SRV.
type Code string

const (
	Unknown Code = ""

	// Lexer.
	LexUnknownChar        Code = "LEX001"
	LexUnterminatedString Code = "LEX002"

	// Parser.
	ParUnexpectedToken Code = "PAR001"
	ParExpectedToken   Code = "PAR002"
	ParMultipleErrors  Code = "PAR003"

	// Semantic analyzer.
	SemUnresolvedSymbol   Code = "SEM001"
	SemAssignTypeMismatch Code = "SEM002"
	SemIfCondType         Code = "SEM003"
	SemLoopBoundType      Code = "SEM004"
	SemBinaryOperandType  Code = "SEM005"
	SemUnaryOperandType   Code = "SEM006"
	SemLogicOperandType   Code = "SEM007"
	SemReturnOutsideFn    Code = "SEM008"
	SemReturnTypeMismatch Code = "SEM009"
	SemUnexpandedMacro    Code = "SEM010"
	SemMissingReturn      Code = "SEM011"
	SemDuplicateSymbol    Code = "SEM012"
	SemArityMismatch      Code = "SEM019"
	SemCallTargetInvalid  Code = "SEM020"

	// Lowerer.
	LowFeatureNotCovered Code = "LOW001"
	LowUnknownIRNode     Code = "LOW002"
	LowUnknownShape      Code = "LOW003"

	// Pack registry.
	PackNotFound      Code = "PACK001"
	PackInvalid       Code = "PACK002"
	PackDuplicateName Code = "PACK003"

	// CLI / bundle persistence.
	CLIAmbiguousBundleTarget Code = "CLI010"

	// Service façade.
	SrvConflictingParams Code = "SRV001"
	SrvMissingParam      Code = "SRV002"
	SrvBadGraph          Code = "SRV003"
)
