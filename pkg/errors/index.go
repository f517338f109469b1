package errors

// IndexError provides specialized error handling for indexing and search
// operations. This structure extends the base error system with the context
// those operations actually carry: which document and which term were
// involved, and which operation was in flight.
type IndexError struct {
	// Embed the base error to inherit all standard error functionality
	// including error chaining, structured details, and error codes.
	*baseError

	// Identifies which document id was being processed when the error
	// occurred. This is particularly valuable for debugging because it
	// tells you exactly which document was involved in the failed
	// operation.
	key string

	// Identifies which term's segment shard was involved, if applicable.
	// Empty when the error is not tied to a specific term (e.g. a document
	// store failure during hydration).
	term string

	// Describes what operation was being performed when the error occurred
	// (e.g. "Index", "Search", "Hydrate"). This context helps understand the
	// system state and user actions that led to the error.
	operation string
}

// NewIndexError creates a new index-specific error with the provided context.
// This constructor follows the same pattern as other error types in the
// system, taking a causing error, error code, and descriptive message.
func NewIndexError(err error, code ErrorCode, msg string) *IndexError {
	return &IndexError{
		baseError: NewBaseError(err, code, msg),
	}
}

// Override base error methods to return *IndexError instead of *baseError.

// WithMessage updates the error message while maintaining the IndexError type.
func (ie *IndexError) WithMessage(msg string) *IndexError {
	ie.baseError.WithMessage(msg)
	return ie
}

// WithCode sets the error code while preserving the IndexError type.
func (ie *IndexError) WithCode(code ErrorCode) *IndexError {
	ie.baseError.WithCode(code)
	return ie
}

// WithDetail adds contextual information while maintaining the IndexError type.
func (ie *IndexError) WithDetail(key string, value any) *IndexError {
	ie.baseError.WithDetail(key, value)
	return ie
}

// WithKey records which document id was being processed when the error
// occurred. This information proves invaluable for debugging because it
// enables reproduction of the error against the same document.
func (ie *IndexError) WithKey(key string) *IndexError {
	ie.key = key
	return ie
}

// WithTerm records which term's segment shard was involved in the error.
func (ie *IndexError) WithTerm(term string) *IndexError {
	ie.term = term
	return ie
}

// WithOperation records what operation was being performed. This context
// helps understand the system state and operation sequence that led to the
// error condition, enabling more effective debugging.
func (ie *IndexError) WithOperation(operation string) *IndexError {
	ie.operation = operation
	return ie
}

// Key returns the document id that was being processed when the error
// occurred.
func (ie *IndexError) Key() string {
	return ie.key
}

// Term returns the term whose segment shard was involved in the error.
func (ie *IndexError) Term() string {
	return ie.term
}

// Operation returns the name of the operation that was being performed.
func (ie *IndexError) Operation() string {
	return ie.operation
}

// Helper functions for creating common index/search errors with appropriate
// context. These convenience functions encapsulate best practices for error
// creation while reducing the cognitive burden on callers.

// NewSchemaError creates a specialized error for a document missing the
// required text field.
func NewSchemaError(docID string) *IndexError {
	return NewIndexError(nil, ErrorCodeInvalidInput, "document is missing a \"text\" field").
		WithKey(docID).
		WithOperation("Index")
}

// NewDocumentNotFoundError creates an error for hydration requests against a
// document id with no stored payload.
func NewDocumentNotFoundError(docID string, cause error) *IndexError {
	return NewIndexError(cause, ErrorCodeNotFound, "document not found").
		WithKey(docID).
		WithOperation("Hydrate")
}

// NewCorruptRecordError creates an error for a segment line that could not be
// parsed into its term and JSON components. The document and stats stores
// also use it for payloads that are not valid JSON, passing the document id
// or "stats" as term.
func NewCorruptRecordError(term string, line string, cause error) *IndexError {
	return NewIndexError(cause, ErrorCodeCorruptRecord, "segment record could not be parsed").
		WithTerm(term).
		WithDetail("line", line)
}
