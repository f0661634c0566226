package errors

// Sentinel errors shared across marlin packages.
var (
	// ErrInvalidSourceDir indicates a source path argument which is not an existing directory
	ErrInvalidSourceDir = New("source path is not a valid directory")

	// ErrExtractorNotFound indicates the exiftool executable could not be resolved
	ErrExtractorNotFound = New("exiftool executable not found")

	// ErrExtractorFailed indicates a non-zero exit from the exiftool process
	ErrExtractorFailed = New("exiftool invocation failed")

	// ErrUnknownFormat indicates an unsupported metadata serialization format
	ErrUnknownFormat = New("unknown metadata format")

	// ErrInvalidSchema indicates a missing or malformed schema resource
	ErrInvalidSchema = New("invalid schema resource")

	// ErrNotMapping indicates a metadata document whose top level is not a mapping
	ErrNotMapping = New("metadata document is not a mapping")

	// ErrInterrupted indicates an interactive prompt aborted by the user
	ErrInterrupted = New("prompt interrupted")

	// ErrInvalidTarget indicates an unusable distribution target
	ErrInvalidTarget = New("invalid distribution target")
)
