package errors

// Template defines a registered error type.
type Template struct {
	Category   Category
	Message    string
	Suggestion string
}

// Registered error codes.
const (
	CodeConfigParse      = "E100"
	CodeConfigInvalid    = "E101"
	CodeRender           = "E200"
	CodeWriteOutput      = "E201"
	CodePublish          = "E300"
	CodePublishNoBucket  = "E301"
	CodePublishAWSConfig = "E302"
	CodeServe            = "E400"
)

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Configuration (E100-E199)
	CodeConfigParse: {
		Category:   CategoryConfig,
		Message:    "Could not parse configuration file",
		Suggestion: "Check that twibbon.json is valid JSON.",
	},
	CodeConfigInvalid: {
		Category:   CategoryConfig,
		Message:    "Invalid configuration",
		Suggestion: "Fix the reported field in twibbon.json or pass a flag to override it.",
	},

	// Rendering (E200-E299)
	CodeRender: {
		Category: CategoryRender,
		Message:  "Failed to render the features section",
	},
	CodeWriteOutput: {
		Category:   CategoryRender,
		Message:    "Failed to write rendered output",
		Suggestion: "Check that the output directory exists and is writable.",
	},

	// Publishing (E300-E399)
	CodePublish: {
		Category:   CategoryPublish,
		Message:    "Failed to upload page",
		Suggestion: "Check your AWS credentials and that the bucket exists.",
	},
	CodePublishNoBucket: {
		Category:   CategoryPublish,
		Message:    "No publish bucket configured",
		Suggestion: `Set "publish.bucket" in twibbon.json or pass --bucket.`,
	},
	CodePublishAWSConfig: {
		Category:   CategoryPublish,
		Message:    "Could not load AWS configuration",
		Suggestion: "Set AWS_REGION and credentials, or configure a profile.",
	},

	// Serving (E400-E499)
	CodeServe: {
		Category: CategoryServe,
		Message:  "Preview server stopped unexpectedly",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
