package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Markup Errors (E100-E119)
	// ============================================

	"E100": {
		Category: CategoryValidation,
		Message:  "Invalid tag name",
		Detail:   "Tag names must be ASCII letters and digits, or a doctype preamble.",
	},
	"E101": {
		Category: CategoryValidation,
		Message:  "Invalid attribute name",
		Detail:   "The attribute name contains a character that is not allowed.",
	},
	"E102": {
		Category: CategoryValidation,
		Message:  "Invalid attribute value",
		Detail:   "The attribute value contains a character that is not allowed.",
	},
	"E110": {
		Category: CategoryRender,
		Message:  "Unsupported node",
		Detail:   "A content item or token value has a type the builder cannot handle.",
	},

	// ============================================
	// Config Errors (E120-E129)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "The configuration file could not be read or parsed.",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Configuration not found",
		Detail:   "No htmlr.json was found.",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Invalid port",
		Detail:   "The port must be between 0 and 65535.",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
		Detail:   "The log level must be one of debug, info, warn or error.",
	},
	"E124": {
		Category: CategoryConfig,
		Message:  "Invalid duration",
		Detail:   "Durations use Go syntax, such as \"1s\" or \"250ms\".",
	},
	"E125": {
		Category: CategoryConfig,
		Message:  "Unknown content driver",
		Detail:   "The content driver must be sqlite or sqlite3.",
	},
	"E126": {
		Category: CategoryConfig,
		Message:  "Invalid log format",
		Detail:   "The log format must be text or json.",
	},

	// ============================================
	// Server and Storage Errors (E130-E139)
	// ============================================

	"E130": {
		Category: CategoryStorage,
		Message:  "Content store unavailable",
		Detail:   "The content database could not be opened or queried.",
	},
	"E131": {
		Category: CategoryStorage,
		Message:  "Publish failed",
		Detail:   "The rendered document could not be uploaded.",
	},
	"E132": {
		Category: CategoryServer,
		Message:  "Server failed",
		Detail:   "The HTTP server stopped with an error.",
	},

	// ============================================
	// CLI Errors (E140-E149)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Publish bucket not configured",
		Detail:   "Set publish.bucket in htmlr.json or pass --bucket.",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Output write failed",
		Detail:   "The rendered document could not be written.",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Configuration exists",
		Detail:   "An htmlr.json already exists in this directory.",
	},
	"E143": {
		Category: CategoryCLI,
		Message:  "Unknown fragment",
		Detail:   "The render command renders page, greetings or clock.",
	},
	"E144": {
		Category: CategoryCLI,
		Message:  "Unknown error format",
		Detail:   "Errors are printed as text, compact or json.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
