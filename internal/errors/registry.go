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
	// Runtime Errors (R001-R099)
	// ============================================

	"R001": {
		Category: CategoryRuntime,
		Message:  "Not implemented",
		Detail:   "The observable does not provide this operation. Derived transformers are read-only.",
	},
	"R002": {
		Category: CategoryRuntime,
		Message:  "Invalid argument",
		Detail:   "The value is not a valid host tree node.",
	},
	"R003": {
		Category: CategoryRuntime,
		Message:  "Unsupported slot target",
		Detail:   "Named slots can be written only on maps with string keys, struct pointers, slices and Fielder implementations.",
	},

	// ============================================
	// Config Errors (R100-R139)
	// ============================================

	"R100": {
		Category: CategoryConfig,
		Message:  "Invalid ruix.yaml",
		Detail:   "The configuration file could not be parsed.",
	},
	"R101": {
		Category: CategoryConfig,
		Message:  "Config file not found",
	},
	"R102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
	},

	// ============================================
	// CLI Errors (R140-R199)
	// ============================================

	"R140": {
		Category: CategoryCLI,
		Message:  "Missing required flag",
	},
	"R141": {
		Category: CategoryCLI,
		Message:  "Output failed",
	},

	// ============================================
	// I/O Errors (R200-R299)
	// ============================================

	"R200": {
		Category: CategoryIO,
		Message:  "Preview server failed",
	},
	"R201": {
		Category: CategoryIO,
		Message:  "Unknown state",
		Detail:   "No model is registered under this name.",
	},
	"R202": {
		Category: CategoryIO,
		Message:  "Invalid state payload",
	},
	"R210": {
		Category: CategoryIO,
		Message:  "Publish failed",
	},
}

// Lookup returns the template for a code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
