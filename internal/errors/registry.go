package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Runtime Errors (RX001-RX099)
	// ============================================

	"RX001": {
		Category: CategoryRuntime,
		Message:  "Reactive field not found",
		Detail:   "The field name passed to Get or Set does not exist on this reactive container. Field names are the keys of the map passed to NewReactive.",
		DocURL:   "https://rynex.dev/docs/errors/RX001",
	},
	"RX002": {
		Category: CategoryRuntime,
		Message:  "Effect callback panicked",
		Detail:   "An effect callback panicked during a scheduled re-run. The panic was recovered and the remaining subscribers were still notified.",
		DocURL:   "https://rynex.dev/docs/errors/RX002",
	},
	"RX003": {
		Category: CategoryRuntime,
		Message:  "Effect used after Stop",
		Detail:   "This effect has been stopped. A stopped effect never re-runs and cannot be restarted; create a new effect instead.",
		DocURL:   "https://rynex.dev/docs/errors/RX003",
	},
	"RX004": {
		Category: CategoryRuntime,
		Message:  "Binding target not found",
		Detail:   "The node path recorded for a reactive binding no longer resolves to a mounted element. The tree was likely replaced without unmounting its bindings.",
		DocURL:   "https://rynex.dev/docs/errors/RX004",
	},

	// ============================================
	// Config Errors (RX100-RX199)
	// ============================================

	"RX100": {
		Category: CategoryConfig,
		Message:  "rynex.json not found",
		Detail:   "No rynex.json was found in the current directory or any parent. Run this command from inside a Rynex project, or create one with 'rynex create'.",
		DocURL:   "https://rynex.dev/docs/errors/RX100",
	},
	"RX101": {
		Category: CategoryConfig,
		Message:  "rynex.json is not valid JSON",
		Detail:   "The project configuration file could not be parsed.",
		DocURL:   "https://rynex.dev/docs/errors/RX101",
	},
	"RX102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field has a value outside its allowed range or format.",
		DocURL:   "https://rynex.dev/docs/errors/RX102",
	},
	"RX103": {
		Category: CategoryConfig,
		Message:  "Port out of range",
		Detail:   "The dev server port must be between 1 and 65535.",
		DocURL:   "https://rynex.dev/docs/errors/RX103",
	},

	// ============================================
	// Route Errors (RX200-RX299)
	// ============================================

	"RX200": {
		Category: CategoryRoutes,
		Message:  "Routes directory not found",
		Detail:   "The configured routes directory does not exist. File-based routing scans app/routes by default.",
		DocURL:   "https://rynex.dev/docs/errors/RX200",
	},
	"RX201": {
		Category: CategoryRoutes,
		Message:  "Conflicting routes",
		Detail:   "Two route files resolve to the same URL pattern. Rename or remove one of them.",
		DocURL:   "https://rynex.dev/docs/errors/RX201",
	},
	"RX202": {
		Category: CategoryRoutes,
		Message:  "Invalid route parameter",
		Detail:   "Route parameter segments must be named, e.g. [id] or [...rest]. Empty brackets are not allowed.",
		DocURL:   "https://rynex.dev/docs/errors/RX202",
	},
	"RX203": {
		Category: CategoryRoutes,
		Message:  "Catch-all route not in final segment",
		Detail:   "A [...rest] segment matches everything below it, so it must be the last segment of the route path.",
		DocURL:   "https://rynex.dev/docs/errors/RX203",
	},

	// ============================================
	// Build Errors (RX300-RX399)
	// ============================================

	"RX300": {
		Category: CategoryBuild,
		Message:  "Build failed",
		Detail:   "The project could not be compiled. See the underlying compiler output for the failing file.",
		DocURL:   "https://rynex.dev/docs/errors/RX300",
	},
	"RX301": {
		Category: CategoryBuild,
		Message:  "Source directory not found",
		Detail:   "The configured source directory does not exist.",
		DocURL:   "https://rynex.dev/docs/errors/RX301",
	},
	"RX302": {
		Category: CategoryBuild,
		Message:  "Output directory not writable",
		Detail:   "The build output directory could not be created or written to. Check permissions on the parent directory.",
		DocURL:   "https://rynex.dev/docs/errors/RX302",
	},
	"RX303": {
		Category: CategoryBuild,
		Message:  "Asset copy failed",
		Detail:   "A static asset could not be copied into the output directory.",
		DocURL:   "https://rynex.dev/docs/errors/RX303",
	},

	// ============================================
	// Deploy Errors (RX400-RX499)
	// ============================================

	"RX400": {
		Category: CategoryDeploy,
		Message:  "No build output to deploy",
		Detail:   "The dist directory is missing or empty. Run 'rynex build' before deploying.",
		DocURL:   "https://rynex.dev/docs/errors/RX400",
	},
	"RX401": {
		Category: CategoryDeploy,
		Message:  "S3 upload failed",
		Detail:   "A file could not be uploaded to the configured S3 bucket. Check your AWS credentials and bucket permissions.",
		DocURL:   "https://rynex.dev/docs/errors/RX401",
	},
	"RX402": {
		Category: CategoryDeploy,
		Message:  "Deploy target not configured",
		Detail:   "No deploy target is set in rynex.json. Add a \"deploy\" section with a bucket name and region.",
		DocURL:   "https://rynex.dev/docs/errors/RX402",
	},

	// ============================================
	// Validation Errors (RX500-RX599)
	// ============================================

	"RX500": {
		Category: CategoryValidation,
		Message:  "Project validation failed",
		Detail:   "One or more project checks failed. See the individual findings above.",
		DocURL:   "https://rynex.dev/docs/errors/RX500",
	},
	"RX501": {
		Category: CategoryValidation,
		Message:  "Missing entry point",
		Detail:   "The project has no main entry file in the source directory.",
		DocURL:   "https://rynex.dev/docs/errors/RX501",
	},

	// ============================================
	// CLI Errors (RX600-RX699)
	// ============================================

	"RX600": {
		Category: CategoryCLI,
		Message:  "Project directory already exists",
		Detail:   "A directory with this name already exists. Choose a different project name or remove the existing directory.",
		DocURL:   "https://rynex.dev/docs/errors/RX600",
	},
	"RX601": {
		Category: CategoryCLI,
		Message:  "Unknown template",
		Detail:   "The requested project template is not registered. Available templates: minimal, counter.",
		DocURL:   "https://rynex.dev/docs/errors/RX601",
	},
	"RX602": {
		Category: CategoryCLI,
		Message:  "Invalid project name",
		Detail:   "Project names must contain only letters, digits, hyphens, and underscores.",
		DocURL:   "https://rynex.dev/docs/errors/RX602",
	},
}

// Codes returns all registered error codes.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}
