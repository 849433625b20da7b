// Package build provides production build functionality for Rynex projects.
//
// This package handles:
//   - Binary compilation with optimizations
//   - Static asset copying with content-hash cache busting
//   - Build manifest generation
//
// # Usage
//
//	builder := build.New(cfg, build.Options{})
//	result, err := builder.Build(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Built in %s\n", result.Duration)
//
// # Output Structure
//
//	dist/
//	├── app                 # compiled binary
//	├── assets/             # static files, hashed
//	└── manifest.json       # asset manifest
//
// # Manifest
//
// The manifest maps original asset paths to their hashed output names:
//
//	{
//	  "logo.png": "assets/logo.g7h8i9j0.png",
//	  "styles.css": "assets/styles.d4e5f6a7.css"
//	}
package build
