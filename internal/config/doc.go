// Package config provides configuration parsing for Rynex projects.
//
// The configuration is stored in rynex.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-app",
//	  "dev": {
//	    "port": 3000,
//	    "host": "localhost",
//	    "watch": ["app", "public"],
//	    "debounceMs": 100,
//	    "hotReload": true
//	  },
//	  "build": {
//	    "output": "dist",
//	    "minify": true,
//	    "hashAssets": true,
//	    "manifest": true
//	  },
//	  "deploy": {
//	    "bucket": "my-app-site",
//	    "region": "us-east-1"
//	  }
//	}
//
// All fields are optional; missing fields fall back to defaults.
package config
