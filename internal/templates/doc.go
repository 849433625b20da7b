// Package templates provides project scaffolding for the rynex CLI.
//
// Each template is a named set of files. File contents are Go
// text/template strings executed against a Config, so project name,
// module path, and description are substituted at create time.
//
// Available templates:
//   - minimal: a bare app with one route and a stylesheet
//   - counter: the minimal app plus a reactive counter
package templates
