package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/razen-core/rynex/internal/errors"
	"github.com/razen-core/rynex/internal/templates"
)

func createCmd() *cobra.Command {
	var (
		template    string
		modulePath  string
		description string
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new Rynex project",
		Long: `Create a new Rynex project with the specified name.

Templates:
  minimal   Just the essentials for a Rynex app (default)
  counter   A reactive counter example

Examples:
  rynex create my-app
  rynex create my-app --template=counter
  rynex create my-app --module=github.com/acme/my-app`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args[0], template, modulePath, description)
		},
	}

	cmd.Flags().StringVarP(&template, "template", "t", "minimal", "Project template (minimal, counter)")
	cmd.Flags().StringVarP(&modulePath, "module", "m", "", "Go module path (defaults to the project name)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")

	return cmd
}

func runCreate(name, templateName, modulePath, description string) error {
	printBanner()
	fmt.Println("  Creating a new Rynex project...")
	fmt.Println()

	if !isValidProjectName(name) {
		return errors.New("RX602").
			WithDetail("Project name must be a valid directory and Go module name").
			WithSuggestion("Use lowercase letters, numbers, and hyphens")
	}

	projectDir, err := filepath.Abs(name)
	if err != nil {
		return err
	}

	if _, err := os.Stat(projectDir); !os.IsNotExist(err) {
		return errors.New("RX600").
			WithDetail("Directory '" + name + "' already exists").
			WithSuggestion("Choose a different name or remove the existing directory")
	}

	tmpl, err := templates.Get(templateName)
	if err != nil {
		return err
	}

	if modulePath == "" {
		modulePath = name
	}
	if description == "" {
		description = "A Rynex application"
	}

	info("Creating project from '%s' template...", templateName)
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return err
	}
	if err := tmpl.Create(projectDir, templates.Config{
		ProjectName: name,
		ModulePath:  modulePath,
		Description: description,
	}); err != nil {
		os.RemoveAll(projectDir)
		return err
	}

	info("Installing dependencies...")
	if err := goModTidy(projectDir); err != nil {
		warn("Could not run 'go mod tidy': %v", err)
	}

	fmt.Println()
	success("Created %s/", name)
	fmt.Println()
	fmt.Println("  To get started:")
	fmt.Println()
	fmt.Printf("    cd %s\n", name)
	fmt.Println("    rynex dev")
	fmt.Println()
	fmt.Println("  Your app will be running at http://localhost:3000")
	fmt.Println()

	return nil
}

func isValidProjectName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '-' || r == '_':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func goModTidy(dir string) error {
	cmd := exec.Command("go", "mod", "tidy")
	cmd.Dir = dir
	return cmd.Run()
}
