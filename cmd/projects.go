package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var projectGitRepo string

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List projects",
	RunE:  runProjectsList,
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectsCreate,
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsCreateCmd)
	projectsCreateCmd.Flags().StringVar(&projectGitRepo, "repo", "", "Git repository URL")
}

func runProjectsList(cmd *cobra.Command, args []string) error {
	projects, err := client.ListProjects(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	f := Formatter()
	if len(projects) == 0 && !IsJSONOutput() {
		f.Info("No projects yet. Create one with 'vk projects create <name>'")
		return nil
	}
	f.ProjectList(projects)
	return nil
}

func runProjectsCreate(cmd *cobra.Command, args []string) error {
	project, err := client.CreateProject(cmd.Context(), args[0], projectGitRepo)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	Formatter().Project(project)
	return nil
}
