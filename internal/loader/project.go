package loader

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Project is the subset of dbt_project.yml lookgen reads. The project name
// doubles as the Looker connection name in generated model files.
type Project struct {
	Name string `yaml:"name"`
}

// LoadProject reads and decodes a dbt_project.yml.
func LoadProject(projectDir string) (*Project, error) {
	path := filepath.Join(projectDir, "dbt_project.yml")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dbt project config: %w", err)
	}
	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if p.Name == "" {
		return nil, fmt.Errorf("%s: project has no name", path)
	}
	return &p, nil
}
