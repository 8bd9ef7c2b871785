package config

// File represents the structure of the snodelist config.yaml file.
type File struct {
	Format    string `yaml:"format"`
	Delimiter string `yaml:"delimiter"`
	Env       EnvDTO `yaml:"env"`
}

// EnvDTO names the Slurm variables read in machinefile mode.
type EnvDTO struct {
	NodeList string `yaml:"nodelist"`
	Tasks    string `yaml:"tasks"`
}
