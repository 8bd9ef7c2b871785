// Package config loads user defaults for snodelist from a YAML file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/snodelist/internal/core/domain"
	"go.trai.ch/snodelist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// AppName is the directory under the user config dir holding FileName.
const AppName = "snodelist"

// FileName is the name of the defaults file.
const FileName = "config.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
	dir    func() (string, error)
}

// Option configures a Loader.
type Option func(*Loader)

// WithFileSystem replaces the OS filesystem.
func WithFileSystem(fsys FileSystem) Option {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// WithConfigDir replaces os.UserConfigDir when locating the default file.
func WithConfigDir(dir func() (string, error)) Option {
	return func(l *Loader) {
		l.dir = dir
	}
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger, opts ...Option) *Loader {
	l := &Loader{
		Logger: logger,
		fs:     NewOSFS(),
		dir:    os.UserConfigDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// DefaultPath returns the location of the defaults file.
func (l *Loader) DefaultPath() (string, error) {
	dir, err := l.dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, FileName), nil
}

// Load reads the defaults file at path. With an empty path the file in the
// user config dir is read when it exists.
func (l *Loader) Load(path string) (domain.Defaults, error) {
	explicit := path != ""
	if !explicit {
		p, err := l.DefaultPath()
		if err != nil {
			l.Logger.Warn("cannot locate config directory: " + err.Error())
			return domain.Defaults{}, nil
		}
		path = p
	}

	var file File
	if err := readAndUnmarshalYAML(l.fs, path, &file); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return domain.Defaults{}, nil
		}
		return domain.Defaults{}, zerr.With(err, "path", path)
	}

	return toDefaults(&file), nil
}

func toDefaults(file *File) domain.Defaults {
	return domain.Defaults{
		Format:       file.Format,
		Delimiter:    file.Delimiter,
		NodeListEnv:  file.Env.NodeList,
		TaskCountEnv: file.Env.Tasks,
	}
}

func readAndUnmarshalYAML[T any](fsys FileSystem, configPath string, target *T) error {
	configFile, err := fsys.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigRead.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParse.Error())
	}

	return nil
}
