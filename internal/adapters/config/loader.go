// Package config loads lock requests from YAML or JSON files.
package config

import (
	"os"

	"go.trai.ch/zerr"
	"go.trai.ch/zlock/internal/core/domain"
	"go.trai.ch/zlock/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the request file at path and converts it to a validated request.
func (l *Loader) Load(path string) (*domain.Request, error) {
	var file RequestFile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	req, err := file.toRequest()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if req.Options.Message != "" && req.State != domain.StatePresent {
		l.Logger.Warn("'message' only applies when adding locks and is ignored for state " + req.State.String())
	}

	return req, nil
}

func (f *RequestFile) toRequest() (*domain.Request, error) {
	state, err := domain.ParseState(f.State)
	if err != nil {
		return nil, err
	}

	pkgType, err := domain.ParsePackageType(f.PkgType)
	if err != nil {
		return nil, err
	}

	req := &domain.Request{
		Names: f.Name,
		State: state,
		Options: domain.LockOptions{
			Type:    pkgType,
			Repo:    f.Repo,
			Message: f.Message,
		},
		DryRun: f.CheckMode || f.AnsibleCheckMode,
		Binary: f.Zypper,
	}
	req.Normalize()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is supplied by the operator
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
