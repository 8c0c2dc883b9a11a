package config

import (
	"github.com/kevgo/tertestrial/pkg/errors"
	"github.com/spf13/afero"
)

// Sample is the content of a freshly created configuration file
const Sample = `{
  "actions": [
    {
      "trigger": { "command": "testAll" },
      "run": "echo test all files"
    },

    {
      "trigger": {
        "command": "testFile",
        "file": "\\.rs$"
      },
      "run": "echo testing file {{file}}"
    },

    {
      "trigger": {
        "command": "testFunction",
        "file": "\\.ext$"
      },
      "run": "echo testing file {{file}} at line {{line}}"
    }
  ]
}
`

// Create writes the sample configuration to path. An existing file is
// never overwritten.
func Create(path string) error {
	return CreateFS(afero.NewOsFs(), path)
}

// CreateFS writes the sample configuration to path on the given filesystem
func CreateFS(fsys afero.Fs, path string) error {
	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigCreate, "cannot create configuration file")
	}
	if exists {
		return errors.Newf(errors.ErrAlreadyExists, "configuration file %s already exists", path).
			WithHint("Edit the existing file or delete it to start over")
	}
	if err := afero.WriteFile(fsys, path, []byte(Sample), 0644); err != nil {
		return errors.Wrap(err, errors.ErrConfigCreate, "cannot create configuration file")
	}
	return nil
}
