package config

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"fex/internal/domain"
	appErrors "fex/internal/errors"
)

// Config is the validated input of one run.
type Config struct {
	Source     string
	Dest       string
	Extensions domain.ExtensionSet
	Overwrite  bool
	Preserve   bool
	DryRun     bool
	Verbose    bool
	Plain      bool
}

// Options carries raw inputs before validation. Empty strings mean
// "not provided"; the Set flags distinguish an explicit false from an
// unanswered boolean so prompting can fill the gap.
type Options struct {
	Source       string
	Dest         string
	Extensions   string
	Overwrite    bool
	OverwriteSet bool
	Preserve     bool
	PreserveSet  bool
	DryRun       bool
	Verbose      bool
	Plain        bool
}

// ApplyEnv fills unset options from FEX_* environment variables.
func (o *Options) ApplyEnv() {
	if o.Source == "" {
		o.Source = envOrEmpty("FEX_SOURCE_DIR")
	}
	if o.Dest == "" {
		o.Dest = envOrEmpty("FEX_DEST_DIR")
	}
	if o.Extensions == "" {
		o.Extensions = envOrEmpty("FEX_EXTENSIONS")
	}
	if !o.OverwriteSet && envTruthy("FEX_OVERWRITE") {
		o.Overwrite = true
		o.OverwriteSet = true
	}
	if !o.PreserveSet && envTruthy("FEX_PRESERVE") {
		o.Preserve = true
		o.PreserveSet = true
	}
	if !o.Verbose {
		o.Verbose = envTruthy("FEX_VERBOSE")
	}
}

// Prompter fills missing options interactively. A nil Prompter means
// the session cannot ask and missing values become fatal.
type Prompter interface {
	AskRequired(prompt string) (string, error)
	AskYesNo(prompt string) (bool, error)
}

// FileSystem covers the calls Collect needs for validation and
// destination creation.
type FileSystem interface {
	Stat(path string) (iofs.FileInfo, error)
	MkdirAll(path string, perm iofs.FileMode) error
}

// Collect turns raw options into a validated Config. Missing values
// are prompted for when a Prompter is available. The destination
// directory is created here; this is the only side effect.
func Collect(opts Options, pr Prompter, fsys FileSystem) (Config, error) {
	var err error
	if opts.Source == "" {
		if opts.Source, err = askValue(pr, "Source directory: ", "source directory is required"); err != nil {
			return Config{}, err
		}
	}
	if opts.Dest == "" {
		if opts.Dest, err = askValue(pr, "Destination directory: ", "destination directory is required"); err != nil {
			return Config{}, err
		}
	}
	if opts.Extensions == "" && pr != nil {
		if opts.Extensions, err = askValue(pr, "Extensions (comma-separated, e.g. .pdf,.jpg): ", ""); err != nil {
			return Config{}, err
		}
	}
	if !opts.OverwriteSet && pr != nil {
		if opts.Overwrite, err = pr.AskYesNo("Overwrite existing files?"); err != nil {
			return Config{}, appErrors.Wrap(appErrors.InvalidConfig, "prompt", "", err)
		}
	}
	if !opts.PreserveSet && pr != nil {
		if opts.Preserve, err = pr.AskYesNo("Preserve folder structure?"); err != nil {
			return Config{}, appErrors.Wrap(appErrors.InvalidConfig, "prompt", "", err)
		}
	}

	info, err := fsys.Stat(opts.Source)
	if err != nil {
		return Config{}, appErrors.Wrap(appErrors.InvalidSource, "stat", opts.Source, err)
	}
	if !info.IsDir() {
		return Config{}, appErrors.Wrap(appErrors.InvalidSource, "stat", opts.Source, errors.New("not a directory"))
	}

	extensions := domain.ParseExtensions(opts.Extensions)
	if len(extensions) == 0 {
		return Config{}, appErrors.Wrap(appErrors.NoExtensions, "collect", "", errors.New("extension list is empty"))
	}

	// Refuse a destination inside the source tree, otherwise the walk
	// would pick up its own output.
	source, err := filepath.Abs(opts.Source)
	if err != nil {
		return Config{}, appErrors.Wrap(appErrors.InvalidConfig, "resolve", opts.Source, err)
	}
	dest, err := filepath.Abs(opts.Dest)
	if err != nil {
		return Config{}, appErrors.Wrap(appErrors.InvalidConfig, "resolve", opts.Dest, err)
	}
	if containsPath(source, dest) {
		return Config{}, appErrors.Wrap(appErrors.InvalidDestination, "collect", opts.Dest, errors.New("destination lies inside the source tree"))
	}

	if err := fsys.MkdirAll(opts.Dest, 0o755); err != nil {
		return Config{}, appErrors.Wrap(appErrors.DestinationCreate, "mkdir", opts.Dest, err)
	}

	return Config{
		Source:     opts.Source,
		Dest:       opts.Dest,
		Extensions: extensions,
		Overwrite:  opts.Overwrite,
		Preserve:   opts.Preserve,
		DryRun:     opts.DryRun,
		Verbose:    opts.Verbose,
		Plain:      opts.Plain,
	}, nil
}

func askValue(pr Prompter, prompt, missing string) (string, error) {
	if pr == nil {
		return "", appErrors.Wrap(appErrors.InvalidConfig, "collect", "", errors.New(missing))
	}
	answer, err := pr.AskRequired(prompt)
	if err != nil {
		return "", appErrors.Wrap(appErrors.InvalidConfig, "prompt", "", err)
	}
	return answer, nil
}

// containsPath reports whether path equals root or lies below it.
// Both arguments must be absolute.
func containsPath(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
