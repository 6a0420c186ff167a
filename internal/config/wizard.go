package config

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/manifoldco/promptui"

	"github.com/ziadkadry99/solidview/internal/principles"
)

// highlightStyles are offered by the wizard. Any chroma style name is valid
// in the config file.
var highlightStyles = []string{"monokai", "dracula", "github-dark", "nord", "github", "solarized-light"}

// detectSourceDir looks under root for a directory holding every catalog
// document and returns it, or "" if there is none. Shallower matches win.
func detectSourceDir(root string) string {
	fsys := os.DirFS(root)
	srp, _ := principles.Lookup(principles.SRP)
	matches, err := doublestar.Glob(fsys, "**/"+srp.Path,
		doublestar.WithFilesOnly(), doublestar.WithNoFollow())
	if err != nil {
		return ""
	}
	sort.Slice(matches, func(i, j int) bool {
		return strings.Count(matches[i], "/") < strings.Count(matches[j], "/")
	})

	for _, m := range matches {
		dir := path.Dir(path.Dir(m))
		if hasCatalog(fsys, dir) {
			return filepath.Join(root, filepath.FromSlash(dir))
		}
	}
	return ""
}

func hasCatalog(fsys fs.FS, dir string) bool {
	for _, p := range principles.Catalog() {
		if _, err := fs.Stat(fsys, path.Join(dir, p.Path)); err != nil {
			return false
		}
	}
	return true
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to solidview! Let's configure the viewer.")
	fmt.Println()

	cfg := DefaultConfig()

	defaultDir := detectSourceDir(".")
	if defaultDir != "" {
		fmt.Printf("Found documentation in %s.\n\n", defaultDir)
	} else {
		defaultDir = "docs"
	}

	// 1. Document location.
	sourcePrompt := promptui.Select{
		Label: "Where are the documents?",
		Items: []string{"local directory", "remote URL"},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}

	if sourceIdx == 0 {
		dirPrompt := promptui.Prompt{
			Label:   "Documentation directory",
			Default: defaultDir,
		}
		dir, err := dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("source dir: %w", err)
		}
		cfg.SourceDir = dir
	} else {
		urlPrompt := promptui.Prompt{
			Label: "Base URL of the documents",
			Validate: func(s string) error {
				candidate := *cfg
				candidate.SourceURL = s
				return candidate.Validate()
			},
		}
		u, err := urlPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("source url: %w", err)
		}
		cfg.SourceURL = u
	}

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(DefaultPort),
		Validate: func(s string) error {
			p, err := strconv.Atoi(s)
			if err != nil || p < 1 || p > 65535 {
				return fmt.Errorf("port must be a number between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Code highlighting style.
	stylePrompt := promptui.Select{
		Label: "Code highlighting style",
		Items: highlightStyles,
	}
	_, style, err := stylePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("style selection: %w", err)
	}
	cfg.Render.HighlightStyle = style

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
