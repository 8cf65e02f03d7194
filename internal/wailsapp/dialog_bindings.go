// Package wailsapp provides native dialog Wails bindings.
package wailsapp

import (
	"strings"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// DialogFilter restricts a file dialog to a named group of extensions,
// e.g. {Label: "Documents", Extensions: ["md", "txt"]}.
type DialogFilter struct {
	Label      string   `json:"label"`
	Extensions []string `json:"extensions"`
}

// ShowSaveDialog opens a native save dialog seeded with defaultName.
// Returns the chosen path, or an empty string when the user cancels.
func (a *App) ShowSaveDialog(defaultName string, filters []DialogFilter) (string, error) {
	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		DefaultFilename: defaultName,
		Filters:         buildFileFilters(filters),
	})
	if err != nil {
		a.logError("dialog", "Save dialog failed: "+err.Error())
		return "", err
	}
	return path, nil
}

// ShowOpenDialog opens a native open dialog. With multiple set it returns
// every selected path, otherwise at most one. Cancelling yields an empty
// list, not an error.
func (a *App) ShowOpenDialog(multiple bool, filters []DialogFilter) ([]string, error) {
	opts := runtime.OpenDialogOptions{Filters: buildFileFilters(filters)}
	if multiple {
		paths, err := runtime.OpenMultipleFilesDialog(a.ctx, opts)
		if err != nil {
			a.logError("dialog", "Open dialog failed: "+err.Error())
			return nil, err
		}
		return emptyIfNil(paths), nil
	}
	path, err := runtime.OpenFileDialog(a.ctx, opts)
	if err != nil {
		a.logError("dialog", "Open dialog failed: "+err.Error())
		return nil, err
	}
	return wrapSingle(path), nil
}

// SelectDirectory opens a directory dialog.
func (a *App) SelectDirectory(title string) (string, error) {
	return runtime.OpenDirectoryDialog(a.ctx, runtime.OpenDialogOptions{Title: title})
}

// buildFileFilters converts dialog filters to the wails representation.
// Filters without usable extensions are dropped.
func buildFileFilters(filters []DialogFilter) []runtime.FileFilter {
	var out []runtime.FileFilter
	for _, f := range filters {
		pattern := filterPattern(f.Extensions)
		if pattern == "" {
			continue
		}
		out = append(out, runtime.FileFilter{
			DisplayName: f.Label,
			Pattern:     pattern,
		})
	}
	return out
}

// filterPattern renders extensions as the semicolon-joined glob list the
// native dialogs expect, e.g. ["md", "txt"] -> "*.md;*.txt".
func filterPattern(extensions []string) string {
	var globs []string
	for _, ext := range extensions {
		ext = strings.TrimPrefix(ext, "*.")
		ext = strings.TrimPrefix(ext, ".")
		if ext == "" {
			continue
		}
		globs = append(globs, "*."+ext)
	}
	return strings.Join(globs, ";")
}

// wrapSingle lifts a single-file dialog result into the list shape the
// frontend consumes. A cancelled dialog (empty path) becomes an empty list.
func wrapSingle(path string) []string {
	if path == "" {
		return []string{}
	}
	return []string{path}
}

// emptyIfNil normalizes a cancelled multi-select (nil) to an empty list
// so the frontend never sees null.
func emptyIfNil(paths []string) []string {
	if paths == nil {
		return []string{}
	}
	return paths
}
