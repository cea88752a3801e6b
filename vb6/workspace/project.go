package workspace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/vbparse/vb6"
)

// Project is the contents of a .vbp project file: the compile target and
// the source files the project is built from. Settings that do not name a
// source file are kept verbatim in Properties.
type Project struct {
	Path string

	Type    string // Exe, Control, OleExe or OleDll
	Name    string
	Startup string
	Title   string

	Modules       []ProjectModule
	Classes       []ProjectModule
	Forms         []string
	UserControls  []string
	UserDocuments []string
	Designers     []string

	// References and Objects keep their lines verbatim; the GUID-laden
	// format only matters to the IDE.
	References []string
	Objects    []string

	Properties map[string]string
}

// ProjectModule names one module or class and the file it lives in, as in
// a "Module=modMain; modMain.bas" line.
type ProjectModule struct {
	Name string
	File string
}

// IsProjectPath reports whether path names a VB6 project file.
func IsProjectPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".vbp")
}

// LoadProject reads and parses a .vbp file. Project files use the same
// legacy code page as source files. Lines that do not fit the key=value
// shape are skipped rather than rejected.
func LoadProject(path string) (*Project, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	src, err := vb6.DecodeWithReplacement(path, raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	project := &Project{Path: path, Properties: map[string]string{}}
	for _, line := range strings.Split(src.String(), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "[") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Type":
			project.Type = value
		case "Name":
			project.Name = unquote(value)
		case "Startup":
			project.Startup = unquote(value)
		case "Title":
			project.Title = unquote(value)
		case "Module":
			project.Modules = append(project.Modules, splitModuleLine(value))
		case "Class":
			project.Classes = append(project.Classes, splitModuleLine(value))
		case "Form":
			project.Forms = append(project.Forms, value)
		case "UserControl":
			project.UserControls = append(project.UserControls, value)
		case "UserDocument":
			project.UserDocuments = append(project.UserDocuments, value)
		case "Designer":
			project.Designers = append(project.Designers, value)
		case "Reference":
			project.References = append(project.References, value)
		case "Object":
			project.Objects = append(project.Objects, value)
		default:
			project.Properties[key] = value
		}
	}
	return project, nil
}

// SourceFiles returns the project's module, class, form and control files
// resolved against the project file's directory.
func (p *Project) SourceFiles() []string {
	dir := filepath.Dir(p.Path)
	var paths []string
	for _, m := range p.Modules {
		paths = append(paths, resolveProjectPath(dir, m.File))
	}
	for _, c := range p.Classes {
		paths = append(paths, resolveProjectPath(dir, c.File))
	}
	for _, f := range p.Forms {
		paths = append(paths, resolveProjectPath(dir, f))
	}
	for _, u := range p.UserControls {
		paths = append(paths, resolveProjectPath(dir, u))
	}
	return paths
}

// ScanProject loads a .vbp file and parses every source file it names.
// The returned project describes what was scanned; per-file read and parse
// results land in the workspace as usual.
func (w *Workspace) ScanProject(ctx context.Context, vbpPath string) (*Project, error) {
	project, err := LoadProject(vbpPath)
	if err != nil {
		return nil, err
	}
	if err := w.ParseFiles(ctx, project.SourceFiles()); err != nil {
		return nil, err
	}
	return project, nil
}

// splitModuleLine splits "Name; relative\path.bas". Lines without the
// separator carry only a path; the name falls back to the file's base name.
func splitModuleLine(value string) ProjectModule {
	name, file, ok := strings.Cut(value, ";")
	if !ok {
		file = value
		name = strings.TrimSuffix(filepath.Base(fromWindowsPath(value)), filepath.Ext(value))
	}
	return ProjectModule{
		Name: strings.TrimSpace(name),
		File: strings.TrimSpace(file),
	}
}

// resolveProjectPath makes a project-relative path usable on the host.
// Project files store Windows-style relative paths regardless of platform.
func resolveProjectPath(dir, path string) string {
	path = fromWindowsPath(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

func fromWindowsPath(path string) string {
	return strings.ReplaceAll(path, `\`, string(filepath.Separator))
}

func unquote(value string) string {
	return strings.Trim(value, `"`)
}
