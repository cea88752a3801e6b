package workspace

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const projectFileSource = "Type=Exe\r\n" +
	"Reference=*\\G{00020430-0000-0000-C000-000000000046}#2.0#0#..\\..\\stdole2.tlb#OLE Automation\r\n" +
	"Module=modMain; modMain.bas\r\n" +
	"Module=modUtil; lib\\modUtil.bas\r\n" +
	"Class=CStack; CStack.cls\r\n" +
	"Form=frmMain.frm\r\n" +
	"Startup=\"frmMain\"\r\n" +
	"Name=\"DemoProject\"\r\n" +
	"Title=\"Demo\"\r\n" +
	"ExeName32=\"demo.exe\"\r\n" +
	"\r\n" +
	"[MS Transaction Server]\r\n" +
	"AutoRefresh=1\r\n"

func TestIsProjectPath(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"demo.vbp", true},
		{"DEMO.VBP", true},
		{"demo.bas", false},
		{"vbp", false},
	}
	for _, tt := range tests {
		if got := IsProjectPath(tt.path); got != tt.want {
			t.Errorf("IsProjectPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLoadProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.vbp")
	if err := os.WriteFile(path, []byte(projectFileSource), 0o644); err != nil {
		t.Fatal(err)
	}

	project, err := LoadProject(path)
	if err != nil {
		t.Fatal(err)
	}

	if project.Type != "Exe" {
		t.Errorf("Type: got %q, want %q", project.Type, "Exe")
	}
	if project.Name != "DemoProject" {
		t.Errorf("Name: got %q, want %q", project.Name, "DemoProject")
	}
	if project.Startup != "frmMain" {
		t.Errorf("Startup: got %q, want %q", project.Startup, "frmMain")
	}
	if len(project.Modules) != 2 {
		t.Fatalf("got %d modules, want 2", len(project.Modules))
	}
	if project.Modules[0] != (ProjectModule{Name: "modMain", File: "modMain.bas"}) {
		t.Errorf("first module: got %+v", project.Modules[0])
	}
	if len(project.Classes) != 1 || project.Classes[0].Name != "CStack" {
		t.Errorf("classes: got %+v", project.Classes)
	}
	if len(project.Forms) != 1 || project.Forms[0] != "frmMain.frm" {
		t.Errorf("forms: got %+v", project.Forms)
	}
	if got := project.Properties["ExeName32"]; got != `"demo.exe"` {
		t.Errorf("ExeName32: got %q", got)
	}
	if _, ok := project.Properties["Reference"]; ok {
		t.Error("Reference lines should not land in Properties")
	}
}

func TestProjectSourceFiles(t *testing.T) {
	project := &Project{
		Path:    filepath.Join("proj", "demo.vbp"),
		Modules: []ProjectModule{{Name: "modUtil", File: `..\lib\modUtil.bas`}},
		Forms:   []string{"frmMain.frm"},
	}

	got := project.SourceFiles()
	want := []string{
		filepath.Join("lib", "modUtil.bas"),
		filepath.Join("proj", "frmMain.frm"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d paths, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("path %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestScanProject(t *testing.T) {
	dir := t.TempDir()
	writeTestFile := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	writeTestFile("modMain.bas", "Sub Main()\nEnd Sub\n")
	writeTestFile("broken.bas", "Do\n")
	vbp := writeTestFile("demo.vbp",
		"Type=Exe\r\nModule=modMain; modMain.bas\r\nModule=broken; broken.bas\r\n")

	ws := New(dir)
	project, err := ws.ScanProject(context.Background(), vbp)
	if err != nil {
		t.Fatal(err)
	}
	if project.Type != "Exe" {
		t.Errorf("Type: got %q, want %q", project.Type, "Exe")
	}

	files := ws.Files()
	if len(files) != 2 {
		t.Fatalf("got %d tracked files, want 2", len(files))
	}
	clean := ws.GetFile(filepath.Join(dir, "modMain.bas"))
	if clean == nil || len(clean.Failures) != 0 {
		t.Errorf("modMain.bas should parse cleanly, got %+v", clean)
	}
	broken := ws.GetFile(filepath.Join(dir, "broken.bas"))
	if broken == nil || len(broken.Failures) == 0 {
		t.Error("broken.bas should report a parse failure")
	}
}

func TestLoadProjectMissing(t *testing.T) {
	if _, err := LoadProject(filepath.Join(t.TempDir(), "absent.vbp")); err == nil {
		t.Fatal("expected an error for a missing project file")
	}
}
