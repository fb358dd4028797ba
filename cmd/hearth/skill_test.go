// ABOUTME: Tests for the install-skill command.
// ABOUTME: Validates skill installation, directory creation, and file content.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestSkillFSReadEmbeddedContent verifies the embedded filesystem can read
// the SKILL.md file correctly.
func TestSkillFSReadEmbeddedContent(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill/SKILL.md: %v", err)
	}

	if len(content) == 0 {
		t.Error("Embedded SKILL.md is empty")
	}

	contentStr := string(content)
	if !strings.HasPrefix(contentStr, "---") {
		t.Error("Expected SKILL.md to start with YAML frontmatter (---)")
	}
	if !strings.Contains(contentStr, "name: hearth") {
		t.Error("Expected frontmatter to contain 'name: hearth'")
	}
	if !strings.Contains(contentStr, "description:") {
		t.Error("Expected frontmatter to contain 'description:'")
	}
}

// TestSkillEmbeddedContentCoversCommands verifies the skill documents the
// core command surface.
func TestSkillEmbeddedContentCoversCommands(t *testing.T) {
	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		t.Fatalf("Failed to read embedded skill: %v", err)
	}

	contentStr := string(content)
	expectedMarkers := []string{
		"hearth today",
		"hearth session log",
		"hearth ladder win",
		"hearth plan",
		"hearth stats",
		"phonics",
		"hit, near, or miss",
	}

	for _, marker := range expectedMarkers {
		if !strings.Contains(contentStr, marker) {
			t.Errorf("Expected SKILL.md to contain %q", marker)
		}
	}
}

func TestInstallSkillFunction(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	if err := installSkill(); err != nil {
		t.Fatalf("installSkill failed: %v", err)
	}

	skillPath := filepath.Join(tmpDir, ".claude", "skills", "hearth", "SKILL.md")
	if _, err := os.Stat(skillPath); os.IsNotExist(err) {
		t.Error("Expected skill file to be created")
	}
}

func TestInstallSkillOverwrite(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HOME", tmpDir)

	skillDir := filepath.Join(tmpDir, ".claude", "skills", "hearth")
	os.MkdirAll(skillDir, 0755)
	skillPath := filepath.Join(skillDir, "SKILL.md")
	os.WriteFile(skillPath, []byte("old content"), 0644)

	skillSkipConfirm = true
	defer func() { skillSkipConfirm = false }()

	if err := installSkill(); err != nil {
		t.Fatalf("installSkill overwrite failed: %v", err)
	}

	content, _ := os.ReadFile(skillPath)
	if string(content) == "old content" {
		t.Error("Expected skill file to be overwritten")
	}
}

// TestSkillSkipConfirmFlag verifies the flag exists and has correct defaults.
func TestSkillSkipConfirmFlag(t *testing.T) {
	flag := installSkillCmd.Flags().Lookup("yes")
	if flag == nil {
		t.Fatal("Expected --yes flag to be defined")
	}
	if flag.Shorthand != "y" {
		t.Errorf("Expected shorthand 'y', got %q", flag.Shorthand)
	}
	if flag.DefValue != "false" {
		t.Errorf("Expected default value 'false', got %q", flag.DefValue)
	}
}
