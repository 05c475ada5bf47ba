package config

import (
	"strings"
	"testing"
)

func TestDefaultPageSize(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5", cfg.PageSize)
	}
}

func TestDefaultPhonebookPath(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Phonebook == "" {
		t.Fatal("Phonebook path is empty")
	}
	if !strings.HasSuffix(cfg.Phonebook, "phonebook.json") {
		t.Errorf("Phonebook = %q, want a phonebook.json path", cfg.Phonebook)
	}
}

func TestValidateFixesPageSize(t *testing.T) {
	cfg := &Config{Phonebook: "x.json", PageSize: 0}
	cfg.Validate()
	if cfg.PageSize != 5 {
		t.Errorf("PageSize after Validate = %d, want 5", cfg.PageSize)
	}

	cfg = &Config{Phonebook: "x.json", PageSize: -3}
	cfg.Validate()
	if cfg.PageSize != 5 {
		t.Errorf("PageSize after Validate = %d, want 5", cfg.PageSize)
	}
}

func TestValidateFixesEmptyPath(t *testing.T) {
	cfg := &Config{PageSize: 5}
	cfg.Validate()
	if cfg.Phonebook == "" {
		t.Error("Validate left Phonebook empty")
	}
}
