package app

import (
	"flag"
	"testing"
)

func TestOptionMapSet(t *testing.T) {
	m := OptionMap{}
	if err := m.Set("rule=90"); err != nil {
		t.Fatal(err)
	}
	if err := m.Set("cells=200"); err != nil {
		t.Fatal(err)
	}
	if m["rule"] != "90" || m["cells"] != "200" {
		t.Fatalf("unexpected options: %v", m)
	}
	if got := m.String(); got != "cells=200,rule=90" {
		t.Fatalf("String() = %q", got)
	}
	if err := m.Set("norule"); err == nil {
		t.Fatal("expected error for option without '='")
	}
	if err := m.Set("=90"); err == nil {
		t.Fatal("expected error for option without a key")
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-sim", "elementary", "-seed", "7", "-set", "rule=30", "-set", "cells=100"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "elementary" || cfg.Seed != 7 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Opts["rule"] != "30" || cfg.Opts["cells"] != "100" {
		t.Fatalf("unexpected options: %v", cfg.Opts)
	}
}
