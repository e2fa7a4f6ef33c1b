package persona

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_AllBuiltins(t *testing.T) {
	for _, name := range Names() {
		p, err := Load(name)
		if err != nil {
			t.Errorf("Load(%q) error: %v", name, err)
			continue
		}
		if p.Name != name {
			t.Errorf("Load(%q).Name = %q, want %q", name, p.Name, name)
		}
		if p.Voice == "" {
			t.Errorf("Load(%q).Voice is empty", name)
		}
		if p.Description == "" {
			t.Errorf("Load(%q).Description is empty", name)
		}
	}
}

func TestLoad_EmptyIsDefault(t *testing.T) {
	p, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if p.Name != Default {
		t.Errorf("Load(\"\").Name = %q, want %q", p.Name, Default)
	}
}

func TestLoad_Unknown(t *testing.T) {
	if _, err := Load("bard"); err == nil {
		t.Fatal("Load(\"bard\") expected error, got nil")
	}
}

func TestNames_Sorted(t *testing.T) {
	want := []string{"lecturer", "reviewer", "scientist"}
	got := Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParse(t *testing.T) {
	p, err := Parse([]byte("name: skeptic\ndescription: ' Doubts everything '\nvoice: |\n  You are Kelly.\n  Ask for the data.\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p.Name != "skeptic" || p.Description != "Doubts everything" {
		t.Errorf("Parse = %+v", p)
	}
	if p.Voice != "You are Kelly.\nAsk for the data." {
		t.Errorf("Voice = %q", p.Voice)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing name":  "voice: hello\n",
		"missing voice": "name: mute\n",
		"bad yaml":      "name: [unterminated\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Errorf("Parse(%q) expected error", doc)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skeptic.yaml")
	if err := os.WriteFile(path, []byte("name: skeptic\nvoice: Ask for the baseline.\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile error: %v", err)
	}
	if p.Voice != "Ask for the baseline." {
		t.Errorf("Voice = %q", p.Voice)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadFile(absent) expected error")
	}
}
