package describe

import (
	"context"
	"strings"
	"testing"

	"github.com/villapro/villapro/internal/logger"
)

func TestGenerateWithoutCredentialFallsBack(t *testing.T) {
	g := NewGenerator("", "", logger.New("error", false))

	if g.Enabled() {
		t.Error("Enabled() = true without an API key")
	}

	got := g.Generate(context.Background(), "Villa X", "Bali", 4500)
	if got != Fallback {
		t.Errorf("Generate() = %q, want fallback", got)
	}
}

func TestPrompt(t *testing.T) {
	p := Prompt("Sunset Paradise Villa", "Uluwatu, Bali", 4500)

	for _, want := range []string{
		`"Sunset Paradise Villa"`,
		`"Uluwatu, Bali"`,
		"$4500/month",
		"real estate agent",
		"60 and 150 words",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("Prompt() missing %q:\n%s", want, p)
		}
	}
}

func TestModelSelection(t *testing.T) {
	g := NewGenerator("", "gpt-4.1-mini", logger.New("error", false))
	if string(g.model) != "gpt-4.1-mini" {
		t.Errorf("model = %s, want configured override", g.model)
	}

	g = NewGenerator("", "", logger.New("error", false))
	if g.model != DefaultModel {
		t.Errorf("model = %s, want default", g.model)
	}
}
