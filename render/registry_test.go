package render

import (
	"strings"
	"testing"
)

func TestRegistryRoundTrip(t *testing.T) {
	Register("capture-test", func() Backend { return &captureBackend{} })

	b, err := New("capture-test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := b.(*captureBackend); !ok {
		t.Fatalf("unexpected backend type %T", b)
	}

	found := false
	for _, name := range Backends() {
		if name == "capture-test" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Backends() missing registered name: %v", Backends())
	}
}

func TestRegistryUnknownBackend(t *testing.T) {
	_, err := New("no-such-backend")
	if err == nil {
		t.Fatal("expected error for unknown backend")
	}
	if !strings.Contains(err.Error(), "forgotten import") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegisterNilFactoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on nil factory")
		}
	}()
	Register("nil-factory", nil)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Backend { return &captureBackend{} })
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate registration")
		}
	}()
	Register("dup-test", func() Backend { return &captureBackend{} })
}
