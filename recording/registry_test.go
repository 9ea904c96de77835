package recording

import (
	"slices"
	"testing"
)

// resetRegistry clears all registered backends for test isolation.
func resetRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends = make(map[string]BackendFactory)
}

func TestRegisterAndNewBackend(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("Mock", func() Backend { return &mockBackend{} })

	for _, name := range []string{"mock", "MOCK"} {
		b, err := NewBackend(name)
		if err != nil {
			t.Fatalf("NewBackend(%q) error = %v", name, err)
		}
		if _, ok := b.(*mockBackend); !ok {
			t.Errorf("NewBackend(%q) = %T, want *mockBackend", name, b)
		}
	}
	if !IsRegistered("mock") {
		t.Error("IsRegistered(mock) = false")
	}
	if got := Backends(); !slices.Equal(got, []string{"mock"}) {
		t.Errorf("Backends() = %v, want [mock]", got)
	}
}

func TestNewBackendUnknown(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	if _, err := NewBackend("pdf"); err == nil {
		t.Error("NewBackend(pdf) error = nil, want error")
	}
}

func TestBackendForFile(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	Register("svg", func() Backend { return &mockBackend{} })

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"out.svg", false},
		{"dir/OUT.SVG", false},
		{"out.pdf", true},
		{"noext", true},
	}
	for _, tt := range tests {
		_, err := BackendForFile(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("BackendForFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	resetRegistry()
	defer resetRegistry()

	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	mustPanic("nil factory", func() { Register("x", nil) })

	Register("dup", func() Backend { return &mockBackend{} })
	mustPanic("duplicate", func() { Register("DUP", func() Backend { return &mockBackend{} }) })
}
