package modkit

import (
	"testing"

	kit "bitextclean/internal/platform/testkit"
)

type FooPort interface{ Foo() int }

type fooImpl struct{ v int }

func (f fooImpl) Foo() int { return f.v }

type stub struct {
	name  string
	ports any
}

func (s stub) Ports() any   { return s.ports }
func (s stub) Name() string { return s.name }

var _ Module = stub{}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Bar int
		Foo FooPort
	}
	type hidden struct {
		foo FooPort
	}

	cases := []struct {
		name   string
		ports  any
		want   int
		wantOK bool
	}{
		{"nil ports", nil, 0, false},
		{"direct", FooPort(fooImpl{v: 1}), 1, true},
		{"struct field", bundle{Bar: 9, Foo: fooImpl{v: 2}}, 2, true},
		{"pointer to struct", &bundle{Foo: fooImpl{v: 3}}, 3, true},
		{"nil pointer", (*bundle)(nil), 0, false},
		{"unexported field", hidden{foo: fooImpl{v: 4}}, 0, false},
		{"no match", 42, 0, false},
	}
	for _, c := range cases {
		got, ok := PortsOf[FooPort](stub{name: c.name, ports: c.ports})
		if ok != c.wantOK {
			t.Fatalf("%s: ok = %v, want %v", c.name, ok, c.wantOK)
		}
		if ok && got.Foo() != c.want {
			t.Fatalf("%s: Foo() = %d, want %d", c.name, got.Foo(), c.want)
		}
	}
}

func TestMustPortsOf(t *testing.T) {
	t.Parallel()

	m := stub{name: "clean", ports: fooImpl{v: 7}}
	if MustPortsOf[FooPort](m).Foo() != 7 {
		t.Fatal("MustPortsOf returned wrong port")
	}
	kit.MustPanic(t, func() { _ = MustPortsOf[FooPort](stub{name: "empty"}) })
}

func TestBuilder_Signature(t *testing.T) {
	t.Parallel()

	var b Builder = func(Deps) (Module, error) { return stub{name: "x", ports: "ok"}, nil }
	m, err := b(Deps{})
	if err != nil || m.Name() != "x" || m.Ports() != "ok" {
		t.Fatalf("builder mismatch: %v %v", m, err)
	}
}
