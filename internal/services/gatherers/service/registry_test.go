package service

import (
	"context"
	"sort"
	"testing"

	perr "factsagent/internal/platform/errors"
	gatheringdom "factsagent/internal/services/gathering/domain"
)

// fakeGatherer is a no-op gatherer with a fixed name
type fakeGatherer struct{ name string }

func (f *fakeGatherer) Name() string { return f.name }

func (f *fakeGatherer) Gather(_ context.Context, req gatheringdom.FactsGatheringRequest) (gatheringdom.GatheredFacts, error) {
	return gatheringdom.GatheredFacts{ExecutionID: req.ExecutionID, GroupID: req.GroupID}, nil
}

func TestRegistryList(t *testing.T) {
	b := NewBuilder()
	b.Add("checker", "v1", &fakeGatherer{name: "checker"})
	b.Add("checker", "v2", &fakeGatherer{name: "checker"})
	b.Add("another", "v1", &fakeGatherer{name: "another"})

	lines := b.Build().List()
	sort.Strings(lines)

	want := []string{"another - v1", "checker - v1/v2"}
	if len(lines) != len(want) {
		t.Fatalf("List() = %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("List()[%d] = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRegistryResolveWithVersion(t *testing.T) {
	v1 := &fakeGatherer{name: "checker_v1"}
	v2 := &fakeGatherer{name: "checker_v2"}

	b := NewBuilder()
	b.Add("checker", "v1", v1)
	b.Add("checker", "v2", v2)
	registry := b.Build()

	got, err := registry.Resolve("checker@v1")
	if err != nil {
		t.Fatalf("Resolve(checker@v1) failed: %v", err)
	}
	if got != v1 {
		t.Fatalf("Resolve(checker@v1) returned %q, want the exact v1 handle", got.Name())
	}
}

func TestRegistryResolveLatestIsLexicographic(t *testing.T) {
	cases := []struct {
		name     string
		versions []string
		want     string
	}{
		{"two versions", []string{"v1", "v2"}, "v2"},
		// plain string order, not numeric: "v9" > "v10"
		{"digit widths", []string{"v1", "v2", "v9", "v10"}, "v9"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBuilder()
			handles := map[string]*fakeGatherer{}
			for _, v := range c.versions {
				g := &fakeGatherer{name: "g_" + v}
				handles[v] = g
				b.Add("g", v, g)
			}
			got, err := b.Build().Resolve("g")
			if err != nil {
				t.Fatalf("Resolve(g) failed: %v", err)
			}
			if got != handles[c.want] {
				t.Fatalf("Resolve(g) picked %q, want version %q", got.Name(), c.want)
			}
		})
	}
}

func TestRegistryResolveNameFormatError(t *testing.T) {
	b := NewBuilder()
	b.Add("checker", "v1", &fakeGatherer{name: "checker"})
	registry := b.Build()

	_, err := registry.Resolve("a@b@c")
	if !perr.IsCode(err, perr.ErrorCodeNameFormat) {
		t.Fatalf("Resolve(a@b@c) code = %v, want NameFormat", perr.CodeOf(err))
	}
	if perr.RefOf(err) != "a@b@c" {
		t.Fatalf("Resolve(a@b@c) ref = %q, want the whole original string", perr.RefOf(err))
	}
}

func TestRegistryResolveNotFound(t *testing.T) {
	b := NewBuilder()
	b.Add("checker", "v1", &fakeGatherer{name: "checker"})
	registry := b.Build()

	cases := []struct {
		ref     string
		wantRef string
	}{
		// unknown name without version preserves just the name
		{"missing", "missing"},
		// explicit version preserves the composite reference
		{"missing@v1", "missing@v1"},
		// known name, unknown version
		{"checker@v9", "checker@v9"},
	}
	for _, c := range cases {
		_, err := registry.Resolve(c.ref)
		if !perr.IsCode(err, perr.ErrorCodeNotFound) {
			t.Fatalf("Resolve(%q) code = %v, want NotFound", c.ref, perr.CodeOf(err))
		}
		if perr.RefOf(err) != c.wantRef {
			t.Fatalf("Resolve(%q) ref = %q, want %q", c.ref, perr.RefOf(err), c.wantRef)
		}
	}
}

func TestRegistryResolveEmptyRegistry(t *testing.T) {
	_, err := NewBuilder().Build().Resolve("missing")
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("Resolve on empty registry code = %v, want NotFound", perr.CodeOf(err))
	}
}

func TestBuilderLastWriteWins(t *testing.T) {
	first := &fakeGatherer{name: "first"}
	second := &fakeGatherer{name: "second"}

	b := NewBuilder()
	b.Add("checker", "v1", first)
	b.Add("checker", "v1", second)

	got, err := b.Build().Resolve("checker@v1")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != second {
		t.Fatalf("duplicate registration resolved %q, want the later handle", got.Name())
	}
}

func TestRegistryResolveSharedHandle(t *testing.T) {
	g := &fakeGatherer{name: "checker"}
	b := NewBuilder()
	b.Add("checker", "v1", g)
	registry := b.Build()

	a, err := registry.Resolve("checker")
	if err != nil {
		t.Fatalf("first Resolve failed: %v", err)
	}
	bb, err := registry.Resolve("checker@v1")
	if err != nil {
		t.Fatalf("second Resolve failed: %v", err)
	}
	if a != g || bb != g {
		t.Fatalf("Resolve must return the same shared handle on every call")
	}
}
