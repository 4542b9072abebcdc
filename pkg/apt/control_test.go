package apt

import (
	"slices"
	"testing"
)

const sampleIndex = `Package: bash
Version: 5.0-6ubuntu1
Architecture: amd64
Depends: base-files (>= 2.1.12), debianutils (>= 2.15)
Description: GNU Bourne Again SHell

Package: libc6
Version: 2.31-0ubuntu9
Architecture: amd64
Depends: libgcc-s1, libcrypt1 (>= 1:4.4.10-10ubuntu4)
Pre-Depends: libgcc-s1
Description: GNU C Library: Shared libraries

Package: debianutils
Version: 4.9.1
Architecture: amd64
Description: Miscellaneous utilities specific to Debian
`

func TestParseControl(t *testing.T) {
	packages, names := ParseControl(sampleIndex)

	if len(packages) != 3 {
		t.Fatalf("len(packages) = %d, want 3", len(packages))
	}
	if want := []string{"bash", "libc6", "debianutils"}; !slices.Equal(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}

	bash := packages["bash"]
	if bash.Version != "5.0-6ubuntu1" {
		t.Errorf("bash.Version = %q, want %q", bash.Version, "5.0-6ubuntu1")
	}
	if bash.Architecture != "amd64" {
		t.Errorf("bash.Architecture = %q, want %q", bash.Architecture, "amd64")
	}
	if want := []string{"base-files", "debianutils"}; !slices.Equal(bash.Depends, want) {
		t.Errorf("bash.Depends = %v, want %v", bash.Depends, want)
	}
	if len(bash.PreDepends) != 0 {
		t.Errorf("bash.PreDepends = %v, want empty", bash.PreDepends)
	}

	libc := packages["libc6"]
	if want := []string{"libgcc-s1", "libcrypt1"}; !slices.Equal(libc.Depends, want) {
		t.Errorf("libc6.Depends = %v, want %v", libc.Depends, want)
	}
	if want := []string{"libgcc-s1"}; !slices.Equal(libc.PreDepends, want) {
		t.Errorf("libc6.PreDepends = %v, want %v", libc.PreDepends, want)
	}
}

func TestParseControlDefaults(t *testing.T) {
	packages, _ := ParseControl("Package: minimal\n\n")

	pkg, ok := packages["minimal"]
	if !ok {
		t.Fatal("minimal package not parsed")
	}
	if pkg.Version != "" || pkg.Description != "" || pkg.Architecture != "" {
		t.Errorf("missing fields should default to empty, got %+v", pkg)
	}
	if len(pkg.Depends) != 0 || len(pkg.PreDepends) != 0 {
		t.Errorf("missing dependency fields should default to empty lists, got %+v", pkg)
	}
}

func TestParseControlRepeatedDescription(t *testing.T) {
	text := "Package: doc\nDescription: first line\nDescription: second line\n\n"
	packages, _ := ParseControl(text)

	if got, want := packages["doc"].Description, "first line\nsecond line"; got != want {
		t.Errorf("Description = %q, want %q", got, want)
	}
}

func TestParseControlRepeatedKeyOverwrites(t *testing.T) {
	text := "Package: dup\nVersion: 1.0\nVersion: 2.0\n\n"
	packages, _ := ParseControl(text)

	if got := packages["dup"].Version; got != "2.0" {
		t.Errorf("Version = %q, want last write %q", got, "2.0")
	}
}

func TestParseControlDiscardsStanzaWithoutPackageKey(t *testing.T) {
	text := "Version: 1.0\nDescription: orphan stanza\n\nPackage: kept\n\n"
	packages, names := ParseControl(text)

	if len(packages) != 1 {
		t.Fatalf("len(packages) = %d, want 1", len(packages))
	}
	if !slices.Equal(names, []string{"kept"}) {
		t.Errorf("names = %v, want [kept]", names)
	}
}

func TestParseControlTrailingStanzaWithoutBlankLine(t *testing.T) {
	packages, _ := ParseControl("Package: last\nVersion: 0.1")

	if _, ok := packages["last"]; !ok {
		t.Error("trailing stanza without final blank line should still be parsed")
	}
}

func TestParseControlIgnoresLinesWithoutSeparator(t *testing.T) {
	text := "Package: tolerant\n not a key value line\ngarbage\nVersion: 1.0\n\n"
	packages, _ := ParseControl(text)

	pkg, ok := packages["tolerant"]
	if !ok {
		t.Fatal("stanza with junk lines should still be parsed")
	}
	if pkg.Version != "1.0" {
		t.Errorf("Version = %q, want %q", pkg.Version, "1.0")
	}
}

func TestParseControlEmptyInput(t *testing.T) {
	packages, names := ParseControl("")
	if len(packages) != 0 || len(names) != 0 {
		t.Errorf("empty input should yield empty index, got %d packages", len(packages))
	}
}
