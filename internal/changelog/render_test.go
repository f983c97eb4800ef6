package changelog

import (
	"strings"
	"testing"
	"time"
)

func TestRender_SingleAuthor(t *testing.T) {
	when := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)
	newest := commitAt("aaaa", "Alice", "alice@example.com", "second change", when)
	oldest := commitAt("bbbb", "Alice", "alice@example.com", "first change", when)

	entry := NewEntry(newest)
	entry.Add(newest)
	entry.Add(oldest)

	result := Render("testpkg", "1.0.0", "bullseye", "medium", entry)
	expected := "testpkg (1.0.0) bullseye; urgency=medium\n" +
		"\n" +
		"  * first change\n" +
		"  * second change\n" +
		"\n" +
		" -- Alice <alice@example.com>  Tue, 01 Jun 2021 12:00:00 +0000\n" +
		"\n"

	if result != expected {
		t.Errorf("Render() = %q, expected %q", result, expected)
	}
}

func TestRender_MultiAuthorHeaders(t *testing.T) {
	when := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)
	a := commitAt("aaaa", "Alice", "alice@example.com", "alice change", when)
	b := commitAt("bbbb", "Bob", "bob@example.com", "bob change", when)

	entry := NewEntry(a)
	entry.Add(a)
	entry.Add(b)

	result := Render("testpkg", "1.0.0", "bullseye", "medium", entry)
	expected := "testpkg (1.0.0) bullseye; urgency=medium\n" +
		"\n" +
		"  [ Alice ]\n" +
		"  * alice change\n" +
		"\n" +
		"  [ Bob ]\n" +
		"  * bob change\n" +
		"\n" +
		" -- Alice <alice@example.com>  Tue, 01 Jun 2021 12:00:00 +0000\n" +
		"\n"

	if result != expected {
		t.Errorf("Render() = %q, expected %q", result, expected)
	}
}

func TestRender_SanitizesVersion(t *testing.T) {
	when := time.Now()
	c := commitAt("aaaa", "Alice", "alice@example.com", "change", when)
	entry := NewEntry(c)
	entry.Add(c)

	result := Render("testpkg", "1.0.0_rc1%2", "bullseye", "medium", entry)

	if !strings.Contains(result, "(1.0.0~rc1:2)") {
		t.Errorf("Render() = %q, version not sanitized", result)
	}
	if strings.ContainsAny(strings.SplitN(result, "\n", 2)[0], "_%") {
		t.Errorf("Render() header still contains forbidden version characters: %q", result)
	}
}

func TestRender_Deterministic(t *testing.T) {
	when := time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)
	build := func() *Entry {
		a := commitAt("aaaa", "Alice", "alice@example.com", "alice change", when)
		b := commitAt("bbbb", "Bob", "bob@example.com", "bob change", when)
		entry := NewEntry(a)
		entry.Add(a)
		entry.Add(b)
		return entry
	}

	first := Render("testpkg", "1.0.0", "bullseye", "medium", build())
	second := Render("testpkg", "1.0.0", "bullseye", "medium", build())

	if first != second {
		t.Errorf("Render() not deterministic:\n%q\nvs\n%q", first, second)
	}
}
