package urlpath

import (
	"strings"
	"testing"
)

func tc(t *testing.T, root, url, expected string) {
	t.Helper()
	if path := Resolve(root, url); path != expected {
		t.Fatalf("Resolve(%q, %q) is %q, expected %q", root, url, path, expected)
	}
}

func TestSimple(t *testing.T) {
	tc(t, "/foo/bar", "/baz/qux", "/foo/bar/baz/qux")
}

func TestSimpleSlash(t *testing.T) {
	tc(t, "/foo/bar/", "/baz/qux", "/foo/bar/baz/qux")
}

func TestParent(t *testing.T) {
	tc(t, "/foo/bar", "/bar/../qux", "/foo/bar/qux")
}

func TestTooManyParents(t *testing.T) {
	tc(t, "/foo/bar", "/bar/../../qux", "/foo/bar/qux")
}

func TestCurrent(t *testing.T) {
	tc(t, "/foo/bar", "/bar/././qux", "/foo/bar/bar/qux")
}

func TestDoubleSlash(t *testing.T) {
	tc(t, "/foo/bar", "//baz///qux", "/foo/bar/baz/qux")
}

func TestContainment(t *testing.T) {
	root := "/srv/files"
	urls := []string{
		"/",
		"/..",
		"/../..",
		"/../../../../etc/passwd",
		"/a/../../b/../../c",
		"/a/b/c/../../../../../d",
		"/./../.",
		"/a/..%2f..", // not a traversal, just an odd segment
	}
	for _, url := range urls {
		path := Resolve(root, url)
		if !strings.HasPrefix(path, root) {
			t.Fatalf("Resolve(%q, %q) escaped root: %q", root, url, path)
		}
		if strings.Contains(path, "..") && !strings.Contains(url, "..%2f") {
			t.Fatalf("Resolve(%q, %q) kept a parent marker: %q", root, url, path)
		}
	}
}

func TestEmptyRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Resolve with empty root did not panic")
		}
	}()
	Resolve("", "/foo")
}
