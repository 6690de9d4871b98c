// Package urlpath maps untrusted request urls onto a filesystem root.
//
// Resolution is a pure string transformation: it never touches the
// filesystem, so there is no existence check and no symlink resolution.
// If untrusted parties can create symlinks under the root, a symlink
// target outside the root is still reachable - beware in multitenant
// deployments.
package urlpath

import "strings"

// Resolve joins the path of a request url onto root so that the result is
// always root followed by zero or more literal segments.
//
// Empty and `.` segments are dropped. A `..` segment removes the previous
// segment if there is one; at the root it is silently dropped, so the
// result is clamped at root rather than an error. Strict rejection of
// out-of-root references is a policy decision left to callers that need it.
//
// Root must be non-empty; passing an empty root is a programmer error.
func Resolve(root, url string) string {
	if root == "" {
		panic("urlpath: root must not be empty")
	}

	segments := make([]string, 0)
	for _, segment := range strings.Split(url, "/") {
		switch segment {
		case "", ".":
			// leading slash, double slashes and current-dir markers
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, segment)
		}
	}

	path := strings.TrimSuffix(root, "/")
	for _, segment := range segments {
		path += "/" + segment
	}
	return path
}
