// Package deps checks that the external programs imgresolve shells out to are
// installed. Both startup preflight and the doctor command use it.
package deps
