// Package kernel holds the primitives shared by every marketplace aggregate:
// the UUID identifier value object and the Actor identity (user id + role)
// that commands and queries are authorized against.
package kernel
