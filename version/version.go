// Package version records the converter release version shared by the usage
// prologues of both program variants.
package version

// Version is the current release of the converter suite.
const Version = "2.0.0"
