// Package resolve is the answer-to-artifact resolution engine.
//
// Resolve takes the loaded settings and a finalized answer set and computes,
// without touching the file system, the ordered list of artifact operations
// that lay out a new project (Plan) and the dependencies to install
// (Manifest). Materializing the plan and running the installer are left to
// other packages.
package resolve
