// Package platform contains OS integration glue: opening external links
// (project repos, demos, social profiles) with the system default browser.
package platform
