// Package model defines domain data structures used across the app: portfolio
// content (profile, stats, skills, projects), contact messages, and status
// enums. Structures are designed for direct binding in the UI and explicit
// state transitions.
package model
