// Package ui contains the Fyne-based desktop user interface: a scrollable
// portfolio page whose sections animate as they scroll into view. It adapts
// scroll offsets and widget geometry into the motion package's types, wires
// the contact form to the submission service, and renders notifications and
// settings. All UI strings are localized via Localization.
package ui
