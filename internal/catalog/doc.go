// Package catalog provides the static exercise catalog.
//
// The content lives in catalog.toml, embedded at build time and parsed once
// at package init. It has three parts:
//
//   - sections: the home-screen grid, in display order (Meditation,
//     Pranayama, Advanced). Each entry has a title, an image asset path, a
//     two-color gradient, and the ViewID of the page it opens.
//   - courses: the guided programs listed on the courses tab.
//   - instructions: page text keyed by ViewID.
//
// Parse validates that every entry's destination has instruction text and
// that gradients are #RRGGBB pairs. A broken embedded file is a build
// defect, so the package panics at init rather than returning errors to
// every caller.
//
// Default returns a deep copy; the catalog cannot be mutated at runtime.
package catalog
