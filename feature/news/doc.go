// Package news generates roster diffs from offseason news pages.
//
// Three pages are read: a trade tracker, a free-agency tracker and the draft
// results. Player names are pulled out of the page text with fixed patterns,
// veterans are resolved to ids through reconcile.Reference.Lookup, and draft
// picks use the ids embedded in the draft page.
//
// The output lists players without destination teams. It is a starting point
// for a diff, not a diff that can be applied as-is.
package news
