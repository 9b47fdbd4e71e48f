// Package snaps holds the data model of the featured-snaps screen: the snap
// records fetched from the store, their release channels, and the
// SelectionStore recording which snaps the user wants installed and from
// which channel.
//
// Confinement values reuse snapd's snap.ConfinementType so that records
// coming from the store API and from seed manifests speak the same
// vocabulary as the rest of the snap tooling.
package snaps
