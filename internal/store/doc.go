// Package store fetches featured snaps and their channel maps.
//
// Client speaks the snap store v2 API over HTTP. Fixture serves an embedded
// catalogue for dry runs. Catalog caches either one and hands results to the
// UI as fetch.Result values: Ready when the answer is already known, Pending
// when the caller has to wait for it.
package store
