// Package config provides configuration management for snaplist.
//
// Configuration is layered. Later sources override earlier ones:
//
//  1. Defaults compiled into the binary (GetDefaultConfig)
//  2. User configuration (~/.config/snaplist/config.yaml)
//  3. Project configuration (./.snaplist/config.yaml)
//  4. Environment variables with the SNAPLIST_ prefix
//  5. Command line flags (applied by the cmd package)
//
// # Configuration Structure
//
//	store:
//	  url: "https://api.snapcraft.io"
//	  section: "server"
//	  timeout: 30s
//	seed:
//	  path: ""              # explicit seed.yaml, wins over sourceRoot
//	  sourceRoot: "cp:///"  # install source; seed is read from var/lib/snapd/seed
//	ui:
//	  title: "Featured Server Snaps"
//	  defaultChannel: "stable"
//	dryRun: false
//	dryRunDelay: 1s
//
// # Environment Variables
//
//	SNAPLIST_STORE_URL, SNAPLIST_STORE_SECTION, SNAPLIST_STORE_TIMEOUT,
//	SNAPLIST_SEED_PATH, SNAPLIST_SEED_SOURCEROOT, SNAPLIST_DRYRUN
//
// A missing configuration file is not an error; a malformed one is.
package config
