// Package config defines the configuration for a pnodemon instance.
//
// Regardless of how the monitor is started, directly from Go code or as a
// standalone process from the command line, it uses the Config object defined
// in this package to store and forward configuration options. On top of these
// options, the monitor relies on a data directory, defined by Config.DataDir,
// where it keeps its state:
//
//	pnode_state.json     // the last accepted baseline and alert flag.
//	pnode_state.json.bak // the previous version, retained at every rewrite.
//	pnodemon.toml        // (optional) a config file read at startup.
//
// Core packages take configuration values from this struct; they never read
// the environment themselves.
package config
