// Package config loads the relax configuration file.
//
// # Configuration Discovery
//
// Load resolves the config file in this order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/relax/config.toml
//  3. If the file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing or blank, use defaults per field
//
// # TOML Format
//
//	api_url = "http://127.0.0.1:3000"
//	gallery_dir = "~/Pictures"
//	log_file = "~/.local/state/relax/relax.log"
//	session_path = "~/.config/relax/session.toml"
//
// All fields are optional. Tilde expansion is performed for every path field.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, and TOML parse errors. A missing config file is not an
// error; relax runs out of the box against a backend on localhost.
package config
