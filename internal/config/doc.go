// Package config loads xi's settings.
//
// Configuration is assembled from layers, later layers overriding
// earlier ones:
//
//  1. Built-in defaults (Default)
//  2. The config file, TOML or YAML chosen by extension
//  3. Environment variables prefixed with XI_
//
// # Basic Usage
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//		return err
//	}
//	level := cfg.Log.Level
//
// # Settings
//
//	log.level            debug, info, warn or error
//	log.file             log destination; empty disables logging
//	theme.textFg         color of ordinary text
//	theme.textBg
//	theme.selectionFg    color of selected text
//	theme.selectionBg
//	editor.watchConfig   reload the config file when it changes
//
// Colors are "default", a palette name such as "black", or "#rrggbb".
//
// # Sub-packages
//
//   - loader: reads the file and environment layers into maps
//   - watcher: reports changes to the config file
package config
