// Package config loads skyview's TOML configuration.
//
// # Overview
//
// skyview needs very little configuration: where the APOD API lives, which
// key to send, how many days to show by default, how long to wait for a
// response, and where to write its log. Everything has a default, so the
// program runs with no file at all against api.nasa.gov using DEMO_KEY.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/skyview/config.toml
//  3. If the file doesn't exist, use defaults
//  4. Fields that are missing, empty or non-positive keep their defaults
//  5. NASA_API_KEY in the environment overrides api_key in every case
//
// # Default Values
//
//   - Config file: ~/.config/skyview/config.toml
//   - API key: DEMO_KEY (rate limited by NASA; set your own key)
//   - Base URL: https://api.nasa.gov
//   - Range: the last 7 days, ending today
//   - Request timeout: 10 seconds
//   - Log file: ~/.local/state/skyview/skyview.log
//   - Log level: info
//
// # Configuration Fields
//
//   - APIKey: sent as the api_key query parameter
//   - BaseURL: scheme and host of the API; a bare host gets https://
//   - RangeDays: size of the default range when --start/--end are absent
//   - TimeoutSeconds: HTTP client timeout (see Config.Timeout)
//   - LogFile: JSON log written by package logging
//   - LogLevel: debug, info, warn or error (lowercased on load)
//
// # TOML Format
//
//	api_key = "DEMO_KEY"                     # api.nasa.gov key
//	base_url = "https://api.nasa.gov"
//	range_days = 7                           # default range, ending today
//	timeout_seconds = 10
//	log_file = "~/.local/state/skyview/skyview.log"
//	log_level = "info"                       # debug, info, warn, error
//
// All fields are optional. String values are trimmed before use.
//
// # Path Expansion
//
// Paths go through go-homedir and filepath.Abs:
//
//   - Absolute paths: used as-is ("/var/log/skyview.log")
//   - Tilde paths: expanded to the home directory ("~/.config/skyview")
//   - Relative paths: made absolute against the working directory
//
// Expansion applies to the config file location and to log_file.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors other than os.ErrNotExist, which triggers defaults
//   - TOML syntax errors, wrapped as "parse config"
//
// A missing file is not an error; a present but broken one is, so a typo
// never silently falls back to DEMO_KEY.
//
// # Usage
//
//	cfg, err := config.Load(opts.ConfigPath)
//	if err != nil {
//		return fmt.Errorf("load config: %w", err)
//	}
//	client, err := apod.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Timeout())
//
// # Relationship to prefs
//
// Config holds settings a user edits by hand. The theme chosen in the TUI is
// written by the program itself to a separate file owned by package prefs,
// so saving a theme never rewrites config.toml. Search text, sort order and
// view mode are not stored anywhere.
//
// # Testing
//
// Tests point HOME at t.TempDir and set homedir.DisableCache so tilde
// expansion follows the temporary home:
//
//	t.Setenv("HOME", dir)
//	homedir.DisableCache = true
//	cfg, err := config.Load(filepath.Join(dir, "config.toml"))
package config
