// Package userdirs resolves standard user directories (config, cache,
// data, downloads, desktop, and friends) across Linux, macOS, and
// Windows.
//
// # XDG Base Directory Compliance
//
// Each directory kind with an assigned XDG environment variable (for
// example XDG_CONFIG_HOME for the config directory) honors that
// variable first. Per the XDG Base Directory Specification, only
// absolute values are accepted; a relative value is ignored entirely
// and resolution falls through to the platform default.
//
// # Platform Defaults
//
//	| Kind      | Linux            | macOS                        | Windows                  |
//	|-----------|------------------|------------------------------|--------------------------|
//	| config    | ~/.config        | ~/Library/Application Support| %APPDATA%                |
//	| cache     | ~/.cache         | ~/Library/Caches             | %LOCALAPPDATA%           |
//	| data      | ~/.local/share   | ~/Library/Application Support| %APPDATA%                |
//	| state     | ~/.local/state   | ~/Library/Application Support| %LOCALAPPDATA%           |
//	| bin       | ~/.local/bin     | ~/.local/bin                 | %LOCALAPPDATA%\Programs  |
//	| downloads | ~/Downloads      | ~/Downloads                  | %USERPROFILE%\Downloads  |
//	| videos    | ~/Videos         | ~/Movies                     | %USERPROFILE%\Videos     |
//
// The remaining kinds follow the same pattern; see the per-operation
// documentation.
//
// # Error Handling
//
// Every operation returns the resolved path or an error wrapping one of
// the package sentinels. An unset override is not an error; an error
// means no rule produced a value at all:
//
//	dir, err := userdirs.ConfigHome()
//	if errors.Is(err, userdirs.ErrHomeNotFound) {
//	    // no $HOME and no user-database entry
//	}
//
// # Testing Across Platforms
//
// A Resolver is bound to a platform family at construction, and both
// the environment and the Unix user-database lookup are injectable, so
// Windows rules can be exercised on a Linux test host:
//
//	r := userdirs.New(
//	    userdirs.WithPlatform(userdirs.PlatformWindows),
//	    userdirs.WithEnvironment(func(name string) (string, bool) {
//	        v, ok := map[string]string{"APPDATA": `C:\Users\u\AppData\Roaming`}[name]
//	        return v, ok
//	    }),
//	)
//	dir, err := r.ConfigHome()
//
// Resolution is stateless: nothing is cached, every call reflects the
// current environment, and resolvers are safe for concurrent use.
package userdirs
