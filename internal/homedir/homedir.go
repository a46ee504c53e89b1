// Package homedir resolves the current user's home directory from the
// environment, with a system user-database fallback on Unix.
package homedir

import (
	"os/user"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/userdirs/internal/envread"
)

// ErrNotFound indicates the home directory could not be determined from
// the environment or the system user database.
var ErrNotFound = errors.New("home directory not found")

// LookupFunc returns the home directory recorded for the current user in
// the system user database. It is injectable so resolution stays
// testable without a real account database.
type LookupFunc func() (string, error)

// SystemLookup queries os/user for the current user's home directory.
// On Unix this consults the account database keyed by the effective uid.
func SystemLookup() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", errors.Wrap(err, "looking up current user")
	}
	return u.HomeDir, nil
}

// Resolve determines the user's home directory.
//
// On Unix it returns $HOME when set, otherwise the home directory field
// from the user database via lookup. On Windows it returns %USERPROFILE%
// when set, otherwise %HOMEDRIVE%%HOMEPATH% when both are present.
//
// It never panics; every failure is reported as ErrNotFound.
func Resolve(env envread.Reader, windows bool, lookup LookupFunc) (string, error) {
	if windows {
		if profile, ok := env("USERPROFILE"); ok {
			return profile, nil
		}
		drive, okDrive := env("HOMEDRIVE")
		path, okPath := env("HOMEPATH")
		if okDrive && okPath {
			return drive + path, nil
		}
		return "", errors.Wrap(ErrNotFound, "USERPROFILE, HOMEDRIVE and HOMEPATH unset")
	}

	if home, ok := env("HOME"); ok {
		return home, nil
	}
	if lookup == nil {
		lookup = SystemLookup
	}
	home, err := lookup()
	if err != nil {
		return "", errors.Wrap(ErrNotFound, err.Error())
	}
	if home == "" {
		return "", errors.Wrap(ErrNotFound, "user database has no home directory")
	}
	return home, nil
}
