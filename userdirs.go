package userdirs

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/userdirs/internal/envread"
	"github.com/thoreinstein/userdirs/internal/homedir"
	"github.com/thoreinstein/userdirs/internal/pathstr"
)

// Sentinel errors for directory resolution.
var (
	// ErrHomeNotFound indicates the user's home directory could not be
	// determined from the environment or the system user database.
	ErrHomeNotFound = homedir.ErrNotFound

	// ErrEnvVarUnset indicates a native environment variable required by
	// a platform default rule is not set.
	ErrEnvVarUnset = errors.New("environment variable unset")

	// ErrNoConvention indicates the platform has no conventional
	// location for the requested kind, e.g. fonts on Windows.
	ErrNoConvention = errors.New("no conventional location on this platform")
)

// Resolver resolves user directories for a fixed platform family.
//
// Every resolution is computed independently from the current
// environment; a Resolver holds no mutable state and is safe for
// concurrent use as long as the process environment is not being
// mutated concurrently.
type Resolver struct {
	platform Platform
	env      envread.Reader
	lookup   homedir.LookupFunc
	uid      func() (int, bool)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithPlatform fixes the platform family whose conventions the Resolver
// applies. Defaults to the running build's platform.
func WithPlatform(p Platform) Option {
	return func(r *Resolver) {
		r.platform = p
	}
}

// WithEnvironment injects an environment lookup function. The boolean
// reports whether the variable is set. Defaults to the live process
// environment.
func WithEnvironment(fn func(name string) (string, bool)) Option {
	return func(r *Resolver) {
		r.env = fn
	}
}

// WithHomeLookup injects the system user-database lookup used as the
// Unix fallback when HOME is unset. Defaults to an os/user query for
// the current user.
func WithHomeLookup(fn func() (string, error)) Option {
	return func(r *Resolver) {
		r.lookup = fn
	}
}

// WithUserID injects the numeric user id used for the Linux runtime
// directory. The boolean reports whether a uid is available. Defaults
// to os.Getuid.
func WithUserID(fn func() (int, bool)) Option {
	return func(r *Resolver) {
		r.uid = fn
	}
}

// New creates a Resolver for the running platform, reading the live
// process environment. Use options to override either for testing or
// cross-platform resolution.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		platform: CurrentPlatform(),
		env:      envread.System(),
		lookup:   homedir.SystemLookup,
		uid: func() (int, bool) {
			uid := os.Getuid()
			return uid, uid >= 0
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Platform returns the platform family the Resolver is bound to.
func (r *Resolver) Platform() Platform {
	return r.platform
}

// Resolve returns the absolute path of the given directory kind.
//
// If the kind has an XDG override variable and that variable holds an
// absolute path, the value is returned verbatim and the platform
// default is never consulted. A relative or unset override falls
// through to the platform default rule. When no rule yields a value the
// error wraps one of the package sentinels.
func (r *Resolver) Resolve(kind Kind) (string, error) {
	path, err := r.resolve(kind)
	if err != nil {
		return "", errors.Wrapf(err, "could not resolve %s directory", kind)
	}
	return path, nil
}

func (r *Resolver) resolve(kind Kind) (string, error) {
	if name, ok := overrideVars[kind]; ok {
		if v, set := r.env(name); set && pathstr.IsAbs(v, r.platform.windows()) {
			return v, nil
		}
	}

	rl, ok := defaultRules[r.platform][kind]
	if !ok {
		return "", errors.Wrapf(ErrUnknownKind, "%d", int(kind))
	}
	return r.applyRule(rl)
}

func (r *Resolver) applyRule(rl rule) (string, error) {
	windows := r.platform.windows()

	switch rl.op {
	case opHome:
		return r.home()

	case opHomeJoin:
		home, err := r.home()
		if err != nil {
			return "", err
		}
		return pathstr.Join(home, rl.sub, windows), nil

	case opEnv:
		v, set := r.env(rl.env)
		if !set || v == "" {
			return "", errors.Wrap(ErrEnvVarUnset, rl.env)
		}
		return v, nil

	case opEnvJoin:
		v, set := r.env(rl.env)
		if !set || v == "" {
			return "", errors.Wrap(ErrEnvVarUnset, rl.env)
		}
		return pathstr.Join(v, rl.sub, windows), nil

	case opLiteral:
		return rl.lit, nil

	case opTempDir:
		return r.tempDir(), nil

	case opRunUser:
		if uid, ok := r.uid(); ok {
			return fmt.Sprintf("/run/user/%d", uid), nil
		}
		return r.tempDir(), nil

	case opNone:
		return "", ErrNoConvention

	default:
		return "", errors.Newf("unhandled rule op %d", int(rl.op))
	}
}

// tempDir returns $TMPDIR when set and non-empty, otherwise /tmp.
// TMPDIR values are taken verbatim, matching historical behavior.
func (r *Resolver) tempDir() string {
	if v, set := r.env("TMPDIR"); set && v != "" {
		return v
	}
	return "/tmp"
}

func (r *Resolver) home() (string, error) {
	return homedir.Resolve(r.env, r.platform.windows(), r.lookup)
}

// Home returns the user's home directory.
func (r *Resolver) Home() (string, error) { return r.Resolve(KindHome) }

// BinHome returns the directory for user-installed executables.
func (r *Resolver) BinHome() (string, error) { return r.Resolve(KindBinHome) }

// CacheHome returns the user's cache directory.
func (r *Resolver) CacheHome() (string, error) { return r.Resolve(KindCacheHome) }

// ConfigHome returns the user's configuration directory.
func (r *Resolver) ConfigHome() (string, error) { return r.Resolve(KindConfigHome) }

// ConfigLocal returns the non-roaming configuration directory. It
// differs from ConfigHome only on Windows.
func (r *Resolver) ConfigLocal() (string, error) { return r.Resolve(KindConfigLocal) }

// DataHome returns the user's data directory.
func (r *Resolver) DataHome() (string, error) { return r.Resolve(KindDataHome) }

// DataLocal returns the non-roaming data directory. It differs from
// DataHome only on Windows.
func (r *Resolver) DataLocal() (string, error) { return r.Resolve(KindDataLocal) }

// StateHome returns the user's state directory.
func (r *Resolver) StateHome() (string, error) { return r.Resolve(KindStateHome) }

// Desktop returns the user's desktop directory.
func (r *Resolver) Desktop() (string, error) { return r.Resolve(KindDesktop) }

// Documents returns the user's documents directory.
func (r *Resolver) Documents() (string, error) { return r.Resolve(KindDocuments) }

// Downloads returns the user's downloads directory.
func (r *Resolver) Downloads() (string, error) { return r.Resolve(KindDownloads) }

// Music returns the user's music directory.
func (r *Resolver) Music() (string, error) { return r.Resolve(KindMusic) }

// Pictures returns the user's pictures directory.
func (r *Resolver) Pictures() (string, error) { return r.Resolve(KindPictures) }

// Videos returns the user's videos directory (Movies on macOS).
func (r *Resolver) Videos() (string, error) { return r.Resolve(KindVideos) }

// Templates returns the user's templates directory.
func (r *Resolver) Templates() (string, error) { return r.Resolve(KindTemplates) }

// PublicShare returns the user's public sharing directory.
func (r *Resolver) PublicShare() (string, error) { return r.Resolve(KindPublicShare) }

// Runtime returns the user's runtime directory.
func (r *Resolver) Runtime() (string, error) { return r.Resolve(KindRuntime) }

// Fonts returns the user's fonts directory. Windows has no such
// convention and yields ErrNoConvention.
func (r *Resolver) Fonts() (string, error) { return r.Resolve(KindFonts) }

// Preferences returns the user's preferences directory. It differs from
// ConfigHome only on macOS.
func (r *Resolver) Preferences() (string, error) { return r.Resolve(KindPreferences) }

// std resolves against the running platform and live environment for
// the package-level convenience functions.
var std = New()

// Home returns the user's home directory on the running platform.
func Home() (string, error) { return std.Home() }

// BinHome returns the directory for user-installed executables on the
// running platform.
func BinHome() (string, error) { return std.BinHome() }

// CacheHome returns the user's cache directory on the running platform.
func CacheHome() (string, error) { return std.CacheHome() }

// ConfigHome returns the user's configuration directory on the running
// platform.
func ConfigHome() (string, error) { return std.ConfigHome() }

// ConfigLocal returns the non-roaming configuration directory on the
// running platform.
func ConfigLocal() (string, error) { return std.ConfigLocal() }

// DataHome returns the user's data directory on the running platform.
func DataHome() (string, error) { return std.DataHome() }

// DataLocal returns the non-roaming data directory on the running
// platform.
func DataLocal() (string, error) { return std.DataLocal() }

// StateHome returns the user's state directory on the running platform.
func StateHome() (string, error) { return std.StateHome() }

// Desktop returns the user's desktop directory on the running platform.
func Desktop() (string, error) { return std.Desktop() }

// Documents returns the user's documents directory on the running
// platform.
func Documents() (string, error) { return std.Documents() }

// Downloads returns the user's downloads directory on the running
// platform.
func Downloads() (string, error) { return std.Downloads() }

// Music returns the user's music directory on the running platform.
func Music() (string, error) { return std.Music() }

// Pictures returns the user's pictures directory on the running
// platform.
func Pictures() (string, error) { return std.Pictures() }

// Videos returns the user's videos directory on the running platform.
func Videos() (string, error) { return std.Videos() }

// Templates returns the user's templates directory on the running
// platform.
func Templates() (string, error) { return std.Templates() }

// PublicShare returns the user's public sharing directory on the
// running platform.
func PublicShare() (string, error) { return std.PublicShare() }

// Runtime returns the user's runtime directory on the running platform.
func Runtime() (string, error) { return std.Runtime() }

// Fonts returns the user's fonts directory on the running platform.
func Fonts() (string, error) { return std.Fonts() }

// Preferences returns the user's preferences directory on the running
// platform.
func Preferences() (string, error) { return std.Preferences() }
