package userdirs

import (
	"runtime"

	"github.com/cockroachdb/errors"
)

// Kind identifies one of the logical user directories this package
// resolves.
type Kind int

// Directory kinds, one per public operation.
const (
	KindHome Kind = iota
	KindBinHome
	KindCacheHome
	KindConfigHome
	KindConfigLocal
	KindDataHome
	KindDataLocal
	KindStateHome
	KindDesktop
	KindDocuments
	KindDownloads
	KindMusic
	KindPictures
	KindVideos
	KindTemplates
	KindPublicShare
	KindRuntime
	KindFonts
	KindPreferences
)

// kindNames maps kinds to their stable lowercase names, used in error
// messages and the CLI.
var kindNames = map[Kind]string{
	KindHome:        "home",
	KindBinHome:     "bin",
	KindCacheHome:   "cache",
	KindConfigHome:  "config",
	KindConfigLocal: "config-local",
	KindDataHome:    "data",
	KindDataLocal:   "data-local",
	KindStateHome:   "state",
	KindDesktop:     "desktop",
	KindDocuments:   "documents",
	KindDownloads:   "downloads",
	KindMusic:       "music",
	KindPictures:    "pictures",
	KindVideos:      "videos",
	KindTemplates:   "templates",
	KindPublicShare: "public-share",
	KindRuntime:     "runtime",
	KindFonts:       "fonts",
	KindPreferences: "preferences",
}

// String returns the stable lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ErrUnknownKind indicates a directory kind name that this package does
// not recognize.
var ErrUnknownKind = errors.New("unknown directory kind")

// ParseKind returns the Kind with the given name, as produced by
// Kind.String.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, errors.Wrap(ErrUnknownKind, name)
}

// Kinds returns all directory kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindHome,
		KindBinHome,
		KindCacheHome,
		KindConfigHome,
		KindConfigLocal,
		KindDataHome,
		KindDataLocal,
		KindStateHome,
		KindDesktop,
		KindDocuments,
		KindDownloads,
		KindMusic,
		KindPictures,
		KindVideos,
		KindTemplates,
		KindPublicShare,
		KindRuntime,
		KindFonts,
		KindPreferences,
	}
}

// Platform identifies an operating system family. A Resolver is bound
// to exactly one platform at construction time.
type Platform int

// Supported platform families.
const (
	PlatformLinux Platform = iota
	PlatformDarwin
	PlatformWindows
)

// String returns the GOOS-style name of the platform.
func (p Platform) String() string {
	switch p {
	case PlatformDarwin:
		return "darwin"
	case PlatformWindows:
		return "windows"
	default:
		return "linux"
	}
}

// windows reports whether path conventions for p use drive letters and
// backslash separators.
func (p Platform) windows() bool {
	return p == PlatformWindows
}

// CurrentPlatform returns the platform family of the running build.
// GOOS values other than darwin and windows are treated as Linux, which
// matches their directory conventions closely enough for the BSDs.
func CurrentPlatform() Platform {
	switch runtime.GOOS {
	case "darwin":
		return PlatformDarwin
	case "windows":
		return PlatformWindows
	default:
		return PlatformLinux
	}
}

// XDG Base Directory environment variables.
// https://specifications.freedesktop.org/basedir-spec/basedir-spec-0.8.html
const (
	envBinHome        = "XDG_BIN_HOME"
	envCacheHome      = "XDG_CACHE_HOME"
	envConfigHome     = "XDG_CONFIG_HOME"
	envDataHome       = "XDG_DATA_HOME"
	envStateHome      = "XDG_STATE_HOME"
	envDesktopDir     = "XDG_DESKTOP_DIR"
	envDocumentsDir   = "XDG_DOCUMENTS_DIR"
	envDownloadDir    = "XDG_DOWNLOAD_DIR"
	envMusicDir       = "XDG_MUSIC_DIR"
	envPicturesDir    = "XDG_PICTURES_DIR"
	envPublicShareDir = "XDG_PUBLICSHARE_DIR"
	envRuntimeDir     = "XDG_RUNTIME_DIR"
	envTemplatesDir   = "XDG_TEMPLATES_DIR"
	envVideosDir      = "XDG_VIDEOS_DIR"
)

// overrideVars maps each kind to its XDG override variable. Kinds with
// no assigned variable (home, config-local, data-local, fonts,
// preferences) are absent and resolve straight to the platform default.
var overrideVars = map[Kind]string{
	KindBinHome:     envBinHome,
	KindCacheHome:   envCacheHome,
	KindConfigHome:  envConfigHome,
	KindDataHome:    envDataHome,
	KindStateHome:   envStateHome,
	KindDesktop:     envDesktopDir,
	KindDocuments:   envDocumentsDir,
	KindDownloads:   envDownloadDir,
	KindMusic:       envMusicDir,
	KindPictures:    envPicturesDir,
	KindVideos:      envVideosDir,
	KindTemplates:   envTemplatesDir,
	KindPublicShare: envPublicShareDir,
	KindRuntime:     envRuntimeDir,
}

// OverrideVar returns the XDG environment variable that overrides the
// given kind, or "" if the kind has none assigned.
func OverrideVar(kind Kind) string {
	return overrideVars[kind]
}
