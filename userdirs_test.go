package userdirs

import (
	"runtime"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/userdirs/internal/envread"
)

// testResolver builds a Resolver bound to the given platform and
// environment, with a deterministic uid and no real user database.
func testResolver(p Platform, env map[string]string, opts ...Option) *Resolver {
	base := []Option{
		WithPlatform(p),
		WithEnvironment(envread.Static(env)),
		WithHomeLookup(func() (string, error) {
			return "", errors.New("no user database in tests")
		}),
		WithUserID(func() (int, bool) { return 1000, true }),
	}
	return New(append(base, opts...)...)
}

func TestOverrideAbsoluteReturnsVerbatim(t *testing.T) {
	for _, p := range testPlatforms {
		t.Run(p.String(), func(t *testing.T) {
			override := "/override/dir"
			if p == PlatformWindows {
				override = `X:\override\dir`
			}

			for _, k := range Kinds() {
				name := OverrideVar(k)
				if name == "" {
					continue
				}
				r := testResolver(p, map[string]string{name: override})
				got, err := r.Resolve(k)
				if err != nil {
					t.Errorf("%v: Resolve() failed: %v", k, err)
					continue
				}
				if got != override {
					t.Errorf("%v: Resolve() = %q, want override %q verbatim", k, got, override)
				}
			}
		})
	}
}

func TestOverrideRelativeIgnored(t *testing.T) {
	env := map[string]string{"HOME": "/home/u"}
	for _, k := range Kinds() {
		name := OverrideVar(k)
		if name == "" {
			continue
		}

		withoutOverride, errWithout := testResolver(PlatformLinux, env).Resolve(k)

		overridden := map[string]string{"HOME": "/home/u", name: "relative/dir"}
		got, err := testResolver(PlatformLinux, overridden).Resolve(k)

		if (err == nil) != (errWithout == nil) {
			t.Errorf("%v: relative override changed resolvability: %v vs %v", k, err, errWithout)
			continue
		}
		if err == nil && got != withoutOverride {
			t.Errorf("%v: relative override changed result: %q, want %q", k, got, withoutOverride)
		}
		if err == nil && got == "relative/dir" {
			t.Errorf("%v: relative override returned verbatim", k)
		}
	}
}

func TestOverrideEmptyValueIgnored(t *testing.T) {
	r := testResolver(PlatformLinux, map[string]string{
		"HOME":            "/home/u",
		"XDG_CONFIG_HOME": "",
	})
	got, err := r.ConfigHome()
	if err != nil {
		t.Fatalf("ConfigHome() failed: %v", err)
	}
	if got != "/home/u/.config" {
		t.Errorf("ConfigHome() = %q, want %q", got, "/home/u/.config")
	}
}

func TestSpecScenarios(t *testing.T) {
	t.Run("absolute XDG_CONFIG_HOME wins", func(t *testing.T) {
		r := testResolver(PlatformLinux, map[string]string{
			"HOME":            "/home/u",
			"XDG_CONFIG_HOME": "/test/config",
		})
		got, err := r.ConfigHome()
		if err != nil {
			t.Fatalf("ConfigHome() failed: %v", err)
		}
		if got != "/test/config" {
			t.Errorf("ConfigHome() = %q, want %q", got, "/test/config")
		}
	})

	t.Run("relative XDG_CONFIG_HOME falls through", func(t *testing.T) {
		r := testResolver(PlatformLinux, map[string]string{
			"HOME":            "/home/u",
			"XDG_CONFIG_HOME": "relative/config",
		})
		got, err := r.ConfigHome()
		if err != nil {
			t.Fatalf("ConfigHome() failed: %v", err)
		}
		if got != "/home/u/.config" {
			t.Errorf("ConfigHome() = %q, want %q", got, "/home/u/.config")
		}
	})

	t.Run("darwin media directories", func(t *testing.T) {
		r := testResolver(PlatformDarwin, map[string]string{"HOME": "/Users/u"})

		videos, err := r.Videos()
		if err != nil {
			t.Fatalf("Videos() failed: %v", err)
		}
		if videos != "/Users/u/Movies" {
			t.Errorf("Videos() = %q, want %q", videos, "/Users/u/Movies")
		}

		downloads, err := r.Downloads()
		if err != nil {
			t.Fatalf("Downloads() failed: %v", err)
		}
		if downloads != "/Users/u/Downloads" {
			t.Errorf("Downloads() = %q, want %q", downloads, "/Users/u/Downloads")
		}
	})

	t.Run("windows public share is fixed", func(t *testing.T) {
		r := testResolver(PlatformWindows, map[string]string{
			"USERPROFILE":  `C:\Users\u`,
			"APPDATA":      `C:\Users\u\AppData\Roaming`,
			"LOCALAPPDATA": `C:\Users\u\AppData\Local`,
		})
		got, err := r.PublicShare()
		if err != nil {
			t.Fatalf("PublicShare() failed: %v", err)
		}
		if got != `C:\Users\Public` {
			t.Errorf("PublicShare() = %q, want %q", got, `C:\Users\Public`)
		}
	})
}

func TestLocalVariantsMatchOffWindows(t *testing.T) {
	for _, p := range []Platform{PlatformLinux, PlatformDarwin} {
		t.Run(p.String(), func(t *testing.T) {
			r := testResolver(p, map[string]string{"HOME": "/home/u"})

			configHome, _ := r.ConfigHome()
			configLocal, err := r.ConfigLocal()
			if err != nil {
				t.Fatalf("ConfigLocal() failed: %v", err)
			}
			if configLocal != configHome {
				t.Errorf("ConfigLocal() = %q, want ConfigHome() %q", configLocal, configHome)
			}

			dataHome, _ := r.DataHome()
			dataLocal, err := r.DataLocal()
			if err != nil {
				t.Fatalf("DataLocal() failed: %v", err)
			}
			if dataLocal != dataHome {
				t.Errorf("DataLocal() = %q, want DataHome() %q", dataLocal, dataHome)
			}
		})
	}
}

func TestLocalVariantsOnWindows(t *testing.T) {
	local := `C:\Users\u\AppData\Local`
	r := testResolver(PlatformWindows, map[string]string{
		"APPDATA":      `C:\Users\u\AppData\Roaming`,
		"LOCALAPPDATA": local,
	})

	configLocal, err := r.ConfigLocal()
	if err != nil {
		t.Fatalf("ConfigLocal() failed: %v", err)
	}
	if configLocal != local {
		t.Errorf("ConfigLocal() = %q, want LOCALAPPDATA %q unmodified", configLocal, local)
	}

	dataLocal, err := r.DataLocal()
	if err != nil {
		t.Fatalf("DataLocal() failed: %v", err)
	}
	if dataLocal != local {
		t.Errorf("DataLocal() = %q, want LOCALAPPDATA %q unmodified", dataLocal, local)
	}
}

func TestPreferencesMatchesConfigHomeOffDarwin(t *testing.T) {
	linux := testResolver(PlatformLinux, map[string]string{"HOME": "/home/u"})
	configHome, _ := linux.ConfigHome()
	prefs, err := linux.Preferences()
	if err != nil {
		t.Fatalf("Preferences() failed: %v", err)
	}
	if prefs != configHome {
		t.Errorf("Preferences() = %q, want ConfigHome() %q", prefs, configHome)
	}

	windows := testResolver(PlatformWindows, map[string]string{
		"APPDATA": `C:\Users\u\AppData\Roaming`,
	})
	configHome, _ = windows.ConfigHome()
	prefs, err = windows.Preferences()
	if err != nil {
		t.Fatalf("Preferences() failed: %v", err)
	}
	if prefs != configHome {
		t.Errorf("Preferences() = %q, want ConfigHome() %q", prefs, configHome)
	}

	darwin := testResolver(PlatformDarwin, map[string]string{"HOME": "/Users/u"})
	prefs, err = darwin.Preferences()
	if err != nil {
		t.Fatalf("Preferences() failed: %v", err)
	}
	if prefs != "/Users/u/Library/Preferences" {
		t.Errorf("Preferences() = %q, want %q", prefs, "/Users/u/Library/Preferences")
	}
}

func TestFonts(t *testing.T) {
	linux := testResolver(PlatformLinux, map[string]string{"HOME": "/home/u"})
	got, err := linux.Fonts()
	if err != nil {
		t.Fatalf("Fonts() failed on linux: %v", err)
	}
	if got != "/home/u/.local/share/fonts" {
		t.Errorf("Fonts() = %q, want %q", got, "/home/u/.local/share/fonts")
	}

	darwin := testResolver(PlatformDarwin, map[string]string{"HOME": "/Users/u"})
	got, err = darwin.Fonts()
	if err != nil {
		t.Fatalf("Fonts() failed on darwin: %v", err)
	}
	if got != "/Users/u/Library/Fonts" {
		t.Errorf("Fonts() = %q, want %q", got, "/Users/u/Library/Fonts")
	}

	windows := testResolver(PlatformWindows, map[string]string{
		"USERPROFILE":  `C:\Users\u`,
		"APPDATA":      `C:\Users\u\AppData\Roaming`,
		"LOCALAPPDATA": `C:\Users\u\AppData\Local`,
	})
	_, err = windows.Fonts()
	if !errors.Is(err, ErrNoConvention) {
		t.Errorf("Fonts() on windows error = %v, want ErrNoConvention", err)
	}
}

func TestRuntime(t *testing.T) {
	t.Run("linux uid scoped", func(t *testing.T) {
		r := testResolver(PlatformLinux, map[string]string{"HOME": "/home/u"})
		got, err := r.Runtime()
		if err != nil {
			t.Fatalf("Runtime() failed: %v", err)
		}
		if got != "/run/user/1000" {
			t.Errorf("Runtime() = %q, want %q", got, "/run/user/1000")
		}
	})

	t.Run("linux without uid uses TMPDIR", func(t *testing.T) {
		r := testResolver(PlatformLinux,
			map[string]string{"HOME": "/home/u", "TMPDIR": "/var/tmp/u"},
			WithUserID(func() (int, bool) { return 0, false }),
		)
		got, err := r.Runtime()
		if err != nil {
			t.Fatalf("Runtime() failed: %v", err)
		}
		if got != "/var/tmp/u" {
			t.Errorf("Runtime() = %q, want %q", got, "/var/tmp/u")
		}
	})

	t.Run("linux without uid or TMPDIR uses tmp", func(t *testing.T) {
		r := testResolver(PlatformLinux,
			map[string]string{"HOME": "/home/u"},
			WithUserID(func() (int, bool) { return 0, false }),
		)
		got, err := r.Runtime()
		if err != nil {
			t.Fatalf("Runtime() failed: %v", err)
		}
		if got != "/tmp" {
			t.Errorf("Runtime() = %q, want %q", got, "/tmp")
		}
	})

	t.Run("darwin TMPDIR", func(t *testing.T) {
		r := testResolver(PlatformDarwin, map[string]string{
			"HOME":   "/Users/u",
			"TMPDIR": "/var/folders/xy/T",
		})
		got, err := r.Runtime()
		if err != nil {
			t.Fatalf("Runtime() failed: %v", err)
		}
		if got != "/var/folders/xy/T" {
			t.Errorf("Runtime() = %q, want %q", got, "/var/folders/xy/T")
		}
	})

	t.Run("windows TEMP", func(t *testing.T) {
		r := testResolver(PlatformWindows, map[string]string{
			"TEMP": `C:\Users\u\AppData\Local\Temp`,
		})
		got, err := r.Runtime()
		if err != nil {
			t.Fatalf("Runtime() failed: %v", err)
		}
		if got != `C:\Users\u\AppData\Local\Temp` {
			t.Errorf("Runtime() = %q, want TEMP value", got)
		}
	})

	t.Run("windows TEMP unset", func(t *testing.T) {
		r := testResolver(PlatformWindows, map[string]string{})
		_, err := r.Runtime()
		if !errors.Is(err, ErrEnvVarUnset) {
			t.Errorf("Runtime() error = %v, want ErrEnvVarUnset", err)
		}
	})

	t.Run("override wins everywhere", func(t *testing.T) {
		r := testResolver(PlatformLinux, map[string]string{
			"HOME":            "/home/u",
			"XDG_RUNTIME_DIR": "/run/custom",
		})
		got, err := r.Runtime()
		if err != nil {
			t.Fatalf("Runtime() failed: %v", err)
		}
		if got != "/run/custom" {
			t.Errorf("Runtime() = %q, want %q", got, "/run/custom")
		}
	})
}

func TestHome(t *testing.T) {
	t.Run("unix HOME", func(t *testing.T) {
		r := testResolver(PlatformLinux, map[string]string{"HOME": "/home/u"})
		got, err := r.Home()
		if err != nil {
			t.Fatalf("Home() failed: %v", err)
		}
		if got != "/home/u" {
			t.Errorf("Home() = %q, want %q", got, "/home/u")
		}
	})

	t.Run("unix user database fallback", func(t *testing.T) {
		r := testResolver(PlatformLinux, map[string]string{},
			WithHomeLookup(func() (string, error) { return "/home/dbuser", nil }),
		)
		got, err := r.Home()
		if err != nil {
			t.Fatalf("Home() failed: %v", err)
		}
		if got != "/home/dbuser" {
			t.Errorf("Home() = %q, want %q", got, "/home/dbuser")
		}
	})

	t.Run("unix unresolvable", func(t *testing.T) {
		r := testResolver(PlatformLinux, map[string]string{})
		_, err := r.Home()
		if !errors.Is(err, ErrHomeNotFound) {
			t.Errorf("Home() error = %v, want ErrHomeNotFound", err)
		}
	})

	t.Run("windows HOMEDRIVE and HOMEPATH", func(t *testing.T) {
		r := testResolver(PlatformWindows, map[string]string{
			"HOMEDRIVE": "C:",
			"HOMEPATH":  `\Users\u`,
		})
		got, err := r.Home()
		if err != nil {
			t.Fatalf("Home() failed: %v", err)
		}
		if got != `C:\Users\u` {
			t.Errorf("Home() = %q, want %q", got, `C:\Users\u`)
		}
	})
}

func TestWindowsMissingEnvVar(t *testing.T) {
	r := testResolver(PlatformWindows, map[string]string{
		"USERPROFILE": `C:\Users\u`,
	})

	_, err := r.ConfigHome()
	if !errors.Is(err, ErrEnvVarUnset) {
		t.Errorf("ConfigHome() error = %v, want ErrEnvVarUnset", err)
	}

	_, err = r.BinHome()
	if !errors.Is(err, ErrEnvVarUnset) {
		t.Errorf("BinHome() error = %v, want ErrEnvVarUnset", err)
	}
}

func TestHomeRelativeKindsFailWithoutHome(t *testing.T) {
	r := testResolver(PlatformLinux, map[string]string{})

	for _, k := range []Kind{KindConfigHome, KindCacheHome, KindDataHome, KindDesktop, KindFonts} {
		_, err := r.Resolve(k)
		if !errors.Is(err, ErrHomeNotFound) {
			t.Errorf("Resolve(%v) error = %v, want ErrHomeNotFound", k, err)
		}
	}
}

func TestResolveErrorNamesKind(t *testing.T) {
	r := testResolver(PlatformLinux, map[string]string{})

	_, err := r.ConfigHome()
	if err == nil {
		t.Fatal("ConfigHome() succeeded with empty environment")
	}
	if !strings.Contains(err.Error(), "could not resolve config directory") {
		t.Errorf("error %q does not name the config directory", err.Error())
	}
}

func TestResolveUnknownKind(t *testing.T) {
	r := testResolver(PlatformLinux, map[string]string{"HOME": "/home/u"})
	if _, err := r.Resolve(Kind(999)); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Resolve(999) error = %v, want ErrUnknownKind", err)
	}
}

func TestResolverIsStateless(t *testing.T) {
	vars := map[string]string{"HOME": "/home/u"}
	r := testResolver(PlatformLinux, vars)

	first, err := r.ConfigHome()
	if err != nil {
		t.Fatalf("ConfigHome() failed: %v", err)
	}
	if first != "/home/u/.config" {
		t.Fatalf("ConfigHome() = %q, want %q", first, "/home/u/.config")
	}

	// The reader sees the mutation; nothing was cached.
	vars["XDG_CONFIG_HOME"] = "/changed/config"
	second, err := r.ConfigHome()
	if err != nil {
		t.Fatalf("ConfigHome() failed after env change: %v", err)
	}
	if second != "/changed/config" {
		t.Errorf("ConfigHome() = %q after env change, want %q", second, "/changed/config")
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	override := "/test/config"
	if runtime.GOOS == "windows" {
		override = `C:\test\config`
	}
	t.Setenv("XDG_CONFIG_HOME", override)

	got, err := ConfigHome()
	if err != nil {
		t.Fatalf("ConfigHome() failed: %v", err)
	}
	if got != override {
		t.Errorf("ConfigHome() = %q, want %q", got, override)
	}

	r := New()
	fromResolver, err := r.ConfigHome()
	if err != nil {
		t.Fatalf("Resolver.ConfigHome() failed: %v", err)
	}
	if got != fromResolver {
		t.Errorf("package ConfigHome() = %q, Resolver.ConfigHome() = %q", got, fromResolver)
	}
}
