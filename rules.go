package userdirs

// ruleOp selects how a platform default is derived when no override
// applies.
type ruleOp int

const (
	// opHome resolves to the home directory itself.
	opHome ruleOp = iota
	// opHomeJoin joins a fixed subpath onto the home directory.
	opHomeJoin
	// opEnv returns the value of a native environment variable verbatim.
	opEnv
	// opEnvJoin joins a fixed subpath onto a native environment variable.
	opEnvJoin
	// opLiteral returns a hardcoded absolute path.
	opLiteral
	// opTempDir returns $TMPDIR when set, otherwise /tmp.
	opTempDir
	// opRunUser returns /run/user/<uid>, falling back to opTempDir when
	// the uid is unavailable.
	opRunUser
	// opNone means the platform has no conventional location.
	opNone
)

// rule describes one cell of the (kind, platform) default table.
type rule struct {
	op  ruleOp
	env string
	sub string
	lit string
}

// Native Windows environment variables used by the default rules.
const (
	envAppData      = "APPDATA"
	envLocalAppData = "LOCALAPPDATA"
	envUserProfile  = "USERPROFILE"
	envTemp         = "TEMP"
)

const darwinAppSupport = "Library/Application Support"

// defaultRules is the full platform-default matrix. Every kind must
// have a rule on every platform; TestDefaultRuleTableComplete enforces
// this.
var defaultRules = map[Platform]map[Kind]rule{
	PlatformLinux: {
		KindHome:        {op: opHome},
		KindBinHome:     {op: opHomeJoin, sub: ".local/bin"},
		KindCacheHome:   {op: opHomeJoin, sub: ".cache"},
		KindConfigHome:  {op: opHomeJoin, sub: ".config"},
		KindConfigLocal: {op: opHomeJoin, sub: ".config"},
		KindDataHome:    {op: opHomeJoin, sub: ".local/share"},
		KindDataLocal:   {op: opHomeJoin, sub: ".local/share"},
		KindStateHome:   {op: opHomeJoin, sub: ".local/state"},
		KindDesktop:     {op: opHomeJoin, sub: "Desktop"},
		KindDocuments:   {op: opHomeJoin, sub: "Documents"},
		KindDownloads:   {op: opHomeJoin, sub: "Downloads"},
		KindMusic:       {op: opHomeJoin, sub: "Music"},
		KindPictures:    {op: opHomeJoin, sub: "Pictures"},
		KindVideos:      {op: opHomeJoin, sub: "Videos"},
		KindTemplates:   {op: opHomeJoin, sub: "Templates"},
		KindPublicShare: {op: opHomeJoin, sub: "Public"},
		KindRuntime:     {op: opRunUser},
		KindFonts:       {op: opHomeJoin, sub: ".local/share/fonts"},
		KindPreferences: {op: opHomeJoin, sub: ".config"},
	},
	PlatformDarwin: {
		KindHome:        {op: opHome},
		KindBinHome:     {op: opHomeJoin, sub: ".local/bin"},
		KindCacheHome:   {op: opHomeJoin, sub: "Library/Caches"},
		KindConfigHome:  {op: opHomeJoin, sub: darwinAppSupport},
		KindConfigLocal: {op: opHomeJoin, sub: darwinAppSupport},
		KindDataHome:    {op: opHomeJoin, sub: darwinAppSupport},
		KindDataLocal:   {op: opHomeJoin, sub: darwinAppSupport},
		KindStateHome:   {op: opHomeJoin, sub: darwinAppSupport},
		KindDesktop:     {op: opHomeJoin, sub: "Desktop"},
		KindDocuments:   {op: opHomeJoin, sub: "Documents"},
		KindDownloads:   {op: opHomeJoin, sub: "Downloads"},
		KindMusic:       {op: opHomeJoin, sub: "Music"},
		KindPictures:    {op: opHomeJoin, sub: "Pictures"},
		KindVideos:      {op: opHomeJoin, sub: "Movies"},
		KindTemplates:   {op: opHomeJoin, sub: "Templates"},
		KindPublicShare: {op: opHomeJoin, sub: "Public"},
		KindRuntime:     {op: opTempDir},
		KindFonts:       {op: opHomeJoin, sub: "Library/Fonts"},
		KindPreferences: {op: opHomeJoin, sub: "Library/Preferences"},
	},
	PlatformWindows: {
		KindHome:        {op: opHome},
		KindBinHome:     {op: opEnvJoin, env: envLocalAppData, sub: "Programs"},
		KindCacheHome:   {op: opEnv, env: envLocalAppData},
		KindConfigHome:  {op: opEnv, env: envAppData},
		KindConfigLocal: {op: opEnv, env: envLocalAppData},
		KindDataHome:    {op: opEnv, env: envAppData},
		KindDataLocal:   {op: opEnv, env: envLocalAppData},
		KindStateHome:   {op: opEnv, env: envLocalAppData},
		KindDesktop:     {op: opEnvJoin, env: envUserProfile, sub: "Desktop"},
		KindDocuments:   {op: opEnvJoin, env: envUserProfile, sub: "Documents"},
		KindDownloads:   {op: opEnvJoin, env: envUserProfile, sub: "Downloads"},
		KindMusic:       {op: opEnvJoin, env: envUserProfile, sub: "Music"},
		KindPictures:    {op: opEnvJoin, env: envUserProfile, sub: "Pictures"},
		KindVideos:      {op: opEnvJoin, env: envUserProfile, sub: "Videos"},
		KindTemplates:   {op: opEnvJoin, env: envUserProfile, sub: "Templates"},
		KindPublicShare: {op: opLiteral, lit: `C:\Users\Public`},
		KindRuntime:     {op: opEnv, env: envTemp},
		KindFonts:       {op: opNone},
		KindPreferences: {op: opEnv, env: envAppData},
	},
}
