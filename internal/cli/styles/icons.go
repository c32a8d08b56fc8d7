package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info
	IconConfig  = "\ue615" // config
	IconCursor  = "\uf054" // chevron right

	IconMoon    = "\uf186" // moon
	IconSun     = "\uf185" // sun
	IconDesktop = "\uf108" // desktop
	IconServer  = "\uf233" // server
	IconFile    = "\uf15b" // file
)
