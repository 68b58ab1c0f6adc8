package state

import "strings"

// DefaultName is shown until a profile loads.
const DefaultName = "User"

// AvatarKind identifies where the avatar image comes from.
type AvatarKind int

const (
	AvatarNone AvatarKind = iota
	AvatarLocal
	AvatarRemote
)

func (k AvatarKind) String() string {
	switch k {
	case AvatarLocal:
		return "local"
	case AvatarRemote:
		return "remote"
	default:
		return "none"
	}
}

// Avatar is the resolved image to show for the user.
type Avatar struct {
	Kind   AvatarKind
	Source string // file path or URL; empty for AvatarNone
}

// ResolveAvatar applies the avatar precedence: a picked local file wins over
// the account photo URL, which wins over nothing. Profile stores only the
// two sources and resolves on every read through Profile.Avatar, so the
// result always reflects both mutation points (Loaded and Picked). Do not
// cache a resolved Avatar on Profile.
func ResolveAvatar(local, remote string) Avatar {
	if local = strings.TrimSpace(local); local != "" {
		return Avatar{Kind: AvatarLocal, Source: local}
	}
	if remote = strings.TrimSpace(remote); remote != "" {
		return Avatar{Kind: AvatarRemote, Source: remote}
	}
	return Avatar{Kind: AvatarNone}
}

// Profile is the user data the home shell holds for the session.
type Profile struct {
	Name   string
	Local  string
	Remote string

	// Account details shown on the profile tab; empty until loaded.
	UID       string
	Email     string
	CreatedAt string
}

// NewProfile returns the "no profile yet" state.
func NewProfile() Profile {
	return Profile{Name: DefaultName}
}

// Loaded returns p with freshly fetched account data. A picked local image
// survives the load.
func (p Profile) Loaded(name, photoURL string) Profile {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	p.Name = name
	p.Remote = strings.TrimSpace(photoURL)
	return p
}

// WithAccount returns p with the account details filled in.
func (p Profile) WithAccount(uid, email, createdAt string) Profile {
	p.UID = strings.TrimSpace(uid)
	p.Email = strings.TrimSpace(email)
	p.CreatedAt = strings.TrimSpace(createdAt)
	return p
}

// Account is the result of a successful profile fetch.
type Account struct {
	UID       string
	Name      string
	PhotoURL  string
	Email     string
	CreatedAt string
}

// Apply returns p updated with a fetched account.
func (p Profile) Apply(a Account) Profile {
	return p.Loaded(a.Name, a.PhotoURL).WithAccount(a.UID, a.Email, a.CreatedAt)
}

// Picked returns p with a local image chosen by the user. A blank path is a
// cancelled pick and leaves p unchanged.
func (p Profile) Picked(path string) Profile {
	if strings.TrimSpace(path) == "" {
		return p
	}
	p.Local = strings.TrimSpace(path)
	return p
}

// DisplayName returns the name to greet the user with.
func (p Profile) DisplayName() string {
	if strings.TrimSpace(p.Name) == "" {
		return DefaultName
	}
	return p.Name
}

// Avatar resolves the avatar for the current profile on each call.
func (p Profile) Avatar() Avatar {
	return ResolveAvatar(p.Local, p.Remote)
}

// SignedIn reports whether account data has been loaded.
func (p Profile) SignedIn() bool {
	return p.UID != ""
}
