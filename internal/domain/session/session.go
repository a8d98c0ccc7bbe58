// Package session models the authenticated-user context: the bearer token
// and the profile it belongs to. Token present means authenticated; the
// server remains the authority on token validity.
package session

// User is the profile record attached to a session.
type User struct {
	ID         uint   `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	AvatarURL  string `json:"avatar_url"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Division   string `json:"division"`
}

// FullName returns the display name for the profile.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}

// UserPatch carries a partial profile update. Only non-nil fields
// overwrite the corresponding field of the stored user.
type UserPatch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Phone      *string
	AvatarURL  *string
	Role       *string
	Department *string
	Division   *string
}

// Merge applies the patch onto u with shallow-merge semantics and returns
// the merged record. Fields absent from the patch are untouched.
func (u User) Merge(patch UserPatch) User {
	if patch.FirstName != nil {
		u.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = *patch.LastName
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.AvatarURL != nil {
		u.AvatarURL = *patch.AvatarURL
	}
	if patch.Role != nil {
		u.Role = *patch.Role
	}
	if patch.Department != nil {
		u.Department = *patch.Department
	}
	if patch.Division != nil {
		u.Division = *patch.Division
	}
	return u
}

// Session couples the bearer token with its user profile.
type Session struct {
	Token string
	User  User
}

// Authenticated reports whether a token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
