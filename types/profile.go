package types

// Profile is the directory record of a user. Every field is optional.
type Profile struct {
	UserID    string  `db:"id"`
	FullName  *string `db:"full_name"`
	Username  *string `db:"username"`
	Email     *string `db:"email"`
	AvatarURL *string `db:"avatar_url"`
}

// Identity is the display-ready view of a participant.
// DisplayName is never empty.
type Identity struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	AvatarURL   *string `json:"avatarURL"`
}
