package models

// Profile is the owner's display information, stored as the
// users/{owner}/profile node.
type Profile struct {
	UserName        string `json:"user_name"`
	MobileNumber    string `json:"mobile_number"`
	EmailAddress    string `json:"email_address"`
	ProfileImageURL string `json:"profile_image_url"`
}

// Tree returns the profile in its stored form.
func (p Profile) Tree() map[string]any {
	return map[string]any{
		"userName":        p.UserName,
		"mobileNumber":    p.MobileNumber,
		"emailAddress":    p.EmailAddress,
		"profileImageURL": p.ProfileImageURL,
	}
}

// ProfileFromTree reads a stored profile node. Missing or non-string fields
// are left empty.
func ProfileFromTree(tree map[string]any) Profile {
	str := func(key string) string {
		s, _ := tree[key].(string)
		return s
	}
	return Profile{
		UserName:        str("userName"),
		MobileNumber:    str("mobileNumber"),
		EmailAddress:    str("emailAddress"),
		ProfileImageURL: str("profileImageURL"),
	}
}
